package voices

import "github.com/AltairaLabs/elevenlabs-go/types"

// VoiceMetadata describes a voice.
type VoiceMetadata struct {
	VoiceID           string               `json:"voice_id"`
	Name              string               `json:"name"`
	Category          string               `json:"category,omitempty"`
	Description       *string              `json:"description,omitempty"`
	Labels            map[string]string    `json:"labels,omitempty"`
	PreviewURL        *string              `json:"preview_url,omitempty"`
	AvailableForTiers []string             `json:"available_for_tiers,omitempty"`
	Settings          *types.VoiceSettings `json:"settings,omitempty"`
}

// ListResponse is returned by ListVoices.
type ListResponse struct {
	Voices []VoiceMetadata `json:"voices"`
}

// AddVoiceRequest creates a cloned voice from sample files.
type AddVoiceRequest struct {
	Name string

	// Files are local paths to audio samples, uploaded in order.
	Files []string

	Description *string
	Labels      map[string]string
}

// EditVoiceRequest updates an existing voice. Files are optional.
type EditVoiceRequest struct {
	VoiceID     string
	Name        string
	Files       []string
	Description *string
	Labels      map[string]string
}

// AddVoiceResponse is the result of AddVoice.
type AddVoiceResponse struct {
	// VoiceID is decoded from the response when it is JSON.
	VoiceID string

	// Raw is the response body as returned by the API.
	Raw string
}
