package tts

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/AltairaLabs/elevenlabs-go/types"
)

// Models.
const (
	// ModelMultilingual is the multilingual v2 model.
	ModelMultilingual = "eleven_multilingual_v2"
	// ModelTurbo is the fast turbo v2.5 model.
	ModelTurbo = "eleven_turbo_v2_5"
	// ModelFlash is the lowest latency v2.5 model.
	ModelFlash = "eleven_flash_v2_5"
	// ModelEnglish is the English monolingual v1 model.
	ModelEnglish = "eleven_monolingual_v1"
	// ModelMultilingualV1 is the older multilingual v1 model.
	ModelMultilingualV1 = "eleven_multilingual_v1"
)

// Output formats, passed as the output_format query parameter.
const (
	FormatMP3_44100_128 = "mp3_44100_128"
	FormatMP3_22050_32  = "mp3_22050_32"
	FormatPCM_16000     = "pcm_16000"
	FormatPCM_24000     = "pcm_24000"
	FormatPCM_44100     = "pcm_44100"
	FormatULaw_8000     = "ulaw_8000"
)

// maxStreamingLatency is the highest optimize_streaming_latency level.
const maxStreamingLatency = 4

// Request is a synthesis request. Optional fields are omitted from the
// JSON body when unset.
type Request struct {
	Text string `json:"text"`

	// ModelID selects the model. Empty uses the API default.
	ModelID *string `json:"model_id,omitempty"`

	// VoiceSettings override the voice's stored settings for this request.
	VoiceSettings *types.VoiceSettings `json:"voice_settings,omitempty"`

	// PronunciationDictionaryLocators are applied in order, at most three.
	// Nil omits the field; a pointer to an empty slice sends [].
	PronunciationDictionaryLocators *[]types.PronunciationDictionaryLocator `json:"pronunciation_dictionary_locators,omitempty"`

	Seed         *int    `json:"seed,omitempty"`
	LanguageCode *string `json:"language_code,omitempty"`
	PreviousText *string `json:"previous_text,omitempty"`
	NextText     *string `json:"next_text,omitempty"`

	// OutputFormat is sent as a query parameter, e.g. FormatMP3_44100_128.
	OutputFormat string `json:"-"`

	// OptimizeStreamingLatency (0-4) is sent as a query parameter when set.
	OptimizeStreamingLatency *int `json:"-"`
}

// Validate checks the request locally.
func (r Request) Validate() error {
	if r.Text == "" {
		return ErrEmptyText
	}
	if l := r.PronunciationDictionaryLocators; l != nil && len(*l) > types.MaxPronunciationDictionaries {
		return fmt.Errorf("%w: %d > %d", ErrTooManyDictionaries, len(*l), types.MaxPronunciationDictionaries)
	}
	if r.VoiceSettings != nil {
		if err := r.VoiceSettings.Validate(); err != nil {
			return err
		}
	}
	if l := r.OptimizeStreamingLatency; l != nil && (*l < 0 || *l > maxStreamingLatency) {
		return fmt.Errorf("optimize_streaming_latency must be 0-%d, got %d", maxStreamingLatency, *l)
	}
	return nil
}

func (r Request) query() url.Values {
	q := url.Values{}
	if r.OutputFormat != "" {
		q.Set("output_format", r.OutputFormat)
	}
	if r.OptimizeStreamingLatency != nil {
		q.Set("optimize_streaming_latency", strconv.Itoa(*r.OptimizeStreamingLatency))
	}
	return q
}

func (r Request) model() string {
	if r.ModelID == nil {
		return ""
	}
	return *r.ModelID
}
