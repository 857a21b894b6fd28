// Package types holds the request/response shapes shared between the tts and
// voices clients.
package types

import (
	"errors"
	"fmt"
	"math"
)

// Default voice settings applied by the API when none are supplied.
const (
	DefaultStability       = 0.5
	DefaultSimilarityBoost = 0.75
)

// ErrSettingOutOfRange is returned by Validate for values outside [0, 1].
var ErrSettingOutOfRange = errors.New("voice setting out of range [0, 1]")

// VoiceSettings are the tunable synthesis parameters of a voice.
// The same shape is sent with a TTS request and stored on a voice.
type VoiceSettings struct {
	Stability       float64  `json:"stability"`
	SimilarityBoost float64  `json:"similarity_boost"`
	Style           *float64 `json:"style,omitempty"`
	UseSpeakerBoost *bool    `json:"use_speaker_boost,omitempty"`
}

// DefaultVoiceSettings returns the settings the API uses for new voices.
func DefaultVoiceSettings() VoiceSettings {
	return VoiceSettings{
		Stability:       DefaultStability,
		SimilarityBoost: DefaultSimilarityBoost,
	}
}

// Validate checks that every ratio lies within [0, 1].
func (s VoiceSettings) Validate() error {
	if err := checkRatio("stability", s.Stability); err != nil {
		return err
	}
	if err := checkRatio("similarity_boost", s.SimilarityBoost); err != nil {
		return err
	}
	if s.Style != nil {
		return checkRatio("style", *s.Style)
	}
	return nil
}

func checkRatio(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("%s=%v: %w", name, v, ErrSettingOutOfRange)
	}
	return nil
}

// MaxPronunciationDictionaries is how many locators a single request may carry.
const MaxPronunciationDictionaries = 3

// PronunciationDictionaryLocator selects a pronunciation dictionary version.
// Locators are applied in order.
type PronunciationDictionaryLocator struct {
	PronunciationDictionaryID string `json:"pronunciation_dictionary_id"`
	VersionID                 string `json:"version_id"`
}
