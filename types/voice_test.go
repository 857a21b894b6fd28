package types

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/AltairaLabs/elevenlabs-go/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultVoiceSettings(t *testing.T) {
	s := DefaultVoiceSettings()
	assert.Equal(t, 0.5, s.Stability)
	assert.Equal(t, 0.75, s.SimilarityBoost)
	assert.Nil(t, s.Style)
	assert.Nil(t, s.UseSpeakerBoost)
	assert.NoError(t, s.Validate())
}

func TestVoiceSettings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		settings VoiceSettings
		wantErr  bool
	}{
		{"bounds", VoiceSettings{Stability: 0, SimilarityBoost: 1}, false},
		{"style ok", VoiceSettings{Stability: 0.3, SimilarityBoost: 0.3, Style: testutil.Ptr(0.9)}, false},
		{"stability negative", VoiceSettings{Stability: -0.1, SimilarityBoost: 0.5}, true},
		{"similarity too high", VoiceSettings{Stability: 0.5, SimilarityBoost: 1.5}, true},
		{"style too high", VoiceSettings{Stability: 0.5, SimilarityBoost: 0.5, Style: testutil.Ptr(2.0)}, true},
		{"stability NaN", VoiceSettings{Stability: math.NaN(), SimilarityBoost: 0.5}, true},
		{"style NaN", VoiceSettings{Stability: 0.5, SimilarityBoost: 0.5, Style: testutil.Ptr(math.NaN())}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrSettingOutOfRange))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVoiceSettings_JSON(t *testing.T) {
	b, err := json.Marshal(VoiceSettings{Stability: 0.5, SimilarityBoost: 0.75})
	require.NoError(t, err)
	assert.JSONEq(t, `{"stability":0.5,"similarity_boost":0.75}`, string(b))

	var s VoiceSettings
	require.NoError(t, json.Unmarshal([]byte(`{"stability":0.2,"similarity_boost":0.4,"style":0,"use_speaker_boost":true}`), &s))
	require.NotNil(t, s.Style)
	assert.Equal(t, 0.0, *s.Style)
	require.NotNil(t, s.UseSpeakerBoost)
	assert.True(t, *s.UseSpeakerBoost)
}
