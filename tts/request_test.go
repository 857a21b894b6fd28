package tts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AltairaLabs/elevenlabs-go/pkg/testutil"
	"github.com/AltairaLabs/elevenlabs-go/types"
)

func TestRequest_JSONOptionalCombinations(t *testing.T) {
	settings := &types.VoiceSettings{
		Stability:       0.4,
		SimilarityBoost: 0.8,
		Style:           testutil.Ptr(0.1),
		UseSpeakerBoost: testutil.Ptr(true),
	}
	locators := []types.PronunciationDictionaryLocator{{PronunciationDictionaryID: "d1", VersionID: "v1"}}

	tests := []struct {
		name string
		req  Request
		json string
	}{
		{
			name: "all absent",
			req:  Request{Text: "hi"},
			json: `{"text":"hi"}`,
		},
		{
			name: "model only",
			req:  Request{Text: "hi", ModelID: testutil.Ptr(ModelMultilingual)},
			json: `{"text":"hi","model_id":"eleven_multilingual_v2"}`,
		},
		{
			name: "empty model kept",
			req:  Request{Text: "hi", ModelID: testutil.Ptr("")},
			json: `{"text":"hi","model_id":""}`,
		},
		{
			name: "settings only",
			req:  Request{Text: "hi", VoiceSettings: settings},
			json: `{"text":"hi","voice_settings":{"stability":0.4,"similarity_boost":0.8,"style":0.1,"use_speaker_boost":true}}`,
		},
		{
			name: "locators only",
			req:  Request{Text: "hi", PronunciationDictionaryLocators: &locators},
			json: `{"text":"hi","pronunciation_dictionary_locators":[{"pronunciation_dictionary_id":"d1","version_id":"v1"}]}`,
		},
		{
			name: "empty locators kept",
			req:  Request{Text: "hi", PronunciationDictionaryLocators: &[]types.PronunciationDictionaryLocator{}},
			json: `{"text":"hi","pronunciation_dictionary_locators":[]}`,
		},
		{
			name: "everything",
			req: Request{
				Text:                            "hi",
				ModelID:                         testutil.Ptr(ModelTurbo),
				VoiceSettings:                   settings,
				PronunciationDictionaryLocators: &locators,
				Seed:                            testutil.Ptr(42),
				LanguageCode:                    testutil.Ptr("en"),
				PreviousText:                    testutil.Ptr("before"),
				NextText:                        testutil.Ptr("after"),
			},
			json: `{"text":"hi","model_id":"eleven_turbo_v2_5",` +
				`"voice_settings":{"stability":0.4,"similarity_boost":0.8,"style":0.1,"use_speaker_boost":true},` +
				`"pronunciation_dictionary_locators":[{"pronunciation_dictionary_id":"d1","version_id":"v1"}],` +
				`"seed":42,"language_code":"en","previous_text":"before","next_text":"after"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.req)
			require.NoError(t, err)
			assert.JSONEq(t, tt.json, string(b))

			var back Request
			require.NoError(t, json.Unmarshal(b, &back))
			assert.Equal(t, tt.req, back)
		})
	}
}

func TestRequest_QueryParamsNotInBody(t *testing.T) {
	req := Request{Text: "hi", OutputFormat: FormatMP3_22050_32, OptimizeStreamingLatency: testutil.Ptr(0)}

	b, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"hi"}`, string(b))

	q := req.query()
	assert.Equal(t, FormatMP3_22050_32, q.Get("output_format"))
	assert.Equal(t, "0", q.Get("optimize_streaming_latency"))
}

func TestRequest_Validate(t *testing.T) {
	assert.NoError(t, Request{Text: "x", PronunciationDictionaryLocators: testutil.Ptr(make([]types.PronunciationDictionaryLocator, 3))}.Validate())
	assert.ErrorIs(t, Request{}.Validate(), ErrEmptyText)
}
