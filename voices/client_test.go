package voices

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AltairaLabs/elevenlabs-go/pkg/config"
	pkgerrors "github.com/AltairaLabs/elevenlabs-go/pkg/errors"
	"github.com/AltairaLabs/elevenlabs-go/pkg/testutil"
	"github.com/AltairaLabs/elevenlabs-go/types"
)

const testKey = "test-key"

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testKey, r.Header.Get("xi-api-key"))
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return NewClient(config.New(testKey, server.URL))
}

func writeSample(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestGetVoiceMetadata_WithSettings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/voices/21m00Tcm4TlvDq8ikWAM", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("with_settings"))
		_, _ = w.Write([]byte(`{
			"voice_id": "21m00Tcm4TlvDq8ikWAM",
			"name": "Rachel",
			"category": "premade",
			"labels": {"accent": "american"},
			"preview_url": "https://example.com/rachel.mp3",
			"available_for_tiers": [],
			"settings": {"stability": 0.5, "similarity_boost": 0.75}
		}`))
	})

	meta, err := client.GetVoiceMetadata(context.Background(), "21m00Tcm4TlvDq8ikWAM", true)
	require.NoError(t, err)
	assert.Equal(t, "Rachel", meta.Name)
	assert.Equal(t, "premade", meta.Category)
	assert.Equal(t, "american", meta.Labels["accent"])
	require.NotNil(t, meta.PreviewURL)
	assert.Nil(t, meta.Description)
	require.NotNil(t, meta.Settings)
	assert.Equal(t, types.DefaultVoiceSettings(), *meta.Settings)
}

func TestGetVoiceMetadata_WithoutSettings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "false", r.URL.Query().Get("with_settings"))
		_, _ = w.Write([]byte(`{"voice_id":"v","name":"n"}`))
	})

	meta, err := client.GetVoiceMetadata(context.Background(), "v", false)
	require.NoError(t, err)
	assert.Nil(t, meta.Settings)
}

func TestGetVoiceMetadata_DecodeError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})

	_, err := client.GetVoiceMetadata(context.Background(), "v", false)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindDecode))
}

func TestListVoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/voices", r.URL.Path)
		_, _ = w.Write([]byte(`{"voices":[{"voice_id":"a","name":"A"},{"voice_id":"b","name":"B"}]}`))
	})

	list, err := client.ListVoices(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[1].VoiceID)
}

func TestDeleteVoice_NoContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/v1/voices/v1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, client.DeleteVoice(context.Background(), "v1"))
}

func TestDeleteVoice_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":{"status":"voice_not_found","message":"A voice with the voice_id v1 was not found."}}`))
	})

	err := client.DeleteVoice(context.Background(), "v1")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "voice_not_found")
}

func TestAddVoice_Multipart(t *testing.T) {
	first := writeSample(t, "one.mp3", "first-sample")
	second := writeSample(t, "two.wav", "second-sample")

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/voices/add", r.URL.Path)
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}

		assert.Equal(t, "Narrator", r.FormValue("name"))
		assert.Equal(t, "Calm and warm", r.FormValue("description"))

		var labels map[string]string
		assert.NoError(t, json.Unmarshal([]byte(r.FormValue("labels")), &labels))
		assert.Equal(t, map[string]string{"accent": "british"}, labels)

		files := r.MultipartForm.File["files"]
		if assert.Len(t, files, 2) {
			assert.Equal(t, "one.mp3", files[0].Filename)
			assert.Equal(t, "two.wav", files[1].Filename)
			f, err := files[1].Open()
			if assert.NoError(t, err) {
				b, _ := io.ReadAll(f)
				_ = f.Close()
				assert.Equal(t, "second-sample", string(b))
			}
		}

		_, _ = w.Write([]byte(`{"voice_id":"new-voice"}`))
	})

	resp, err := client.AddVoice(context.Background(), AddVoiceRequest{
		Name:        "Narrator",
		Files:       []string{first, second},
		Description: testutil.Ptr("Calm and warm"),
		Labels:      map[string]string{"accent": "british"},
	})
	require.NoError(t, err)
	assert.Equal(t, "new-voice", resp.VoiceID)
	assert.Equal(t, `{"voice_id":"new-voice"}`, resp.Raw)
}

func TestAddVoice_OptionalFieldsOmitted(t *testing.T) {
	sample := writeSample(t, "s.mp3", "x")

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		_, hasDescription := r.MultipartForm.Value["description"]
		_, hasLabels := r.MultipartForm.Value["labels"]
		assert.False(t, hasDescription)
		assert.False(t, hasLabels)
		_, _ = w.Write([]byte("plain-id"))
	})

	resp, err := client.AddVoice(context.Background(), AddVoiceRequest{Name: "n", Files: []string{sample}})
	require.NoError(t, err)
	assert.Equal(t, "plain-id", resp.Raw)
	assert.Empty(t, resp.VoiceID)
}

func TestAddVoice_MissingFileSendsNothing(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(http.ResponseWriter, *http.Request) {
		calls.Add(1)
	})

	_, err := client.AddVoice(context.Background(), AddVoiceRequest{
		Name:  "n",
		Files: []string{filepath.Join(t.TempDir(), "missing.mp3")},
	})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsKind(err, pkgerrors.KindIO))
	assert.Equal(t, int32(0), calls.Load())
}

func TestAddVoice_Validation(t *testing.T) {
	client := NewClient(config.New(testKey, "http://127.0.0.1:1"))

	_, err := client.AddVoice(context.Background(), AddVoiceRequest{Files: []string{"a.mp3"}})
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = client.AddVoice(context.Background(), AddVoiceRequest{Name: "n"})
	assert.ErrorIs(t, err, ErrNoFiles)
}

func TestEditVoice(t *testing.T) {
	sample := writeSample(t, "new.mp3", "x")

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/voices/v9/edit", r.URL.Path)
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		assert.Equal(t, "Renamed", r.FormValue("name"))
		assert.Len(t, r.MultipartForm.File["files"], 1)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	err := client.EditVoice(context.Background(), EditVoiceRequest{VoiceID: "v9", Name: "Renamed", Files: []string{sample}})
	assert.NoError(t, err)
}

func TestEditVoice_Failure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":[{"type":"missing","loc":["body","name"],"msg":"Field required"}]}`))
	})

	err := client.EditVoice(context.Background(), EditVoiceRequest{VoiceID: "v9", Name: "x"})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsStatus(err, http.StatusBadRequest))
	assert.Contains(t, err.Error(), "Field required")
}

func TestEditVoiceSettings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/voices/v1/settings/edit", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"stability":0.3,"similarity_boost":0.9,"use_speaker_boost":true}`, string(body))
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	err := client.EditVoiceSettings(context.Background(), "v1", types.VoiceSettings{
		Stability:       0.3,
		SimilarityBoost: 0.9,
		UseSpeakerBoost: testutil.Ptr(true),
	})
	assert.NoError(t, err)
}

func TestEditVoiceSettings_OutOfRange(t *testing.T) {
	client := NewClient(config.New(testKey, "http://127.0.0.1:1"))
	err := client.EditVoiceSettings(context.Background(), "v1", types.VoiceSettings{Stability: -1})
	assert.ErrorIs(t, err, types.ErrSettingOutOfRange)
}

func TestGetVoiceSettings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/voices/v1/settings":
			_, _ = w.Write([]byte(`{"stability":0.1,"similarity_boost":0.2,"style":0.3}`))
		case "/v1/voices/settings/default":
			_, _ = w.Write([]byte(`{"stability":0.5,"similarity_boost":0.75}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	s, err := client.GetVoiceSettings(context.Background(), "v1")
	require.NoError(t, err)
	require.NotNil(t, s.Style)
	assert.InDelta(t, 0.3, *s.Style, 1e-9)

	d, err := client.GetDefaultVoiceSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, types.DefaultVoiceSettings(), *d)
}

func TestEmptyVoiceID(t *testing.T) {
	client := NewClient(config.New(testKey, "http://127.0.0.1:1"))
	ctx := context.Background()

	_, err := client.GetVoiceMetadata(ctx, "", false)
	assert.ErrorIs(t, err, ErrEmptyVoiceID)
	assert.ErrorIs(t, client.DeleteVoice(ctx, ""), ErrEmptyVoiceID)
	assert.ErrorIs(t, client.EditVoice(ctx, EditVoiceRequest{Name: "n"}), ErrEmptyVoiceID)
	_, err = client.GetVoiceSettings(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyVoiceID)
}
