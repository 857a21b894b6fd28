// Package voices manages voice profiles: metadata lookup, listing, cloning
// from sample files, editing, deletion and voice settings.
package voices

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"go.opentelemetry.io/otel/trace"

	"github.com/AltairaLabs/elevenlabs-go/internal/rest"
	"github.com/AltairaLabs/elevenlabs-go/logger"
	"github.com/AltairaLabs/elevenlabs-go/pkg/codec"
	"github.com/AltairaLabs/elevenlabs-go/pkg/config"
	pkgerrors "github.com/AltairaLabs/elevenlabs-go/pkg/errors"
	"github.com/AltairaLabs/elevenlabs-go/types"
)

// Operation names used in errors, logs, metrics and spans.
const (
	opGetVoiceMetadata        = "voices.GetVoiceMetadata"
	opListVoices              = "voices.ListVoices"
	opDeleteVoice             = "voices.DeleteVoice"
	opAddVoice                = "voices.AddVoice"
	opEditVoice               = "voices.EditVoice"
	opEditVoiceSettings       = "voices.EditVoiceSettings"
	opGetVoiceSettings        = "voices.GetVoiceSettings"
	opGetDefaultVoiceSettings = "voices.GetDefaultVoiceSettings"
)

const voicesPath = "/v1/voices"

// Option configures a Client.
type Option = rest.Option

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option { return rest.WithHTTPClient(hc) }

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option { return rest.WithLogger(l) }

// WithMetrics sets the metrics hook.
func WithMetrics(m rest.Metrics) Option { return rest.WithMetrics(m) }

// WithTracerProvider sets the tracer provider spans are created from.
func WithTracerProvider(tp trace.TracerProvider) Option { return rest.WithTracerProvider(tp) }

// Client calls the voices endpoints. It is safe for concurrent use.
type Client struct {
	rest *rest.Client
}

// NewClient creates a Client for cfg.
func NewClient(cfg config.Config, opts ...Option) *Client {
	return &Client{rest: rest.New(cfg, opts...)}
}

func voicePath(voiceID string, suffix ...string) string {
	p := voicesPath + "/" + url.PathEscape(voiceID)
	for _, s := range suffix {
		p += "/" + s
	}
	return p
}

// GetVoiceMetadata returns a voice's metadata. withSettings asks the API to
// include the voice's stored settings.
func (c *Client) GetVoiceMetadata(ctx context.Context, voiceID string, withSettings bool) (*VoiceMetadata, error) {
	if voiceID == "" {
		return nil, ErrEmptyVoiceID
	}
	ctx = logger.WithVoiceID(ctx, voiceID)
	path := voicePath(voiceID) + "?with_settings=" + strconv.FormatBool(withSettings)

	resp, err := c.rest.DoJSON(ctx, http.MethodGet, path, nil, opGetVoiceMetadata)
	if err != nil {
		return nil, err
	}
	return rest.Decode[VoiceMetadata](opGetVoiceMetadata, resp)
}

// ListVoices returns every voice available to the account.
func (c *Client) ListVoices(ctx context.Context) ([]VoiceMetadata, error) {
	resp, err := c.rest.DoJSON(ctx, http.MethodGet, voicesPath, nil, opListVoices)
	if err != nil {
		return nil, err
	}
	list, err := rest.Decode[ListResponse](opListVoices, resp)
	if err != nil {
		return nil, err
	}
	return list.Voices, nil
}

// DeleteVoice deletes a voice. Any 2xx response is success.
func (c *Client) DeleteVoice(ctx context.Context, voiceID string) error {
	if voiceID == "" {
		return ErrEmptyVoiceID
	}
	ctx = logger.WithVoiceID(ctx, voiceID)
	_, err := c.rest.DoJSON(ctx, http.MethodDelete, voicePath(voiceID), nil, opDeleteVoice)
	return err
}

// AddVoice clones a voice from sample files. Every file is read before the
// request is sent; a file that cannot be read fails with a KindIO error.
func (c *Client) AddVoice(ctx context.Context, req AddVoiceRequest) (*AddVoiceResponse, error) {
	if req.Name == "" {
		return nil, ErrEmptyName
	}
	if len(req.Files) == 0 {
		return nil, ErrNoFiles
	}

	form, err := buildForm(opAddVoice, req.Name, req.Files, req.Description, req.Labels)
	if err != nil {
		return nil, err
	}

	resp, err := c.rest.DoMultipart(ctx, voicesPath+"/add", form, opAddVoice)
	if err != nil {
		return nil, err
	}

	out := &AddVoiceResponse{Raw: string(resp.Body)}
	if decoded, err := codec.DecodeBytes[struct {
		VoiceID string `json:"voice_id"`
	}](resp.Body); err == nil {
		out.VoiceID = decoded.VoiceID
	}
	logger.Info(ctx, c.rest.Logger(), "voice added", "voice_id", out.VoiceID, "files", len(req.Files))
	return out, nil
}

// EditVoice updates a voice's name, description, labels and, when given,
// its sample files.
func (c *Client) EditVoice(ctx context.Context, req EditVoiceRequest) error {
	if req.VoiceID == "" {
		return ErrEmptyVoiceID
	}
	if req.Name == "" {
		return ErrEmptyName
	}
	ctx = logger.WithVoiceID(ctx, req.VoiceID)

	form, err := buildForm(opEditVoice, req.Name, req.Files, req.Description, req.Labels)
	if err != nil {
		return err
	}

	_, err = c.rest.DoMultipart(ctx, voicePath(req.VoiceID, "edit"), form, opEditVoice)
	return err
}

// EditVoiceSettings replaces a voice's stored settings.
func (c *Client) EditVoiceSettings(ctx context.Context, voiceID string, settings types.VoiceSettings) error {
	if voiceID == "" {
		return ErrEmptyVoiceID
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	ctx = logger.WithVoiceID(ctx, voiceID)
	_, err := c.rest.DoJSON(ctx, http.MethodPost, voicePath(voiceID, "settings", "edit"), settings, opEditVoiceSettings)
	return err
}

// GetVoiceSettings returns a voice's stored settings.
func (c *Client) GetVoiceSettings(ctx context.Context, voiceID string) (*types.VoiceSettings, error) {
	if voiceID == "" {
		return nil, ErrEmptyVoiceID
	}
	ctx = logger.WithVoiceID(ctx, voiceID)
	resp, err := c.rest.DoJSON(ctx, http.MethodGet, voicePath(voiceID, "settings"), nil, opGetVoiceSettings)
	if err != nil {
		return nil, err
	}
	return rest.Decode[types.VoiceSettings](opGetVoiceSettings, resp)
}

// GetDefaultVoiceSettings returns the settings new voices start with.
func (c *Client) GetDefaultVoiceSettings(ctx context.Context) (*types.VoiceSettings, error) {
	resp, err := c.rest.DoJSON(ctx, http.MethodGet, voicesPath+"/settings/default", nil, opGetDefaultVoiceSettings)
	if err != nil {
		return nil, err
	}
	return rest.Decode[types.VoiceSettings](opGetDefaultVoiceSettings, resp)
}

func buildForm(op, name string, files []string, description *string, labels map[string]string) (*rest.Multipart, error) {
	form := rest.NewMultipart(op)
	if err := form.AddField("name", name); err != nil {
		return nil, err
	}
	for _, path := range files {
		if err := form.AddFile("files", path); err != nil {
			return nil, err
		}
	}
	if description != nil {
		if err := form.AddField("description", *description); err != nil {
			return nil, err
		}
	}
	if len(labels) > 0 {
		encoded, err := codec.Encode(labels)
		if err != nil {
			return nil, pkgerrors.Encode(op, err)
		}
		if err := form.AddField("labels", encoded); err != nil {
			return nil, err
		}
	}
	return form, nil
}
