package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	elevenlabs "github.com/AltairaLabs/elevenlabs-go"
	"github.com/AltairaLabs/elevenlabs-go/logger"
	"github.com/AltairaLabs/elevenlabs-go/metrics/prometheus"
	"github.com/AltairaLabs/elevenlabs-go/pkg/config"
	"github.com/AltairaLabs/elevenlabs-go/pkg/httputil"
	"github.com/AltairaLabs/elevenlabs-go/telemetry"
)

const serviceName = "elevenlabs-cli"

// app holds what the subcommands share: resolved settings, the logger and
// the lazily built API client.
type app struct {
	v *viper.Viper

	file    *config.File
	logger  *slog.Logger
	timeout time.Duration

	exporter       *prometheus.Exporter
	tracerProvider *sdktrace.TracerProvider

	client *elevenlabs.Client
}

// setup loads .env files and the config file, then starts logging, metrics
// and tracing. It does not require an API key.
func (a *app) setup(cmd *cobra.Command) error {
	envFiles, err := cmd.Flags().GetStringSlice(flagEnvFile)
	if err != nil {
		return fmt.Errorf("failed to get env-file flag: %w", err)
	}
	loadedEnv := config.LoadDotEnv(envFiles...)

	a.timeout = httputil.DefaultTimeout
	logging := config.DefaultLoggingConfig()

	if path := a.v.GetString(flagConfig); path != "" {
		f, err := config.LoadFile(path)
		if err != nil {
			return err
		}
		a.file = f
		if f.Timeout > 0 {
			a.timeout = f.Timeout
		}
		if f.Logging.Level != "" {
			logging.Level = f.Logging.Level
		}
		if f.Logging.Format != "" {
			logging.Format = f.Logging.Format
		}
	}

	if a.v.GetBool(flagVerbose) {
		logging.Level = config.LogLevelDebug
	}
	if format := a.v.GetString(flagLogFormat); format != "" {
		logging.Format = format
	}
	if err := logging.Validate(); err != nil {
		return err
	}

	a.logger = logger.New(logger.Options{
		Level:        logger.ParseLevel(logging.Level),
		Format:       strings.ToLower(logging.Format),
		Output:       cmd.ErrOrStderr(),
		CommonFields: map[string]string{"service": serviceName},
	})
	if loadedEnv != "" {
		a.logger.Debug("loaded env file", "path", loadedEnv)
	}

	if addr := a.v.GetString(flagMetricsAddr); addr != "" {
		a.exporter = prometheus.NewExporter(addr)
		go func() {
			if err := a.exporter.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error(cmd.Context(), a.logger, "metrics exporter stopped", "error", err)
			}
		}()
		logger.Info(cmd.Context(), a.logger, "serving metrics", "addr", addr)
	}

	if endpoint := a.v.GetString(flagOTLPEndpoint); endpoint != "" {
		res, err := telemetry.NewResource(serviceName, GetVersion(), a.apiURL())
		if err != nil {
			return fmt.Errorf("failed to build trace resource: %w", err)
		}
		tp, err := telemetry.NewTracerProvider(cmd.Context(), endpoint, res)
		if err != nil {
			return fmt.Errorf("failed to create tracer provider: %w", err)
		}
		telemetry.SetupPropagation()
		a.tracerProvider = tp
	}
	return nil
}

// apiURL is the base URL requests go to, for tagging telemetry.
func (a *app) apiURL() string {
	u := a.v.GetString(flagAPIURL)
	if a.file != nil && a.file.APIURL != "" && (u == "" || !a.v.IsSet(flagAPIURL)) {
		return a.file.APIURL
	}
	if u == "" {
		return config.DefaultAPIURL
	}
	return u
}

// resolveConfig applies flags over the config file, or reads flags and
// environment alone when no file was given.
func (a *app) resolveConfig() (config.Config, error) {
	if a.file != nil {
		f := *a.file
		// Flags and environment win over the file.
		if key := a.v.GetString(flagAPIKey); key != "" && (a.v.IsSet(flagAPIKey) || f.APIKey == "") {
			f.APIKey = key
		}
		if u := a.v.GetString(flagAPIURL); u != "" && (a.v.IsSet(flagAPIURL) || f.APIURL == "") {
			f.APIURL = u
		}
		return f.Config()
	}

	key := a.v.GetString(flagAPIKey)
	if key == "" {
		return config.Config{}, fmt.Errorf("%w: use --%s or a config file",
			&config.VarNotSetError{Name: config.EnvAPIKey}, flagAPIKey)
	}
	cfg := config.New(key, a.v.GetString(flagAPIURL))
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// api returns the API client, building it on first use.
func (a *app) api() (*elevenlabs.Client, error) {
	if a.client != nil {
		return a.client, nil
	}
	cfg, err := a.resolveConfig()
	if err != nil {
		return nil, err
	}

	opts := []elevenlabs.Option{elevenlabs.WithLogger(a.logger)}
	if a.exporter != nil {
		opts = append(opts, elevenlabs.WithMetrics(prometheus.NewRecorder()))
	}
	if a.tracerProvider != nil {
		opts = append(opts,
			elevenlabs.WithTracerProvider(a.tracerProvider),
			elevenlabs.WithHTTPClient(httputil.NewInstrumentedClient(a.timeout, a.tracerProvider)),
		)
	} else {
		opts = append(opts, elevenlabs.WithHTTPClient(httputil.NewHTTPClient(a.timeout)))
	}

	a.client = elevenlabs.New(cfg, opts...)
	a.logger.Debug("client ready", "config", cfg.String())
	return a.client, nil
}

// close flushes traces and stops the metrics server.
func (a *app) close(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var errs []error
	if a.tracerProvider != nil {
		errs = append(errs, a.tracerProvider.Shutdown(ctx))
	}
	if a.exporter != nil {
		errs = append(errs, a.exporter.Shutdown(ctx))
	}
	return errors.Join(errs...)
}
