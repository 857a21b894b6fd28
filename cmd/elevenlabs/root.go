package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AltairaLabs/elevenlabs-go/pkg/config"
)

// Flag names. The api-key and api-url flags double as the
// ELEVENLABS_API_KEY and ELEVENLABS_API_URL environment variables.
const (
	flagConfig       = "config"
	flagAPIKey       = "api-key"
	flagAPIURL       = "api-url"
	flagVerbose      = "verbose"
	flagLogFormat    = "log-format"
	flagOutput       = "output"
	flagMetricsAddr  = "metrics-addr"
	flagOTLPEndpoint = "otlp-endpoint"
	flagEnvFile      = "env-file"
)

const envPrefix = "ELEVENLABS"

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	a := &app{v: v}

	rootCmd := &cobra.Command{
		Use:           "elevenlabs",
		Short:         "ElevenLabs API client",
		Version:       GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: false,
		Long: `elevenlabs synthesizes speech, manages voices and reads account
information through the ElevenLabs REST API.

The API key is read from --api-key, ELEVENLABS_API_KEY, a .env file or the
file given with --config.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.close(cmd.Context())
		},
	}

	rootCmd.SetVersionTemplate(GetVersionInfo() + "\n")

	flags := rootCmd.PersistentFlags()
	flags.StringP(flagConfig, "c", "", "YAML config file")
	flags.String(flagAPIKey, "", "API key (env ELEVENLABS_API_KEY)")
	flags.String(flagAPIURL, "", "API base URL (env ELEVENLABS_API_URL, default "+config.DefaultAPIURL+")")
	flags.BoolP(flagVerbose, "v", false, "Enable debug logging")
	flags.String(flagLogFormat, "", "Log format: text or json")
	flags.StringP(flagOutput, "O", outputJSON, "Output format for results: json or yaml")
	flags.String(flagMetricsAddr, "", "Serve Prometheus metrics on this address while the command runs")
	flags.String(flagOTLPEndpoint, "", "Export traces to this OTLP/HTTP endpoint")
	flags.StringSlice(flagEnvFile, []string{".env"}, ".env files to load, first readable wins")

	for _, name := range []string{flagConfig, flagAPIKey, flagAPIURL, flagVerbose, flagLogFormat,
		flagOutput, flagMetricsAddr, flagOTLPEndpoint} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(
		newTTSCmd(a),
		newVoicesCmd(a),
		newUserCmd(a),
	)
	return rootCmd
}
