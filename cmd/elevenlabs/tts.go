package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AltairaLabs/elevenlabs-go/tts"
	"github.com/AltairaLabs/elevenlabs-go/types"
)

const defaultSpeechFile = "speech"

func newTTSCmd(a *app) *cobra.Command {
	var (
		outFile      string
		model        string
		outputFormat string
		language     string
		latency      int
		stability    float64
		similarity   float64
		style        float64
		speakerBoost bool
	)

	cmd := &cobra.Command{
		Use:   "tts <voice-id> <text>...",
		Short: "Synthesize speech and write the audio to a file",
		Example: `  elevenlabs tts 21m00Tcm4TlvDq8ikWAM "Hello world" -o hello.mp3
  elevenlabs tts 21m00Tcm4TlvDq8ikWAM "Hola" --model eleven_multilingual_v2 --format pcm_24000 -o hola.pcm`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := tts.Request{
				Text:         strings.Join(args[1:], " "),
				OutputFormat: outputFormat,
			}
			flags := cmd.Flags()
			if model != "" {
				req.ModelID = &model
			}
			if language != "" {
				req.LanguageCode = &language
			}
			if flags.Changed("latency") {
				req.OptimizeStreamingLatency = &latency
			}
			if flags.Changed("stability") || flags.Changed("similarity-boost") ||
				flags.Changed("style") || flags.Changed("speaker-boost") {
				settings := types.DefaultVoiceSettings()
				if flags.Changed("stability") {
					settings.Stability = stability
				}
				if flags.Changed("similarity-boost") {
					settings.SimilarityBoost = similarity
				}
				if flags.Changed("style") {
					settings.Style = &style
				}
				if flags.Changed("speaker-boost") {
					settings.UseSpeakerBoost = &speakerBoost
				}
				req.VoiceSettings = &settings
			}

			if outputFormat != "" {
				format, err := tts.ParseOutputFormat(outputFormat)
				if err != nil {
					return err
				}
				if !flags.Changed("out") {
					outFile = defaultSpeechFile + format.Extension()
				}
			}

			client, err := a.api()
			if err != nil {
				return err
			}
			audio, err := client.TTS.Synthesize(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}

			if outFile == "-" {
				_, err = cmd.OutOrStdout().Write(audio)
				return err
			}
			if err := os.WriteFile(outFile, audio, 0o644); err != nil {
				return fmt.Errorf("failed to write audio: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d bytes to %s\n", len(audio), outFile)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&outFile, "out", "o", defaultSpeechFile+".mp3", "Output file, - for stdout")
	f.StringVarP(&model, "model", "m", "", "Model id, e.g. "+tts.ModelTurbo)
	f.StringVarP(&outputFormat, "format", "f", "", "Output format, e.g. "+tts.FormatMP3_44100_128)
	f.StringVar(&language, "language", "", "ISO 639-1 language code")
	f.IntVar(&latency, "latency", 0, "optimize_streaming_latency level (0-4)")
	f.Float64Var(&stability, "stability", types.DefaultStability, "Voice stability (0-1)")
	f.Float64Var(&similarity, "similarity-boost", types.DefaultSimilarityBoost, "Voice similarity boost (0-1)")
	f.Float64Var(&style, "style", 0, "Style exaggeration (0-1)")
	f.BoolVar(&speakerBoost, "speaker-boost", false, "Enable speaker boost")
	return cmd
}
