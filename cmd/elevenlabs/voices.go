package main

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/AltairaLabs/elevenlabs-go/types"
	"github.com/AltairaLabs/elevenlabs-go/voices"
)

// maxParallelDeletes bounds concurrent DELETE calls from one invocation.
const maxParallelDeletes = 4

func newVoicesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "voices",
		Short: "Manage voices",
	}
	cmd.AddCommand(
		newVoicesListCmd(a),
		newVoicesGetCmd(a),
		newVoicesDeleteCmd(a),
		newVoicesAddCmd(a),
		newVoicesEditCmd(a),
		newVoicesSettingsCmd(a),
	)
	return cmd
}

func newVoicesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available voices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.api()
			if err != nil {
				return err
			}
			list, err := client.Voices.ListVoices(cmd.Context())
			if err != nil {
				return err
			}
			return a.printResult(cmd.OutOrStdout(), list)
		},
	}
}

func newVoicesGetCmd(a *app) *cobra.Command {
	var withSettings bool
	cmd := &cobra.Command{
		Use:   "get <voice-id>",
		Short: "Show a voice's metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.api()
			if err != nil {
				return err
			}
			meta, err := client.Voices.GetVoiceMetadata(cmd.Context(), args[0], withSettings)
			if err != nil {
				return err
			}
			return a.printResult(cmd.OutOrStdout(), meta)
		},
	}
	cmd.Flags().BoolVar(&withSettings, "with-settings", false, "Include the voice's stored settings")
	return cmd
}

func newVoicesDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <voice-id>...",
		Short: "Delete one or more voices",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.api()
			if err != nil {
				return err
			}

			var mu sync.Mutex
			out := cmd.OutOrStdout()

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(maxParallelDeletes)
			for _, id := range args {
				g.Go(func() error {
					if err := client.Voices.DeleteVoice(ctx, id); err != nil {
						return fmt.Errorf("delete %s: %w", id, err)
					}
					mu.Lock()
					defer mu.Unlock()
					_, err := fmt.Fprintf(out, "deleted %s\n", id)
					return err
				})
			}
			return g.Wait()
		},
	}
}

func newVoicesAddCmd(a *app) *cobra.Command {
	var (
		name        string
		files       []string
		description string
		labels      map[string]string
	)
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Clone a voice from sample files",
		Example: `  elevenlabs voices add --name Narrator --file a.mp3 --file b.mp3 --label accent=british`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.api()
			if err != nil {
				return err
			}
			req := voices.AddVoiceRequest{Name: name, Files: files, Labels: labels}
			if cmd.Flags().Changed("description") {
				req.Description = &description
			}
			resp, err := client.Voices.AddVoice(cmd.Context(), req)
			if err != nil {
				return err
			}
			if resp.VoiceID == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), resp.Raw)
				return err
			}
			return a.printResult(cmd.OutOrStdout(), map[string]string{"voice_id": resp.VoiceID})
		},
	}
	addVoiceFormFlags(cmd, &name, &files, &description, &labels)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newVoicesEditCmd(a *app) *cobra.Command {
	var (
		name        string
		files       []string
		description string
		labels      map[string]string
	)
	cmd := &cobra.Command{
		Use:   "edit <voice-id>",
		Short: "Update a voice's name, description, labels or samples",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.api()
			if err != nil {
				return err
			}
			req := voices.EditVoiceRequest{VoiceID: args[0], Name: name, Files: files, Labels: labels}
			if cmd.Flags().Changed("description") {
				req.Description = &description
			}
			if err := client.Voices.EditVoice(cmd.Context(), req); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", args[0])
			return err
		},
	}
	addVoiceFormFlags(cmd, &name, &files, &description, &labels)
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func addVoiceFormFlags(cmd *cobra.Command, name *string, files *[]string, description *string, labels *map[string]string) {
	f := cmd.Flags()
	f.StringVar(name, "name", "", "Voice name")
	f.StringArrayVar(files, "file", nil, "Sample audio file (repeatable)")
	f.StringVar(description, "description", "", "Voice description")
	f.StringToStringVar(labels, "label", nil, "Label as key=value (repeatable)")
}

func newVoicesSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Read or change voice settings",
	}

	var (
		stability    float64
		similarity   float64
		style        float64
		speakerBoost bool
	)
	set := &cobra.Command{
		Use:   "set <voice-id>",
		Short: "Replace a voice's stored settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.api()
			if err != nil {
				return err
			}
			settings := types.VoiceSettings{Stability: stability, SimilarityBoost: similarity}
			if cmd.Flags().Changed("style") {
				settings.Style = &style
			}
			if cmd.Flags().Changed("speaker-boost") {
				settings.UseSpeakerBoost = &speakerBoost
			}
			if err := client.Voices.EditVoiceSettings(cmd.Context(), args[0], settings); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "updated settings for %s\n", args[0])
			return err
		},
	}
	set.Flags().Float64Var(&stability, "stability", types.DefaultStability, "Voice stability (0-1)")
	set.Flags().Float64Var(&similarity, "similarity-boost", types.DefaultSimilarityBoost, "Voice similarity boost (0-1)")
	set.Flags().Float64Var(&style, "style", 0, "Style exaggeration (0-1)")
	set.Flags().BoolVar(&speakerBoost, "speaker-boost", false, "Enable speaker boost")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <voice-id>",
			Short: "Show a voice's stored settings",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				client, err := a.api()
				if err != nil {
					return err
				}
				s, err := client.Voices.GetVoiceSettings(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.printResult(cmd.OutOrStdout(), s)
			},
		},
		&cobra.Command{
			Use:   "default",
			Short: "Show the settings new voices start with",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				client, err := a.api()
				if err != nil {
					return err
				}
				s, err := client.Voices.GetDefaultVoiceSettings(cmd.Context())
				if err != nil {
					return err
				}
				return a.printResult(cmd.OutOrStdout(), s)
			},
		},
		set,
	)
	return cmd
}
