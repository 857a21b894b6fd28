package main

import (
	"github.com/spf13/cobra"
)

func newUserCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Show account information",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "info",
			Short: "Show the account profile",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				client, err := a.api()
				if err != nil {
					return err
				}
				info, err := client.User.GetUserInfo(cmd.Context())
				if err != nil {
					return err
				}
				info.XIAPIKey = ""
				return a.printResult(cmd.OutOrStdout(), info)
			},
		},
		&cobra.Command{
			Use:   "subscription",
			Short: "Show subscription tier and character quota",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				client, err := a.api()
				if err != nil {
					return err
				}
				sub, err := client.User.GetSubscriptionInfo(cmd.Context())
				if err != nil {
					return err
				}
				return a.printResult(cmd.OutOrStdout(), sub)
			},
		},
	)
	return cmd
}
