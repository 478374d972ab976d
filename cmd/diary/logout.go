package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewLogoutCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the stored session",
		Args:  cobra.NoArgs,
		RunE:  makeLogoutRunner(a),
	}

	return cmd
}

func makeLogoutRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		api, _ := cmd.Flags().GetString("api")

		auth, err := a.authenticator(api)
		if err != nil {
			return err
		}

		// The server notification is best-effort; the local session is
		// cleared no matter what.
		if err := auth.Logout(cmd.Context()); err != nil {
			return fmt.Errorf("logout: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
		return nil
	}
}
