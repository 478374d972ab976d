package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vinayakray19/conquest-of-infinity/internal"
)

func NewWhoamiCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE:  makeWhoamiRunner(a),
	}

	return cmd
}

func makeWhoamiRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		api, _ := cmd.Flags().GetString("api")
		asJSON, _ := cmd.Flags().GetBool("json")

		auth, err := a.authenticator(api)
		if err != nil {
			return err
		}

		state, user := auth.CheckAuth(cmd.Context())

		if asJSON {
			data := map[string]any{"state": state.String()}
			if user != nil {
				data["username"] = user.Username
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(data)
		}

		switch state {
		case internal.StateAuthenticated:
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", user.Username)
			if exp, ok := a.session().TokenExpiry(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Session expires %s\n", exp.Local().Format("Jan 2 15:04"))
			}
		case internal.StateExpired:
			fmt.Fprintln(cmd.OutOrStdout(), "Session expired; run 'diary login'")
		default:
			fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
		}
		return nil
	}
}
