package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func NewDelCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "del <number>",
		Aliases: []string{"rm"},
		Short:   "Delete a memo",
		Long:    `Delete a memo. Requires a logged-in session.`,
		Args:    cobra.ExactArgs(1),
		RunE:    makeDelRunner(a),
	}

	return cmd
}

func makeDelRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		number, err := strconv.Atoi(args[0])
		if err != nil || number < 1 {
			return fmt.Errorf("invalid memo number %q", args[0])
		}

		api, _ := cmd.Flags().GetString("api")
		auth, err := a.authenticator(api)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if _, err := auth.RequireAuth(ctx); err != nil {
			return fmt.Errorf("delete memo: %w (run 'diary login' first)", err)
		}

		client, err := a.client(api)
		if err != nil {
			return err
		}

		if err := client.DeleteMemo(ctx, number); err != nil {
			return fmt.Errorf("delete memo: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted memo #%d\n", number)
		return nil
	}
}
