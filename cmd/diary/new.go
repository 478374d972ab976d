package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vinayakray19/conquest-of-infinity/internal"
)

func NewNewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a memo",
		Long:  `Create a new memo. Requires a logged-in session.`,
		Args:  cobra.NoArgs,
		RunE:  makeNewRunner(a),
	}

	cmd.Flags().String("title", "", "Memo title")
	cmd.Flags().String("date", "", "Memo date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().String("content", "", "Memo content")

	return cmd
}

func makeNewRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		api, _ := cmd.Flags().GetString("api")
		title, _ := cmd.Flags().GetString("title")
		date, _ := cmd.Flags().GetString("date")
		content, _ := cmd.Flags().GetString("content")

		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		auth, err := a.authenticator(api)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if _, err := auth.RequireAuth(ctx); err != nil {
			return fmt.Errorf("create memo: %w (run 'diary login' first)", err)
		}

		memo := internal.Memo{Title: title, Date: date, Content: content}
		if err := memo.ValidateForCreate(); err != nil {
			return err
		}

		client, err := a.client(api)
		if err != nil {
			return err
		}

		// Client-computed max+1, same convention as the web form.
		latest, err := client.ListMemos(ctx, "desc", 1, 0)
		if err != nil {
			return fmt.Errorf("create memo: %w", err)
		}
		memo.Number = 1
		if len(latest) > 0 {
			memo.Number = latest[0].Number + 1
		}

		created, err := client.CreateMemo(ctx, memo)
		if err != nil {
			return fmt.Errorf("create memo: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created memo #%d: %q (%s)\n",
			created.Number, created.Title, internal.FormatDate(created.Date))
		fmt.Fprintln(cmd.OutOrStdout(), internal.Truncate(created.Content, 100))
		return nil
	}
}
