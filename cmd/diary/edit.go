package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vinayakray19/conquest-of-infinity/internal"
)

func NewEditCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <number>",
		Short: "Update a memo",
		Long:  `Replace fields of an existing memo.`,
		Args:  cobra.ExactArgs(1),
		RunE:  makeEditRunner(a),
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("date", "", "New date (YYYY-MM-DD)")
	cmd.Flags().String("content", "", "New content")

	return cmd
}

func makeEditRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		number, err := strconv.Atoi(args[0])
		if err != nil || number < 1 {
			return fmt.Errorf("invalid memo number %q", args[0])
		}

		api, _ := cmd.Flags().GetString("api")
		title, _ := cmd.Flags().GetString("title")
		date, _ := cmd.Flags().GetString("date")
		content, _ := cmd.Flags().GetString("content")

		if title == "" && date == "" && content == "" {
			return fmt.Errorf("nothing to update: pass --title, --date, or --content")
		}

		client, err := a.client(api)
		if err != nil {
			return err
		}

		patch := internal.MemoPatch{Title: title, Date: date, Content: content}
		updated, err := client.UpdateMemo(cmd.Context(), number, patch)
		if err != nil {
			return fmt.Errorf("edit memo: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Updated memo #%d: %q\n", updated.Number, updated.Title)
		return nil
	}
}
