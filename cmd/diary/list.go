package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vinayakray19/conquest-of-infinity/internal"
)

func NewListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List memos",
		Long:    `List memos newest first, one page at a time.`,
		Args:    cobra.NoArgs,
		RunE:    makeListRunner(a),
	}

	cmd.Flags().Int("page", 1, "Page number")

	return cmd
}

func makeListRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		api, _ := cmd.Flags().GetString("api")
		asJSON, _ := cmd.Flags().GetBool("json")
		page, _ := cmd.Flags().GetInt("page")

		client, err := a.client(api)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		probe, err := client.ListMemos(ctx, "desc", internal.CountProbeLimit, 0)
		if err != nil {
			return fmt.Errorf("list memos: %w", err)
		}

		view := internal.NewListView(page, len(probe)).Clamped()
		memos, err := client.ListMemos(ctx, "desc", view.PageSize, view.Skip())
		if err != nil {
			return fmt.Errorf("list memos: %w", err)
		}

		if asJSON {
			return outputListJSON(cmd, memos, view)
		}

		for _, memo := range memos {
			fmt.Fprintf(cmd.OutOrStdout(), "Memo #%d. %s. %s\n",
				memo.Number, memo.Title, internal.FormatDate(memo.Date))
		}
		if view.TotalPages() > 1 {
			fmt.Fprintf(cmd.OutOrStdout(), "Page %d of %d (%d memos total)\n",
				view.CurrentPage, view.TotalPages(), view.TotalCount)
		}
		return nil
	}
}

func outputListJSON(cmd *cobra.Command, memos []internal.Memo, view internal.ListView) error {
	data := map[string]any{
		"memos":       memos,
		"page":        view.CurrentPage,
		"total_pages": view.TotalPages(),
		"total_memos": view.TotalCount,
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
