package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vinayakray19/conquest-of-infinity/internal"
)

func NewStatsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show diary statistics",
		Args:  cobra.NoArgs,
		RunE:  makeStatsRunner(a),
	}

	return cmd
}

func makeStatsRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		api, _ := cmd.Flags().GetString("api")
		asJSON, _ := cmd.Flags().GetBool("json")

		client, err := a.client(api)
		if err != nil {
			return err
		}

		stats, err := client.Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch stats: %w", err)
		}

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Total memos: %d\n", stats.TotalMemos)
		if stats.OldestDate != nil {
			fmt.Fprintf(out, "Oldest: %s", internal.FormatDate(*stats.OldestDate))
			if stats.FirstMemoNumber != nil {
				fmt.Fprintf(out, " (memo #%d)", *stats.FirstMemoNumber)
			}
			fmt.Fprintln(out)
		}
		if stats.NewestDate != nil {
			fmt.Fprintf(out, "Newest: %s", internal.FormatDate(*stats.NewestDate))
			if stats.LastMemoNumber != nil {
				fmt.Fprintf(out, " (memo #%d)", *stats.LastMemoNumber)
			}
			fmt.Fprintln(out)
		}
		return nil
	}
}
