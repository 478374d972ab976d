package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vinayakray19/conquest-of-infinity/internal"
)

func NewShowCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <number>",
		Short: "Show a memo",
		Long:  `Display a memo with its previous/next neighbors.`,
		Args:  cobra.ExactArgs(1),
		RunE:  makeShowRunner(a),
	}

	return cmd
}

func makeShowRunner(a *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		number, err := strconv.Atoi(args[0])
		if err != nil || number < 1 {
			return fmt.Errorf("invalid memo number %q", args[0])
		}

		api, _ := cmd.Flags().GetString("api")
		asJSON, _ := cmd.Flags().GetBool("json")

		client, err := a.client(api)
		if err != nil {
			return err
		}

		ctx := cmd.Context()

		// Fetch memo and neighbors concurrently; a navigation failure
		// degrades to no neighbors instead of failing the memo.
		type navResult struct {
			nav *internal.Navigation
			err error
		}
		navCh := make(chan navResult, 1)
		go func() {
			nav, err := client.GetNavigation(ctx, number)
			navCh <- navResult{nav: nav, err: err}
		}()

		memo, err := client.GetMemo(ctx, number)
		res := <-navCh
		if err != nil {
			return fmt.Errorf("show memo: %w", err)
		}

		nav := res.nav
		if res.err != nil {
			nav = &internal.Navigation{}
		}

		if err := memo.Validate(); err != nil {
			return fmt.Errorf("show memo: %w", err)
		}

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{"memo": memo, "navigation": nav})
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Memo #%d: %s\n", memo.Number, memo.Title)
		fmt.Fprintf(out, "%s\n\n", internal.FormatDate(memo.Date))
		fmt.Fprintln(out, memo.Content)

		if nav.Previous != nil {
			fmt.Fprintf(out, "\nPrevious: #%d %s\n", nav.Previous.Number, nav.Previous.Title)
		}
		if nav.Next != nil {
			fmt.Fprintf(out, "Next: #%d %s\n", nav.Next.Number, nav.Next.Title)
		}
		return nil
	}
}
