package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	historyRoot := &cobra.Command{
		Use:   "history",
		Short: "Inspect listing history",
		Long: "Inspect the recorded score and price history of a listing.\n" +
			"Both are append-only: every scoring outcome and every observed\n" +
			"price or mileage change adds a row.",
	}

	historyRoot.AddCommand(
		historyScoresCmd(),
		historyPricesCmd(),
	)

	return historyRoot
}

func historyScoresCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "scores <listing_id>",
		Short: "Show score history for a listing",
		Args:  cobra.ExactArgs(1),
		Example: `  cw history scores 1b4e28ba-2fa1-11d2-883f-0016d3cca427
  cw history scores 1b4e28ba-2fa1-11d2-883f-0016d3cca427 --limit 10`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			entries, err := c.GetScoreHistory(context.Background(), args[0], limit)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(entries)
			}

			if len(entries) == 0 {
				fmt.Println("No score history found.")
				return nil
			}

			return printScoreHistoryTable(entries)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "number of entries (most recent first)")

	return cmd
}

func historyPricesCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "prices <listing_id>",
		Short:   "Show price history for a listing",
		Args:    cobra.ExactArgs(1),
		Example: `  cw history prices 1b4e28ba-2fa1-11d2-883f-0016d3cca427`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			entries, err := c.GetPriceHistory(context.Background(), args[0], limit)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(entries)
			}

			if len(entries) == 0 {
				fmt.Println("No price history found.")
				return nil
			}

			return printPriceHistoryTable(entries)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "number of entries (most recent first)")

	return cmd
}
