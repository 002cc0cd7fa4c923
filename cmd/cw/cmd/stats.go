package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	var (
		brand string
		model string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show model-year market statistics",
		Long: "Show the daily (brand, model, year) price and mileage aggregates\n" +
			"written as a byproduct of each scoring run.",
		Example: `  # Latest snapshots across the market
  cw stats

  # One model over its years
  cw stats --brand Volkswagen --model Golf`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			stats, err := c.ListStats(context.Background(), brand, model, limit)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(stats)
			}

			if len(stats) == 0 {
				fmt.Println("No statistics found.")
				return nil
			}

			return printStatsTable(stats)
		},
	}

	cmd.Flags().StringVar(&brand, "brand", "", "brand filter")
	cmd.Flags().StringVar(&model, "model", "", "model filter")
	cmd.Flags().IntVar(&limit, "limit", 0, "number of rows")

	return cmd
}
