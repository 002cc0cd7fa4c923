package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func scoreCmd() *cobra.Command {
	scoreRoot := &cobra.Command{
		Use:   "score",
		Short: "Trigger scoring",
		Long: "Trigger scoring runs on the server, either across the whole active\n" +
			"population or for a single listing.",
	}

	scoreRoot.AddCommand(
		scoreRunCmd(),
		scoreListingCmd(),
	)

	return scoreRoot
}

func scoreRunCmd() *cobra.Command {
	var (
		brand string
		model string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a scoring pass",
		Example: `  # Score every active listing
  cw score run

  # Score one brand only
  cw score run --brand BMW

  # Score one model
  cw score run --brand Volkswagen --model Golf`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			summary, err := c.RunScoring(context.Background(), brand, model)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(summary)
			}

			return printRunSummary(summary)
		},
	}

	cmd.Flags().StringVar(&brand, "brand", "", "restrict the run to one brand")
	cmd.Flags().StringVar(&model, "model", "", "restrict the run to one model (requires --brand)")

	return cmd
}

func scoreListingCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "listing <id>",
		Short:   "Re-score a single listing",
		Example: `  cw score listing 1b4e28ba-2fa1-11d2-883f-0016d3cca427`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			outcome, err := c.ScoreListing(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(outcome)
			}

			if outcome.Status == "insufficient_data" {
				fmt.Println("Not enough comparable listings to score; recorded as insufficient market data.")
			}
			return printScoreOutcome(outcome)
		},
	}
}
