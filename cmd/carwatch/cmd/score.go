package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhartmann/carwatch/internal/config"
	"github.com/jhartmann/carwatch/internal/engine"
	"github.com/jhartmann/carwatch/internal/store"
	"github.com/jhartmann/carwatch/pkg/logger"
)

func scoreCommand() *cobra.Command {
	var (
		brand string
		model string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Run a scoring pass over active listings",
		Long: "Run a single scoring pass over the active listings and exit.\n" +
			"By default all active listings are scored; use --brand (and\n" +
			"optionally --model) to restrict the run to one slice of the market.",
		RunE: func(_ *cobra.Command, _ []string) error {
			if model != "" && brand == "" {
				return fmt.Errorf("--model requires --brand")
			}

			cfg, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()

			st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer st.Close()

			eng := engine.NewEngine(st,
				engine.WithLogger(log),
				engine.WithParams(cfg.Scoring.Params()),
				engine.WithOverlays(cfg.Scoring.OverlayTable()),
				engine.WithTiers(cfg.Scoring.TierList()),
			)

			summary, err := eng.RunScoring(ctx, engine.Scope{Brand: brand, Model: model})
			if err != nil {
				return fmt.Errorf("scoring run failed: %w", err)
			}

			log.Info("scoring run complete",
				"version", summary.ScoreVersion,
				"scored", summary.Scored,
				"insufficient", summary.Insufficient,
				"invalid", summary.Invalid,
				"failed", summary.Failed,
				"total", summary.Total,
				"duration", summary.Duration.Round(time.Millisecond),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&brand, "brand", "", "restrict the run to one brand")
	cmd.Flags().StringVar(&model, "model", "", "restrict the run to one model (requires --brand)")

	return cmd
}

func init() {
	rootCmd.AddCommand(scoreCommand())
}
