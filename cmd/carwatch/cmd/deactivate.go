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

func deactivateCommand() *cobra.Command {
	var (
		olderThan time.Duration
		source    string
	)

	cmd := &cobra.Command{
		Use:   "deactivate",
		Short: "Deactivate listings not seen recently",
		Long: "Mark listings inactive when they have not been seen by an ingest\n" +
			"run within the cutoff window. Inactive listings keep their history\n" +
			"but are excluded from cohorts and scoring.",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			if olderThan == 0 {
				olderThan = cfg.Schedule.DeactivateAfter
			}

			log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer st.Close()

			eng := engine.NewEngine(st, engine.WithLogger(log))

			n, err := eng.RunDeactivation(ctx, source, olderThan)
			if err != nil {
				return fmt.Errorf("deactivation failed: %w", err)
			}

			log.Info("deactivation complete", "deactivated", n, "older_than", olderThan, "source", source)
			return nil
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "deactivate listings last seen before now minus this duration (default: schedule.deactivate_after)")
	cmd.Flags().StringVar(&source, "source", "", "restrict deactivation to listings from one source")

	return cmd
}

func init() {
	rootCmd.AddCommand(deactivateCommand())
}
