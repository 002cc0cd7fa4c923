package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhartmann/carwatch/internal/config"
	"github.com/jhartmann/carwatch/internal/store"
	"github.com/jhartmann/carwatch/pkg/logger"
	domain "github.com/jhartmann/carwatch/pkg/types"
)

func seedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed <file.json>",
		Short: "Load listings from a JSON file",
		Long: "Read a JSON array of normalized listings from a file and feed each\n" +
			"one through the regular upsert path, so price history and lifecycle\n" +
			"timestamps behave exactly as they do for live ingestion.",
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading seed file: %w", err)
			}

			var listings []domain.Listing
			if err := json.Unmarshal(data, &listings); err != nil {
				return fmt.Errorf("parsing seed file: %w", err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()

			st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer st.Close()

			var inserted, updated int
			for i := range listings {
				l := &listings[i]
				if err := prepareSeedListing(l); err != nil {
					return fmt.Errorf("listing %d: %w", i, err)
				}

				wasNew, err := st.UpsertListing(ctx, l)
				if err != nil {
					return fmt.Errorf("upserting listing %d (%s): %w", i, l.URL, err)
				}
				if wasNew {
					inserted++
				} else {
					updated++
				}
			}

			log.Info("seed complete", "inserted", inserted, "updated", updated)
			return nil
		},
	}

	return cmd
}

func prepareSeedListing(l *domain.Listing) error {
	if strings.TrimSpace(l.URL) == "" {
		return fmt.Errorf("missing url")
	}
	if strings.TrimSpace(l.Brand) == "" || strings.TrimSpace(l.Model) == "" {
		return fmt.Errorf("missing brand or model")
	}

	if l.Source == "" {
		l.Source = "seed"
	}
	if l.FuelType == "" {
		l.FuelType = domain.FuelUnknown
	}
	if l.Transmission == "" {
		l.Transmission = domain.TransmissionUnknown
	}
	if l.Condition == "" {
		l.Condition = domain.ConditionUnknown
	}
	return nil
}

func init() {
	rootCmd.AddCommand(seedCommand())
}
