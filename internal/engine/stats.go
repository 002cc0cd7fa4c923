package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	domain "github.com/jhartmann/carwatch/pkg/types"
)

type statGroup struct {
	brand    string
	model    string
	year     int
	prices   []int
	mileages []int
}

// refreshModelYearStats aggregates the scoring run's population snapshot into
// daily per-(brand, model, year) statistics and upserts today's rows.
func (eng *Engine) refreshModelYearStats(
	ctx context.Context,
	runStart time.Time,
	population []domain.Listing,
) error {
	stats := buildModelYearStats(population, runStart)
	if len(stats) == 0 {
		return nil
	}

	if err := eng.store.UpsertModelYearStats(ctx, stats); err != nil {
		return fmt.Errorf("upserting model-year stats: %w", err)
	}

	eng.log.Info("model-year stats refreshed", "groups", len(stats))
	return nil
}

// buildModelYearStats groups active, priced listings by (brand, model, year).
// Grouping is case-insensitive; the first seen spelling is kept for display.
func buildModelYearStats(population []domain.Listing, runStart time.Time) []domain.ModelYearStat {
	snapshot := runStart.UTC().Truncate(24 * time.Hour)

	groups := make(map[string]*statGroup)
	for i := range population {
		l := &population[i]
		if !l.IsActive || l.Year == nil || l.PriceEUR == nil {
			continue
		}

		key := fmt.Sprintf("%s|%s|%d",
			strings.ToLower(strings.TrimSpace(l.Brand)),
			strings.ToLower(strings.TrimSpace(l.Model)),
			*l.Year,
		)
		g, ok := groups[key]
		if !ok {
			g = &statGroup{brand: l.Brand, model: l.Model, year: *l.Year}
			groups[key] = g
		}

		g.prices = append(g.prices, *l.PriceEUR)
		if l.MileageKM != nil {
			g.mileages = append(g.mileages, *l.MileageKM)
		}
	}

	stats := make([]domain.ModelYearStat, 0, len(groups))
	for _, g := range groups {
		stats = append(stats, domain.ModelYearStat{
			SnapshotDate:  snapshot,
			Brand:         g.brand,
			Model:         g.model,
			Year:          g.year,
			N:             len(g.prices),
			AvgPrice:      mean(g.prices),
			MedianPrice:   median(g.prices),
			AvgMileage:    mean(g.mileages),
			MedianMileage: median(g.mileages),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		a, b := stats[i], stats[j]
		if a.Brand != b.Brand {
			return a.Brand < b.Brand
		}
		if a.Model != b.Model {
			return a.Model < b.Model
		}
		return a.Year < b.Year
	})

	return stats
}

func mean(vals []int) *float64 {
	if len(vals) == 0 {
		return nil
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	m := float64(sum) / float64(len(vals))
	return &m
}

// median returns the middle value, averaging the two central values for
// even-sized inputs. The input slice is not modified.
func median(vals []int) *float64 {
	if len(vals) == 0 {
		return nil
	}
	sorted := make([]int, len(vals))
	copy(sorted, vals)
	sort.Ints(sorted)

	mid := len(sorted) / 2
	var m float64
	if len(sorted)%2 == 1 {
		m = float64(sorted[mid])
	} else {
		m = float64(sorted[mid-1]+sorted[mid]) / 2
	}
	return &m
}
