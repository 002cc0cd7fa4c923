// Package score implements the cohort-percentile deal scoring algorithm:
// a listing's price is ranked against comparable active listings and mapped
// to a 0-100 score (100 = cheapest relative to peers). Sparse cohorts fall
// back through progressively broader definitions before scoring is withheld.
package score

import (
	"errors"
	"fmt"
	"math"

	domain "github.com/jhartmann/carwatch/pkg/types"
)

// Sentinel outcomes. ErrInsufficientCohort is a documented outcome, not a
// fault: even the terminal brand+model cohort was below the minimum size.
var (
	ErrInsufficientCohort = errors.New("insufficient comparable market data")
	ErrInvalidListing     = errors.New("listing missing required fields")
)

// Params holds the calibration constants of one score version. They are
// recorded alongside every score so historical entries stay interpretable
// when the configuration changes.
type Params struct {
	MinCohortSize   int
	MileageWindowKM int
	YearWindow      int
	Version         string
}

// DefaultParams returns the default calibration.
func DefaultParams() Params {
	return Params{
		MinCohortSize:   5,
		MileageWindowKM: 20000,
		YearWindow:      1,
		Version:         "cohort_percentile_v2",
	}
}

// AppliedOverlay names one categorical adjustment applied to a base score.
type AppliedOverlay struct {
	Attribute string  `json:"attribute"`
	Value     string  `json:"value"`
	Delta     float64 `json:"delta"`
}

// Result is the outcome of evaluating one listing against a population.
// On ErrInsufficientCohort, CohortLevel and CohortSize describe the terminal
// level that was still too small.
type Result struct {
	Score       float64
	BaseScore   float64
	Percentile  float64
	CohortLevel string
	CohortSize  int
	Overlays    []AppliedOverlay
	Tier        string
}

// Diagnostics is the structured payload persisted with every score history
// entry.
type Diagnostics struct {
	Level           string           `json:"level"`
	CohortSize      int              `json:"cohort_size"`
	Percentile      *float64         `json:"percentile,omitempty"`
	BaseScore       *float64         `json:"base_score,omitempty"`
	Overlays        []AppliedOverlay `json:"overlays,omitempty"`
	Note            string           `json:"note,omitempty"`
	MinCohortSize   int              `json:"min_cohort_size"`
	MileageWindowKM int              `json:"mileage_window_km"`
	YearWindow      int              `json:"year_window"`
}

// Diagnostics builds the history payload for a scored result.
func (r *Result) Diagnostics(p Params) Diagnostics {
	pct := r.Percentile
	base := r.BaseScore
	return Diagnostics{
		Level:           r.CohortLevel,
		CohortSize:      r.CohortSize,
		Percentile:      &pct,
		BaseScore:       &base,
		Overlays:        r.Overlays,
		MinCohortSize:   p.MinCohortSize,
		MileageWindowKM: p.MileageWindowKM,
		YearWindow:      p.YearWindow,
	}
}

// InsufficientDiagnostics builds the history payload for a withheld score.
func (r *Result) InsufficientDiagnostics(p Params) Diagnostics {
	return Diagnostics{
		Level:           r.CohortLevel,
		CohortSize:      r.CohortSize,
		Note:            "insufficient market data",
		MinCohortSize:   p.MinCohortSize,
		MileageWindowKM: p.MileageWindowKM,
		YearWindow:      p.YearWindow,
	}
}

// Evaluate scores target against population. It walks the fallback ladder
// narrowest-first and accepts the first cohort meeting the minimum size; the
// population is expected to be a frozen snapshot of active listings and may
// include the target itself (it is excluded from its own cohort).
func Evaluate(
	target *domain.Listing,
	population []domain.Listing,
	p Params,
	overlays OverlayTable,
	tiers []Tier,
) (*Result, error) {
	if err := validateTarget(target); err != nil {
		return nil, err
	}

	var terminal *Result
	for _, level := range Levels(p) {
		prices := cohortPrices(target, population, level)
		terminal = &Result{CohortLevel: level.Name, CohortSize: len(prices)}

		if len(prices) < p.MinCohortSize {
			continue
		}

		pct := Percentile(prices, *target.PriceEUR)
		base := round2(pct * 100)
		final, applied := overlays.Apply(base, target)

		return &Result{
			Score:       final,
			BaseScore:   base,
			Percentile:  pct,
			CohortLevel: level.Name,
			CohortSize:  len(prices),
			Overlays:    applied,
			Tier:        Classify(final, tiers),
		}, nil
	}

	return terminal, ErrInsufficientCohort
}

// Percentile returns the fraction of cohort prices at or above target,
// in [0,1]. Ties count as "at or above", so a low price yields a high
// percentile. Linear rank position, no interpolation.
func Percentile(prices []int, target int) float64 {
	if len(prices) == 0 {
		return 0
	}
	above := 0
	for _, p := range prices {
		if p >= target {
			above++
		}
	}
	return float64(above) / float64(len(prices))
}

func validateTarget(l *domain.Listing) error {
	switch {
	case l.Brand == "":
		return fmt.Errorf("%w: brand", ErrInvalidListing)
	case l.Model == "":
		return fmt.Errorf("%w: model", ErrInvalidListing)
	case l.PriceEUR == nil || *l.PriceEUR <= 0:
		return fmt.Errorf("%w: price", ErrInvalidListing)
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
