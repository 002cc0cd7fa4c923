// Package engine implements the core business logic loops: scoring runs,
// listing deactivation, and the daily model-year statistics refresh.
package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jhartmann/carwatch/internal/metrics"
	"github.com/jhartmann/carwatch/internal/store"
	score "github.com/jhartmann/carwatch/pkg/scorer"
	domain "github.com/jhartmann/carwatch/pkg/types"
)

// Engine orchestrates scoring and lifecycle maintenance over the store.
type Engine struct {
	store    store.Store
	log      *slog.Logger
	params   score.Params
	overlays score.OverlayTable
	tiers    []score.Tier
	now      func() time.Time
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(s store.Store, opts ...EngineOption) *Engine {
	eng := &Engine{
		store:    s,
		log:      slog.Default(),
		params:   score.DefaultParams(),
		overlays: score.DefaultOverlays(),
		tiers:    score.DefaultTiers(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithParams sets the scoring calibration.
func WithParams(p score.Params) EngineOption {
	return func(e *Engine) {
		e.params = p
	}
}

// WithOverlays sets the categorical overlay table.
func WithOverlays(t score.OverlayTable) EngineOption {
	return func(e *Engine) {
		e.overlays = t
	}
}

// WithTiers sets the tier classification table.
func WithTiers(tiers []score.Tier) EngineOption {
	return func(e *Engine) {
		e.tiers = tiers
	}
}

// WithNow sets the clock, for tests.
func WithNow(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// Scope restricts a scoring run to one brand or one brand+model. Empty
// fields mean no restriction.
type Scope struct {
	Brand string
	Model string
}

// RunScoring evaluates every active listing in scope against a frozen
// snapshot of the active population and persists each outcome. Per-listing
// failures are counted, not fatal; an invalid overlay or tier configuration
// fails the whole run before any listing is touched.
func (eng *Engine) RunScoring(ctx context.Context, scope Scope) (*domain.RunSummary, error) {
	if err := eng.overlays.Validate(); err != nil {
		return nil, fmt.Errorf("invalid overlay configuration: %w", err)
	}
	if err := score.ValidateTiers(eng.tiers); err != nil {
		return nil, fmt.Errorf("invalid tier configuration: %w", err)
	}

	start := eng.now()
	defer func() {
		metrics.ScoringRunDuration.Observe(time.Since(start).Seconds())
	}()

	population, err := eng.store.ListActiveListings(ctx, scope.Brand, scope.Model)
	if err != nil {
		return nil, fmt.Errorf("listing active listings: %w", err)
	}

	summary := &domain.RunSummary{
		ScoreVersion: eng.params.Version,
		Total:        len(population),
		StartedAt:    start,
	}

	for i := range population {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}
		eng.scoreListing(ctx, &population[i], population, summary)
	}

	// Stats refresh is a byproduct; a failure does not fail the run.
	if err := eng.refreshModelYearStats(ctx, start, population); err != nil {
		eng.log.Error("model-year stats refresh failed", "error", err)
	}

	summary.Duration = eng.now().Sub(start)
	eng.log.Info("scoring run complete",
		"version", summary.ScoreVersion,
		"total", summary.Total,
		"scored", summary.Scored,
		"insufficient", summary.Insufficient,
		"invalid", summary.Invalid,
		"failed", summary.Failed,
		"duration", summary.Duration,
	)

	return summary, nil
}

func (eng *Engine) scoreListing(
	ctx context.Context,
	target *domain.Listing,
	population []domain.Listing,
	summary *domain.RunSummary,
) {
	res, err := score.Evaluate(target, population, eng.params, eng.overlays, eng.tiers)
	computedAt := eng.now()

	switch {
	case errors.Is(err, score.ErrInvalidListing):
		summary.Invalid++
		metrics.ScoringListingsTotal.WithLabelValues("invalid").Inc()
		eng.log.Warn("listing not scorable", "listing", target.ID, "error", err)
		return

	case errors.Is(err, score.ErrInsufficientCohort):
		diag := res.InsufficientDiagnostics(eng.params)
		details, mErr := json.Marshal(diag)
		if mErr != nil {
			summary.Failed++
			metrics.ScoringListingsTotal.WithLabelValues("failed").Inc()
			eng.log.Error("marshaling diagnostics failed", "listing", target.ID, "error", mErr)
			return
		}
		if sErr := eng.store.RecordInsufficient(
			ctx, target.ID, eng.params.Version, details, computedAt,
		); sErr != nil {
			summary.Failed++
			metrics.ScoringListingsTotal.WithLabelValues("failed").Inc()
			eng.log.Error("recording insufficient outcome failed", "listing", target.ID, "error", sErr)
			return
		}
		summary.Insufficient++
		metrics.ScoringListingsTotal.WithLabelValues("insufficient").Inc()
		metrics.CohortLevelUsed.WithLabelValues(res.CohortLevel).Inc()
		return

	case err != nil:
		summary.Failed++
		metrics.ScoringListingsTotal.WithLabelValues("failed").Inc()
		eng.log.Error("evaluating listing failed", "listing", target.ID, "error", err)
		return
	}

	details, err := json.Marshal(res.Diagnostics(eng.params))
	if err != nil {
		summary.Failed++
		metrics.ScoringListingsTotal.WithLabelValues("failed").Inc()
		eng.log.Error("marshaling diagnostics failed", "listing", target.ID, "error", err)
		return
	}

	update := &store.ScoreUpdate{
		ListingID:  target.ID,
		Score:      res.Score,
		Version:    eng.params.Version,
		Tier:       res.Tier,
		CohortSize: res.CohortSize,
		Percentile: res.Percentile,
		ComputedAt: computedAt,
		Details:    details,
	}
	if err := eng.store.ApplyScore(ctx, update); err != nil {
		summary.Failed++
		metrics.ScoringListingsTotal.WithLabelValues("failed").Inc()
		eng.log.Error("applying score failed", "listing", target.ID, "error", err)
		return
	}

	summary.Scored++
	metrics.ScoringListingsTotal.WithLabelValues("scored").Inc()
	metrics.ScoringDistribution.Observe(res.Score)
	metrics.CohortLevelUsed.WithLabelValues(res.CohortLevel).Inc()
}

// RunDeactivation marks listings not seen within olderThan as inactive and
// returns the number of rows affected. An empty source deactivates across
// all sources.
func (eng *Engine) RunDeactivation(ctx context.Context, source string, olderThan time.Duration) (int, error) {
	cutoff := eng.now().Add(-olderThan)

	n, err := eng.store.MarkInactive(ctx, source, cutoff)
	if err != nil {
		return 0, fmt.Errorf("marking inactive: %w", err)
	}

	if n > 0 {
		metrics.DeactivatedListingsTotal.Add(float64(n))
	}
	eng.log.Info("deactivation complete", "deactivated", n, "source", source, "cutoff", cutoff)
	return n, nil
}

// ScoreOne re-evaluates a single listing against the current active
// population of its brand and model. Used by the on-demand scoring API.
func (eng *Engine) ScoreOne(ctx context.Context, listingID string) (*score.Result, error) {
	target, err := eng.store.GetListingByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("getting listing %s: %w", listingID, err)
	}

	population, err := eng.store.ListActiveListings(ctx, target.Brand, target.Model)
	if err != nil {
		return nil, fmt.Errorf("listing active listings: %w", err)
	}

	res, err := score.Evaluate(target, population, eng.params, eng.overlays, eng.tiers)
	computedAt := eng.now()

	if errors.Is(err, score.ErrInsufficientCohort) {
		details, mErr := json.Marshal(res.InsufficientDiagnostics(eng.params))
		if mErr != nil {
			return nil, fmt.Errorf("marshaling diagnostics: %w", mErr)
		}
		if sErr := eng.store.RecordInsufficient(
			ctx, target.ID, eng.params.Version, details, computedAt,
		); sErr != nil {
			return nil, fmt.Errorf("recording insufficient outcome: %w", sErr)
		}
		metrics.ScoringListingsTotal.WithLabelValues("insufficient").Inc()
		return res, err
	}
	if err != nil {
		return nil, err
	}

	details, err := json.Marshal(res.Diagnostics(eng.params))
	if err != nil {
		return nil, fmt.Errorf("marshaling diagnostics: %w", err)
	}
	update := &store.ScoreUpdate{
		ListingID:  target.ID,
		Score:      res.Score,
		Version:    eng.params.Version,
		Tier:       res.Tier,
		CohortSize: res.CohortSize,
		Percentile: res.Percentile,
		ComputedAt: computedAt,
		Details:    details,
	}
	if err := eng.store.ApplyScore(ctx, update); err != nil {
		return nil, fmt.Errorf("applying score: %w", err)
	}

	metrics.ScoringListingsTotal.WithLabelValues("scored").Inc()
	metrics.ScoringDistribution.Observe(res.Score)
	metrics.CohortLevelUsed.WithLabelValues(res.CohortLevel).Inc()
	return res, nil
}

// Params returns the engine's scoring calibration.
func (eng *Engine) Params() score.Params {
	return eng.params
}
