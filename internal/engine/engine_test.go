package engine

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhartmann/carwatch/internal/store"
	storeMocks "github.com/jhartmann/carwatch/internal/store/mocks"
	score "github.com/jhartmann/carwatch/pkg/scorer"
	domain "github.com/jhartmann/carwatch/pkg/types"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// quietLogger returns a logger that discards output for tests.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEngine(ms *storeMocks.MockStore, opts ...EngineOption) *Engine {
	base := []EngineOption{
		WithLogger(quietLogger()),
		WithNow(func() time.Time { return testNow }),
	}
	return NewEngine(ms, append(base, opts...)...)
}

func intPtr(v int) *int { return &v }

// golf returns an active, fully populated listing for cohort tests.
func golf(id string, price int, mutate ...func(*domain.Listing)) domain.Listing {
	l := domain.Listing{
		ID:           id,
		Source:       "mobile_de",
		URL:          "https://example.test/" + id,
		Brand:        "VW",
		Model:        "Golf",
		Year:         intPtr(2020),
		MileageKM:    intPtr(50000),
		PriceEUR:     intPtr(price),
		FuelType:     domain.FuelDiesel,
		Transmission: domain.TransmissionManual,
		Condition:    domain.ConditionGood,
		IsActive:     true,
	}
	for _, m := range mutate {
		m(&l)
	}
	return l
}

func golfPopulation(prices ...int) []domain.Listing {
	out := make([]domain.Listing, len(prices))
	for i, p := range prices {
		out[i] = golf("l"+string(rune('1'+i)), p)
	}
	return out
}

func TestNewEngine_Defaults(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := NewEngine(ms)

	assert.Equal(t, score.DefaultParams(), eng.params)
	assert.NotNil(t, eng.overlays)
	assert.NotEmpty(t, eng.tiers)
	assert.NotNil(t, eng.log)
	assert.NotNil(t, eng.now)
}

func TestNewEngine_WithOptions(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	l := quietLogger()
	p := score.Params{MinCohortSize: 3, MileageWindowKM: 10000, YearWindow: 2, Version: "v9"}

	eng := NewEngine(ms,
		WithLogger(l),
		WithParams(p),
		WithTiers([]score.Tier{{Min: 0, Label: "Only"}}),
	)

	assert.Same(t, l, eng.log)
	assert.Equal(t, p, eng.params)
	assert.Len(t, eng.tiers, 1)
	assert.Equal(t, p, eng.Params())
}

func TestRunScoring_ScoresAllListings(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms)

	population := golfPopulation(10000, 12000, 13000, 15000, 18000, 20000)

	ms.EXPECT().ListActiveListings(mock.Anything, "", "").Return(population, nil).Once()

	var updates []*store.ScoreUpdate
	ms.EXPECT().
		ApplyScore(mock.Anything, mock.Anything).
		Run(func(_ context.Context, u *store.ScoreUpdate) {
			updates = append(updates, u)
		}).
		Return(nil).
		Times(6)
	ms.EXPECT().UpsertModelYearStats(mock.Anything, mock.Anything).Return(nil).Once()

	summary, err := eng.RunScoring(context.Background(), Scope{})
	require.NoError(t, err)

	assert.Equal(t, 6, summary.Total)
	assert.Equal(t, 6, summary.Scored)
	assert.Zero(t, summary.Insufficient)
	assert.Zero(t, summary.Invalid)
	assert.Zero(t, summary.Failed)
	assert.Equal(t, "cohort_percentile_v2", summary.ScoreVersion)
	assert.Equal(t, testNow, summary.StartedAt)

	require.Len(t, updates, 6)
	for _, u := range updates {
		assert.Equal(t, "cohort_percentile_v2", u.Version)
		assert.NotEmpty(t, u.Tier)
		assert.Equal(t, 5, u.CohortSize)
		assert.Equal(t, testNow, u.ComputedAt)
		assert.NotEmpty(t, u.Details)
	}

	// Cheapest listing beats the whole cohort.
	assert.InDelta(t, 1.0, updates[0].Percentile, 1e-9)
}

func TestRunScoring_InsufficientCohort(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms)

	// Three listings can never reach the default minimum of five.
	population := golfPopulation(10000, 12000, 14000)

	ms.EXPECT().ListActiveListings(mock.Anything, "", "").Return(population, nil).Once()

	var payloads []json.RawMessage
	ms.EXPECT().
		RecordInsufficient(mock.Anything, mock.Anything, "cohort_percentile_v2", mock.Anything, testNow).
		Run(func(_ context.Context, _ string, _ string, details json.RawMessage, _ time.Time) {
			payloads = append(payloads, details)
		}).
		Return(nil).
		Times(3)
	ms.EXPECT().UpsertModelYearStats(mock.Anything, mock.Anything).Return(nil).Once()

	summary, err := eng.RunScoring(context.Background(), Scope{})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Insufficient)
	assert.Zero(t, summary.Scored)

	require.Len(t, payloads, 3)
	var diag map[string]any
	require.NoError(t, json.Unmarshal(payloads[0], &diag))
	assert.Equal(t, "brand_model", diag["level"])
	assert.Equal(t, "insufficient market data", diag["note"])
	assert.Equal(t, float64(5), diag["min_cohort_size"])
}

func TestRunScoring_InvalidListingCounted(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms)

	population := golfPopulation(10000, 12000, 13000, 15000, 18000, 20000)
	population = append(population, golf("nl", 0, func(l *domain.Listing) {
		l.PriceEUR = nil
	}))

	ms.EXPECT().ListActiveListings(mock.Anything, "", "").Return(population, nil).Once()
	ms.EXPECT().ApplyScore(mock.Anything, mock.Anything).Return(nil).Times(6)
	ms.EXPECT().UpsertModelYearStats(mock.Anything, mock.Anything).Return(nil).Once()

	summary, err := eng.RunScoring(context.Background(), Scope{})
	require.NoError(t, err)

	assert.Equal(t, 7, summary.Total)
	assert.Equal(t, 6, summary.Scored)
	assert.Equal(t, 1, summary.Invalid)
}

func TestRunScoring_StoreErrorsCountedNotFatal(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms)

	population := golfPopulation(10000, 12000, 13000, 15000, 18000, 20000)

	ms.EXPECT().ListActiveListings(mock.Anything, "", "").Return(population, nil).Once()
	ms.EXPECT().
		ApplyScore(mock.Anything, mock.Anything).
		Return(errors.New("connection reset")).
		Times(6)
	ms.EXPECT().UpsertModelYearStats(mock.Anything, mock.Anything).Return(nil).Once()

	summary, err := eng.RunScoring(context.Background(), Scope{})
	require.NoError(t, err)

	assert.Equal(t, 6, summary.Failed)
	assert.Zero(t, summary.Scored)
}

func TestRunScoring_StatsFailureDoesNotFailRun(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms)

	population := golfPopulation(10000, 12000, 13000, 15000, 18000, 20000)

	ms.EXPECT().ListActiveListings(mock.Anything, "", "").Return(population, nil).Once()
	ms.EXPECT().ApplyScore(mock.Anything, mock.Anything).Return(nil).Times(6)
	ms.EXPECT().
		UpsertModelYearStats(mock.Anything, mock.Anything).
		Return(errors.New("deadlock detected")).
		Once()

	summary, err := eng.RunScoring(context.Background(), Scope{})
	require.NoError(t, err)
	assert.Equal(t, 6, summary.Scored)
}

func TestRunScoring_ListError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms)

	ms.EXPECT().
		ListActiveListings(mock.Anything, "", "").
		Return(nil, errors.New("db down")).
		Once()

	summary, err := eng.RunScoring(context.Background(), Scope{})
	require.Error(t, err)
	assert.Nil(t, summary)
}

func TestRunScoring_InvalidOverlayConfig(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, WithOverlays(score.OverlayTable{
		"horsepower": {"high": 3},
	}))

	summary, err := eng.RunScoring(context.Background(), Scope{})
	require.Error(t, err)
	assert.Nil(t, summary)
	assert.Contains(t, err.Error(), "overlay")
}

func TestRunScoring_InvalidTierConfig(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, WithTiers([]score.Tier{
		{Min: 50, Label: "Upper half"},
	}))

	summary, err := eng.RunScoring(context.Background(), Scope{})
	require.Error(t, err)
	assert.Nil(t, summary)
	assert.Contains(t, err.Error(), "tier")
}

func TestRunScoring_ScopeForwarded(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms)

	ms.EXPECT().ListActiveListings(mock.Anything, "BMW", "320d").Return(nil, nil).Once()

	summary, err := eng.RunScoring(context.Background(), Scope{Brand: "BMW", Model: "320d"})
	require.NoError(t, err)
	assert.Zero(t, summary.Total)
}

func TestRunDeactivation(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms)

	cutoff := testNow.Add(-72 * time.Hour)
	ms.EXPECT().MarkInactive(mock.Anything, "", cutoff).Return(4, nil).Once()

	n, err := eng.RunDeactivation(context.Background(), "", 72*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestRunDeactivation_Error(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms)

	ms.EXPECT().
		MarkInactive(mock.Anything, mock.Anything, mock.Anything).
		Return(0, errors.New("db down")).
		Once()

	_, err := eng.RunDeactivation(context.Background(), "", 72*time.Hour)
	require.Error(t, err)
}

func TestScoreOne_Success(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms)

	target := golf("t1", 12500)
	population := golfPopulation(10000, 12000, 13000, 15000, 18000, 20000)

	ms.EXPECT().GetListingByID(mock.Anything, "t1").Return(&target, nil).Once()
	ms.EXPECT().ListActiveListings(mock.Anything, "VW", "Golf").Return(population, nil).Once()

	var captured *store.ScoreUpdate
	ms.EXPECT().
		ApplyScore(mock.Anything, mock.Anything).
		Run(func(_ context.Context, u *store.ScoreUpdate) { captured = u }).
		Return(nil).
		Once()

	res, err := eng.ScoreOne(context.Background(), "t1")
	require.NoError(t, err)

	// Four of six cohort prices are at or above 12500; base 66.67, manual -1.
	assert.InDelta(t, 65.67, res.Score, 1e-9)
	assert.Equal(t, "Fair", res.Tier)
	assert.Equal(t, 6, res.CohortSize)

	require.NotNil(t, captured)
	assert.Equal(t, "t1", captured.ListingID)
	assert.InDelta(t, 65.67, captured.Score, 1e-9)
}

func TestScoreOne_InsufficientCohort(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms)

	target := golf("t1", 12500)
	population := golfPopulation(10000, 12000)

	ms.EXPECT().GetListingByID(mock.Anything, "t1").Return(&target, nil).Once()
	ms.EXPECT().ListActiveListings(mock.Anything, "VW", "Golf").Return(population, nil).Once()
	ms.EXPECT().
		RecordInsufficient(mock.Anything, "t1", "cohort_percentile_v2", mock.Anything, testNow).
		Return(nil).
		Once()

	res, err := eng.ScoreOne(context.Background(), "t1")
	require.ErrorIs(t, err, score.ErrInsufficientCohort)
	require.NotNil(t, res)
	assert.Equal(t, "brand_model", res.CohortLevel)
	assert.Equal(t, 2, res.CohortSize)
}

func TestScoreOne_NotFound(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms)

	ms.EXPECT().
		GetListingByID(mock.Anything, "missing").
		Return(nil, errors.New("no rows in result set")).
		Once()

	_, err := eng.ScoreOne(context.Background(), "missing")
	require.Error(t, err)
}
