//go:build integration

package store_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhartmann/carwatch/internal/store"
	domain "github.com/jhartmann/carwatch/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("carwatch_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func intPtr(v int) *int { return &v }

func testListing(url string) *domain.Listing {
	return &domain.Listing{
		Source:       "mobile_de",
		ExternalID:   "ext-1",
		URL:          url,
		Title:        "VW Golf VIII 2.0 TDI Life",
		Brand:        "VW",
		Model:        "Golf",
		Variant:      "Life",
		Year:         intPtr(2021),
		MileageKM:    intPtr(45000),
		PriceEUR:     intPtr(21500),
		FuelType:     domain.FuelDiesel,
		Transmission: domain.TransmissionManual,
		Color:        "grey",
		Condition:    domain.ConditionGood,
	}
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_UpsertListing(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("insert new listing", func(t *testing.T) {
		l := testListing("https://example.test/insert-1")
		inserted, err := s.UpsertListing(ctx, l)
		require.NoError(t, err)
		assert.True(t, inserted)
		assert.NotEmpty(t, l.ID)
		assert.False(t, l.FirstSeenAt.IsZero())
		assert.True(t, l.IsActive)

		// Insert appends the first price history entry.
		history, err := s.ListPriceHistory(ctx, l.ID, 10)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, 21500, *history[0].PriceEUR)
	})

	t.Run("upsert with changed price appends history", func(t *testing.T) {
		l := testListing("https://example.test/upsert-1")
		_, err := s.UpsertListing(ctx, l)
		require.NoError(t, err)
		firstID := l.ID
		firstSeen := l.FirstSeenAt

		l2 := testListing("https://example.test/upsert-1")
		l2.PriceEUR = intPtr(19900)
		inserted, err := s.UpsertListing(ctx, l2)
		require.NoError(t, err)
		assert.False(t, inserted)

		// Same ID, same first_seen_at, but updated price.
		assert.Equal(t, firstID, l2.ID)
		assert.Equal(t, firstSeen.Truncate(time.Microsecond), l2.FirstSeenAt.Truncate(time.Microsecond))

		got, err := s.GetListingByURL(ctx, "https://example.test/upsert-1")
		require.NoError(t, err)
		assert.Equal(t, 19900, *got.PriceEUR)

		history, err := s.ListPriceHistory(ctx, firstID, 10)
		require.NoError(t, err)
		assert.Len(t, history, 2)
	})

	t.Run("upsert with unchanged price appends nothing", func(t *testing.T) {
		l := testListing("https://example.test/upsert-2")
		_, err := s.UpsertListing(ctx, l)
		require.NoError(t, err)

		l2 := testListing("https://example.test/upsert-2")
		_, err = s.UpsertListing(ctx, l2)
		require.NoError(t, err)

		history, err := s.ListPriceHistory(ctx, l.ID, 10)
		require.NoError(t, err)
		assert.Len(t, history, 1)
	})

	t.Run("upsert reactivates an inactive listing", func(t *testing.T) {
		l := testListing("https://example.test/reactivate-1")
		_, err := s.UpsertListing(ctx, l)
		require.NoError(t, err)

		_, err = s.MarkInactive(ctx, "", time.Now().Add(time.Minute))
		require.NoError(t, err)

		l2 := testListing("https://example.test/reactivate-1")
		_, err = s.UpsertListing(ctx, l2)
		require.NoError(t, err)

		got, err := s.GetListingByID(ctx, l.ID)
		require.NoError(t, err)
		assert.True(t, got.IsActive)
	})
}

func TestPostgresStore_GetListingByURL(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		l := testListing("https://example.test/get-1")
		_, err := s.UpsertListing(ctx, l)
		require.NoError(t, err)

		got, err := s.GetListingByURL(ctx, "https://example.test/get-1")
		require.NoError(t, err)
		assert.Equal(t, l.ID, got.ID)
		assert.Equal(t, "VW Golf VIII 2.0 TDI Life", got.Title)
		assert.Equal(t, domain.FuelDiesel, got.FuelType)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := s.GetListingByURL(ctx, "https://example.test/nonexistent")
		assert.Error(t, err)
	})
}

func TestPostgresStore_ApplyScore(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	l := testListing("https://example.test/score-1")
	_, err := s.UpsertListing(ctx, l)
	require.NoError(t, err)

	computedAt := time.Now().Truncate(time.Microsecond)
	err = s.ApplyScore(ctx, &store.ScoreUpdate{
		ListingID:  l.ID,
		Score:      72.5,
		Version:    "cohort_percentile_v2",
		Tier:       "Good deal",
		CohortSize: 14,
		Percentile: 0.725,
		ComputedAt: computedAt,
		Details:    json.RawMessage(`{"level":"brand_model_yearwin_km","cohort_size":14}`),
	})
	require.NoError(t, err)

	got, err := s.GetListingByID(ctx, l.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Score)
	assert.Equal(t, 72.5, *got.Score)
	assert.Equal(t, "Good deal", got.ScoreTier)
	assert.Equal(t, "cohort_percentile_v2", got.ScoreVersion)
	assert.Equal(t, 14, *got.ScoreCohortSize)
	assert.Equal(t, 0.725, *got.ScorePercentile)

	history, err := s.ListScoreHistory(ctx, l.ID, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.NotNil(t, history[0].Score)
	assert.Equal(t, 72.5, *history[0].Score)
}

func TestPostgresStore_RecordInsufficient(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	l := testListing("https://example.test/insufficient-1")
	_, err := s.UpsertListing(ctx, l)
	require.NoError(t, err)

	// Give it a score first, then record a sparse run.
	require.NoError(t, s.ApplyScore(ctx, &store.ScoreUpdate{
		ListingID:  l.ID,
		Score:      60,
		Version:    "cohort_percentile_v2",
		Tier:       "Fair",
		CohortSize: 8,
		Percentile: 0.6,
		ComputedAt: time.Now(),
		Details:    json.RawMessage(`{}`),
	}))

	err = s.RecordInsufficient(ctx, l.ID, "cohort_percentile_v2",
		json.RawMessage(`{"level":"brand_model","cohort_size":2,"note":"insufficient market data"}`),
		time.Now(),
	)
	require.NoError(t, err)

	got, err := s.GetListingByID(ctx, l.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Score, "prior score survives a sparse run")
	assert.Equal(t, 60.0, *got.Score)
	assert.Equal(t, "Fair", got.ScoreTier)
	require.NotNil(t, got.ScoreCohortSize)
	assert.Equal(t, 8, *got.ScoreCohortSize)

	history, err := s.ListScoreHistory(ctx, l.ID, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Nil(t, history[0].Score, "newest entry has null score")
	assert.NotNil(t, history[1].Score)
}

func TestPostgresStore_ListListings(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	for i := range 5 {
		l := testListing(fmt.Sprintf("https://example.test/list-%d", i))
		l.PriceEUR = intPtr(18000 + i*1000)
		_, err := s.UpsertListing(ctx, l)
		require.NoError(t, err)
	}

	t.Run("no filters", func(t *testing.T) {
		q := &store.ListingQuery{Limit: 10}
		listings, total, err := s.ListListings(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Len(t, listings, 5)
	})

	t.Run("with limit and offset", func(t *testing.T) {
		q := &store.ListingQuery{Limit: 2, Offset: 0}
		listings, total, err := s.ListListings(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Len(t, listings, 2)
	})

	t.Run("brand filter is case insensitive", func(t *testing.T) {
		brand := "vw"
		q := &store.ListingQuery{Brand: &brand, Limit: 10}
		listings, total, err := s.ListListings(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Len(t, listings, 5)
	})

	t.Run("price ordering", func(t *testing.T) {
		q := &store.ListingQuery{OrderBy: "price", Limit: 10}
		listings, _, err := s.ListListings(ctx, q)
		require.NoError(t, err)
		require.NotEmpty(t, listings)
		assert.Equal(t, 18000, *listings[0].PriceEUR)
	})
}

func TestPostgresStore_ListActiveListings(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	golf := testListing("https://example.test/active-1")
	_, err := s.UpsertListing(ctx, golf)
	require.NoError(t, err)

	passat := testListing("https://example.test/active-2")
	passat.Model = "Passat"
	_, err = s.UpsertListing(ctx, passat)
	require.NoError(t, err)

	bmw := testListing("https://example.test/active-3")
	bmw.Brand = "BMW"
	bmw.Model = "320d"
	_, err = s.UpsertListing(ctx, bmw)
	require.NoError(t, err)

	t.Run("all active", func(t *testing.T) {
		listings, err := s.ListActiveListings(ctx, "", "")
		require.NoError(t, err)
		assert.Len(t, listings, 3)
	})

	t.Run("brand scope", func(t *testing.T) {
		listings, err := s.ListActiveListings(ctx, "vw", "")
		require.NoError(t, err)
		assert.Len(t, listings, 2)
	})

	t.Run("brand and model scope", func(t *testing.T) {
		listings, err := s.ListActiveListings(ctx, "VW", "golf")
		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, golf.ID, listings[0].ID)
	})

	t.Run("source scope does not touch other sources", func(t *testing.T) {
		n, err := s.MarkInactive(ctx, "no-such-source", time.Now().Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("excludes deactivated", func(t *testing.T) {
		n, err := s.MarkInactive(ctx, "", time.Now().Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		listings, err := s.ListActiveListings(ctx, "", "")
		require.NoError(t, err)
		assert.Empty(t, listings)
	})
}

func TestPostgresStore_ModelYearStats(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	today := time.Now().UTC().Truncate(24 * time.Hour)
	avg := 21000.0
	med := 20500.0
	stats := []domain.ModelYearStat{
		{SnapshotDate: today, Brand: "VW", Model: "Golf", Year: 2021, N: 12, AvgPrice: &avg, MedianPrice: &med},
	}

	require.NoError(t, s.UpsertModelYearStats(ctx, stats))

	// Same key upserts in place.
	avg2 := 20800.0
	stats[0].AvgPrice = &avg2
	stats[0].N = 14
	require.NoError(t, s.UpsertModelYearStats(ctx, stats))

	got, err := s.ListModelYearStats(ctx, "VW", "Golf", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 14, got[0].N)
	assert.Equal(t, 20800.0, *got[0].AvgPrice)
}

func TestPostgresStore_JobRuns(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	id, err := s.InsertJobRun(ctx, "score")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.NoError(t, s.CompleteJobRun(ctx, id, "success", "", 42))

	runs, err := s.ListJobRuns(ctx, "score", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "success", runs[0].Status)
	assert.Equal(t, 42, *runs[0].RowsAffected)

	latest, err := s.ListLatestJobRuns(ctx)
	require.NoError(t, err)
	assert.Len(t, latest, 1)
}

func TestPostgresStore_SchedulerLock(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	acquired, err := s.AcquireSchedulerLock(ctx, "score", "holder-a", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)

	// Second holder cannot take an unexpired lock.
	acquired, err = s.AcquireSchedulerLock(ctx, "score", "holder-b", time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired)

	require.NoError(t, s.ReleaseSchedulerLock(ctx, "score", "holder-a"))

	acquired, err = s.AcquireSchedulerLock(ctx, "score", "holder-b", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
}
