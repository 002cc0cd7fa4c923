package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhartmann/carwatch/internal/api/handlers"
	domain "github.com/jhartmann/carwatch/pkg/types"
)

// mockHistoryProvider is a test double for HistoryProvider.
type mockHistoryProvider struct {
	scores []domain.ScoreHistoryEntry
	prices []domain.PriceHistoryEntry
	limit  int
	err    error
}

func (m *mockHistoryProvider) ListScoreHistory(_ context.Context, _ string, limit int) ([]domain.ScoreHistoryEntry, error) {
	m.limit = limit
	return m.scores, m.err
}

func (m *mockHistoryProvider) ListPriceHistory(_ context.Context, _ string, limit int) ([]domain.PriceHistoryEntry, error) {
	m.limit = limit
	return m.prices, m.err
}

func newHistoryAPI(t *testing.T, p *mockHistoryProvider) humatest.TestAPI {
	t.Helper()

	_, api := humatest.New(t)
	handlers.RegisterHistoryRoutes(api, handlers.NewHistoryHandler(p))
	return api
}

func TestListScoreHistory_Success(t *testing.T) {
	t.Parallel()

	scoreVal := 72.5
	p := &mockHistoryProvider{scores: []domain.ScoreHistoryEntry{
		{
			ID:           "sh1",
			ListingID:    "l1",
			Score:        &scoreVal,
			ScoreVersion: "cohort_percentile_v2",
			Details:      json.RawMessage(`{"level":"brand_model_year_km_cond"}`),
			ComputedAt:   time.Now().Truncate(time.Second),
		},
		{
			ID:           "sh2",
			ListingID:    "l1",
			Score:        nil,
			ScoreVersion: "cohort_percentile_v2",
			Details:      json.RawMessage(`{"note":"insufficient market data"}`),
			ComputedAt:   time.Now().Truncate(time.Second),
		},
	}}
	api := newHistoryAPI(t, p)

	resp := api.Get("/api/v1/listings/l1/scores")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "72.5")
	assert.Contains(t, resp.Body.String(), "insufficient market data")
	assert.Equal(t, 50, p.limit)
}

func TestListScoreHistory_CustomLimit(t *testing.T) {
	t.Parallel()

	p := &mockHistoryProvider{}
	api := newHistoryAPI(t, p)

	resp := api.Get("/api/v1/listings/l1/scores?limit=5")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 5, p.limit)
	assert.Contains(t, resp.Body.String(), "[]")
}

func TestListScoreHistory_Error(t *testing.T) {
	t.Parallel()

	p := &mockHistoryProvider{err: errors.New("db error")}
	api := newHistoryAPI(t, p)

	resp := api.Get("/api/v1/listings/l1/scores")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "fetching score history failed")
}

func TestListPriceHistory_Success(t *testing.T) {
	t.Parallel()

	price := 21500
	km := 45000
	p := &mockHistoryProvider{prices: []domain.PriceHistoryEntry{
		{
			ID:         "ph1",
			ListingID:  "l1",
			PriceEUR:   &price,
			MileageKM:  &km,
			RecordedAt: time.Now().Truncate(time.Second),
		},
	}}
	api := newHistoryAPI(t, p)

	resp := api.Get("/api/v1/listings/l1/prices")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "21500")
}

func TestListPriceHistory_Error(t *testing.T) {
	t.Parallel()

	p := &mockHistoryProvider{err: errors.New("db error")}
	api := newHistoryAPI(t, p)

	resp := api.Get("/api/v1/listings/l1/prices")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "fetching price history failed")
}
