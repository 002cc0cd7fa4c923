package handlers_test

import (
	"context"
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

// mockStatsProvider is a test double for StatsProvider.
type mockStatsProvider struct {
	stats []domain.ModelYearStat
	brand string
	model string
	limit int
	err   error
}

func (m *mockStatsProvider) ListModelYearStats(_ context.Context, brand, model string, limit int) ([]domain.ModelYearStat, error) {
	m.brand, m.model, m.limit = brand, model, limit
	return m.stats, m.err
}

func newStatsAPI(t *testing.T, p *mockStatsProvider) humatest.TestAPI {
	t.Helper()

	_, api := humatest.New(t)
	handlers.RegisterStatsRoutes(api, handlers.NewStatsHandler(p))
	return api
}

func TestListStats_Success(t *testing.T) {
	t.Parallel()

	avg := 21000.0
	p := &mockStatsProvider{stats: []domain.ModelYearStat{
		{
			SnapshotDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			Brand:        "VW",
			Model:        "Golf",
			Year:         2020,
			N:            14,
			AvgPrice:     &avg,
		},
	}}
	api := newStatsAPI(t, p)

	resp := api.Get("/api/v1/stats?brand=VW&model=Golf")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"brand":"VW"`)
	assert.Contains(t, resp.Body.String(), `"n":14`)
	assert.Equal(t, "VW", p.brand)
	assert.Equal(t, "Golf", p.model)
	assert.Equal(t, 100, p.limit)
}

func TestListStats_Empty(t *testing.T) {
	t.Parallel()

	p := &mockStatsProvider{}
	api := newStatsAPI(t, p)

	resp := api.Get("/api/v1/stats")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "[]")
}

func TestListStats_Error(t *testing.T) {
	t.Parallel()

	p := &mockStatsProvider{err: errors.New("db error")}
	api := newStatsAPI(t, p)

	resp := api.Get("/api/v1/stats")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "fetching stats failed")
}
