package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/jhartmann/carwatch/pkg/types"
)

// StatsProvider defines the store methods required by the stats handler.
type StatsProvider interface {
	ListModelYearStats(ctx context.Context, brand, model string, limit int) ([]domain.ModelYearStat, error)
}

// StatsHandler serves model-year market aggregates.
type StatsHandler struct {
	store StatsProvider
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(s StatsProvider) *StatsHandler {
	return &StatsHandler{store: s}
}

const defaultStatsLimit = 100

// ListStatsInput filters the aggregates by brand and model.
type ListStatsInput struct {
	Brand string `query:"brand" doc:"Filter by brand (case-insensitive)"`
	Model string `query:"model" doc:"Filter by model (case-insensitive)"`
	Limit int    `query:"limit" doc:"Number of rows (default 100)" minimum:"1" maximum:"1000"`
}

// ListStatsOutput is the response body, newest snapshots first.
type ListStatsOutput struct {
	Body []domain.ModelYearStat
}

// ListStats returns daily per-(brand, model, year) price and mileage
// aggregates.
func (h *StatsHandler) ListStats(
	ctx context.Context,
	input *ListStatsInput,
) (*ListStatsOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = defaultStatsLimit
	}

	stats, err := h.store.ListModelYearStats(ctx, input.Brand, input.Model, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching stats failed: " + err.Error())
	}

	if stats == nil {
		stats = []domain.ModelYearStat{}
	}

	return &ListStatsOutput{Body: stats}, nil
}

// RegisterStatsRoutes registers stats endpoints with the Huma API.
func RegisterStatsRoutes(api huma.API, h *StatsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-stats",
		Method:      http.MethodGet,
		Path:        "/api/v1/stats",
		Summary:     "List model-year statistics",
		Description: "Returns daily per-(brand, model, year) price and mileage aggregates, newest snapshots first.",
		Tags:        []string{"stats"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListStats)
}
