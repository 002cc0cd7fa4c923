package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/jhartmann/carwatch/pkg/types"
)

// HistoryProvider defines the store methods required by the history handler.
type HistoryProvider interface {
	ListScoreHistory(ctx context.Context, listingID string, limit int) ([]domain.ScoreHistoryEntry, error)
	ListPriceHistory(ctx context.Context, listingID string, limit int) ([]domain.PriceHistoryEntry, error)
}

// HistoryHandler serves a listing's score and price history.
type HistoryHandler struct {
	store HistoryProvider
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(s HistoryProvider) *HistoryHandler {
	return &HistoryHandler{store: s}
}

const defaultHistoryLimit = 50

// ListScoreHistoryInput is the input for a listing's score history.
type ListScoreHistoryInput struct {
	ID    string `path:"id"     doc:"Listing UUID"`
	Limit int    `query:"limit" doc:"Number of entries (default 50)" minimum:"1" maximum:"500"`
}

// ListScoreHistoryOutput is the response body, newest entries first.
type ListScoreHistoryOutput struct {
	Body []domain.ScoreHistoryEntry
}

// ListPriceHistoryInput is the input for a listing's price history.
type ListPriceHistoryInput struct {
	ID    string `path:"id"     doc:"Listing UUID"`
	Limit int    `query:"limit" doc:"Number of entries (default 50)" minimum:"1" maximum:"500"`
}

// ListPriceHistoryOutput is the response body, newest entries first.
type ListPriceHistoryOutput struct {
	Body []domain.PriceHistoryEntry
}

// ListScoreHistory returns the score history of one listing, including
// insufficient-data entries where the score is null.
func (h *HistoryHandler) ListScoreHistory(
	ctx context.Context,
	input *ListScoreHistoryInput,
) (*ListScoreHistoryOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = defaultHistoryLimit
	}

	entries, err := h.store.ListScoreHistory(ctx, input.ID, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching score history failed: " + err.Error())
	}

	if entries == nil {
		entries = []domain.ScoreHistoryEntry{}
	}

	return &ListScoreHistoryOutput{Body: entries}, nil
}

// ListPriceHistory returns the observed price and mileage changes of one
// listing.
func (h *HistoryHandler) ListPriceHistory(
	ctx context.Context,
	input *ListPriceHistoryInput,
) (*ListPriceHistoryOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = defaultHistoryLimit
	}

	entries, err := h.store.ListPriceHistory(ctx, input.ID, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching price history failed: " + err.Error())
	}

	if entries == nil {
		entries = []domain.PriceHistoryEntry{}
	}

	return &ListPriceHistoryOutput{Body: entries}, nil
}

// RegisterHistoryRoutes registers history endpoints with the Huma API.
func RegisterHistoryRoutes(api huma.API, h *HistoryHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-score-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings/{id}/scores",
		Summary:     "Get score history",
		Description: "Returns the score history of a listing, newest first. Entries without a score record insufficient market data.",
		Tags:        []string{"history"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListScoreHistory)

	huma.Register(api, huma.Operation{
		OperationID: "list-price-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings/{id}/prices",
		Summary:     "Get price history",
		Description: "Returns the price and mileage change history of a listing, newest first.",
		Tags:        []string{"history"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListPriceHistory)
}
