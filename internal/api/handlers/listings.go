package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jhartmann/carwatch/internal/store"
	domain "github.com/jhartmann/carwatch/pkg/types"
)

// ListingsHandler handles listing query endpoints.
type ListingsHandler struct {
	store store.Store
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(s store.Store) *ListingsHandler {
	return &ListingsHandler{store: s}
}

// --- Input/Output types ---

// ListListingsInput is the input for listing listings with optional filters.
type ListListingsInput struct {
	Brand        string  `query:"brand"         doc:"Filter by brand (case-insensitive)"`
	Model        string  `query:"model"         doc:"Filter by model (case-insensitive)"`
	Year         int     `query:"year"          doc:"Filter by first registration year"       minimum:"1900" maximum:"2100"`
	FuelType     string  `query:"fuel_type"     doc:"Filter by fuel type"                     enum:"petrol,diesel,electric,hybrid,lpg,unknown,"`
	Transmission string  `query:"transmission"  doc:"Filter by transmission"                  enum:"manual,automatic,unknown,"`
	Tier         string  `query:"tier"          doc:"Filter by score tier label"`
	MinScore     float64 `query:"min_score"     doc:"Minimum deal score"                      minimum:"0"    maximum:"100"`
	MaxScore     float64 `query:"max_score"     doc:"Maximum deal score"                      minimum:"0"    maximum:"100"`
	MaxPriceEUR  int     `query:"max_price_eur" doc:"Maximum asking price in euro"            minimum:"0"`
	Active       bool    `query:"active"        doc:"Only active listings"`
	Limit        int     `query:"limit"         doc:"Number of results (default 50)"          minimum:"1"    maximum:"500"`
	Offset       int     `query:"offset"        doc:"Pagination offset"                       minimum:"0"`
	OrderBy      string  `query:"order_by"      doc:"Sort field"                              enum:"score,price,mileage,year,last_seen,"`
}

// ListListingsOutput is the response for listing listings.
type ListListingsOutput struct {
	Body struct {
		Listings []domain.Listing `json:"listings"`
		Total    int              `json:"total"`
		Limit    int              `json:"limit"`
		Offset   int              `json:"offset"`
	}
}

// GetListingInput is the input for getting a single listing.
type GetListingInput struct {
	ID string `path:"id" doc:"Listing UUID"`
}

// GetListingOutput is the response for getting a single listing.
type GetListingOutput struct {
	Body domain.Listing
}

// --- Handlers ---

// ListListings returns listings with optional vehicle, score, and price
// filters plus pagination.
func (h *ListingsHandler) ListListings(
	ctx context.Context,
	input *ListListingsInput,
) (*ListListingsOutput, error) {
	q := &store.ListingQuery{
		ActiveOnly: input.Active,
		Offset:     input.Offset,
		OrderBy:    input.OrderBy,
	}

	if input.Brand != "" {
		q.Brand = &input.Brand
	}

	if input.Model != "" {
		q.Model = &input.Model
	}

	if input.Year != 0 {
		q.Year = &input.Year
	}

	if input.FuelType != "" {
		q.FuelType = &input.FuelType
	}

	if input.Transmission != "" {
		q.Transmission = &input.Transmission
	}

	if input.Tier != "" {
		q.Tier = &input.Tier
	}

	if input.MinScore != 0 {
		q.MinScore = &input.MinScore
	}

	if input.MaxScore != 0 {
		q.MaxScore = &input.MaxScore
	}

	if input.MaxPriceEUR != 0 {
		q.MaxPriceEUR = &input.MaxPriceEUR
	}

	if input.Limit != 0 {
		q.Limit = input.Limit
	}

	listings, total, err := h.store.ListListings(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing query failed: " + err.Error())
	}

	if listings == nil {
		listings = []domain.Listing{}
	}

	resp := &ListListingsOutput{}
	resp.Body.Listings = listings
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetListing returns a single listing by ID.
func (h *ListingsHandler) GetListing(
	ctx context.Context,
	input *GetListingInput,
) (*GetListingOutput, error) {
	listing, err := h.store.GetListingByID(ctx, input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("listing not found")
	}

	return &GetListingOutput{Body: *listing}, nil
}

// RegisterListingRoutes registers listing endpoints with the Huma API.
func RegisterListingRoutes(api huma.API, h *ListingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-listings",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings",
		Summary:     "List listings",
		Description: "Returns listings with optional vehicle, score tier, and price filters.",
		Tags:        []string{"listings"},
	}, h.ListListings)

	huma.Register(api, huma.Operation{
		OperationID: "get-listing",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings/{id}",
		Summary:     "Get a listing by ID",
		Description: "Returns a single listing by its UUID.",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetListing)
}
