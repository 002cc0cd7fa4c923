package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/jhartmann/carwatch/pkg/types"
)

// ListingsResponse wraps a paginated listings response.
type ListingsResponse struct {
	Listings []domain.Listing `json:"listings"`
	Total    int              `json:"total"`
}

// ListListingsParams defines query parameters for listing queries.
type ListListingsParams struct {
	Brand        string
	Model        string
	Year         int
	FuelType     string
	Transmission string
	Tier         string
	MinScore     float64
	MaxScore     float64
	MaxPriceEUR  int
	Active       bool
	Limit        int
	Offset       int
	OrderBy      string
}

// ListListings returns listings matching the given parameters.
func (c *Client) ListListings(
	ctx context.Context,
	params *ListListingsParams,
) (*ListingsResponse, error) {
	q := url.Values{}
	if params.Brand != "" {
		q.Set("brand", params.Brand)
	}
	if params.Model != "" {
		q.Set("model", params.Model)
	}
	if params.Year > 0 {
		q.Set("year", strconv.Itoa(params.Year))
	}
	if params.FuelType != "" {
		q.Set("fuel_type", params.FuelType)
	}
	if params.Transmission != "" {
		q.Set("transmission", params.Transmission)
	}
	if params.Tier != "" {
		q.Set("tier", params.Tier)
	}
	if params.MinScore > 0 {
		q.Set("min_score", strconv.FormatFloat(params.MinScore, 'f', -1, 64))
	}
	if params.MaxScore > 0 {
		q.Set("max_score", strconv.FormatFloat(params.MaxScore, 'f', -1, 64))
	}
	if params.MaxPriceEUR > 0 {
		q.Set("max_price_eur", strconv.Itoa(params.MaxPriceEUR))
	}
	if params.Active {
		q.Set("active", "true")
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.OrderBy != "" {
		q.Set("order_by", params.OrderBy)
	}

	path := "/api/v1/listings"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ListingsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetListing returns a single listing by ID.
func (c *Client) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	if err := c.get(ctx, fmt.Sprintf("/api/v1/listings/%s", id), &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// GetScoreHistory returns the score history of a listing, newest first.
func (c *Client) GetScoreHistory(ctx context.Context, id string, limit int) ([]domain.ScoreHistoryEntry, error) {
	path := fmt.Sprintf("/api/v1/listings/%s/scores", id)
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var entries []domain.ScoreHistoryEntry
	if err := c.get(ctx, path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetPriceHistory returns the price history of a listing, newest first.
func (c *Client) GetPriceHistory(ctx context.Context, id string, limit int) ([]domain.PriceHistoryEntry, error) {
	path := fmt.Sprintf("/api/v1/listings/%s/prices", id)
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var entries []domain.PriceHistoryEntry
	if err := c.get(ctx, path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
