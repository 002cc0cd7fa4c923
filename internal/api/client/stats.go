package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/jhartmann/carwatch/pkg/types"
)

// ListStats returns model-year market aggregates, newest snapshots first.
func (c *Client) ListStats(ctx context.Context, brand, model string, limit int) ([]domain.ModelYearStat, error) {
	q := url.Values{}
	if brand != "" {
		q.Set("brand", brand)
	}
	if model != "" {
		q.Set("model", model)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	path := "/api/v1/stats"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var stats []domain.ModelYearStat
	if err := c.get(ctx, path, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
