package client

import (
	"context"
	"fmt"

	domain "github.com/jhartmann/carwatch/pkg/types"
)

// RunScoring triggers a scoring run, optionally scoped to one brand or
// brand+model, and returns the outcome summary.
func (c *Client) RunScoring(ctx context.Context, brand, model string) (*domain.RunSummary, error) {
	body := map[string]any{}
	if brand != "" {
		body["brand"] = brand
	}
	if model != "" {
		body["model"] = model
	}

	var summary domain.RunSummary
	if err := c.post(ctx, "/api/v1/score", body, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// ScoreOutcome is the scoring result for a single listing.
type ScoreOutcome struct {
	Status      string   `json:"status"`
	Score       *float64 `json:"score,omitempty"`
	Tier        string   `json:"tier,omitempty"`
	Percentile  *float64 `json:"percentile,omitempty"`
	CohortLevel string   `json:"cohort_level"`
	CohortSize  int      `json:"cohort_size"`
}

// ScoreListing re-scores a single listing.
func (c *Client) ScoreListing(ctx context.Context, id string) (*ScoreOutcome, error) {
	var out ScoreOutcome
	if err := c.post(ctx, fmt.Sprintf("/api/v1/listings/%s/score", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
