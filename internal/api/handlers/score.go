package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jhartmann/carwatch/internal/engine"
	score "github.com/jhartmann/carwatch/pkg/scorer"
	domain "github.com/jhartmann/carwatch/pkg/types"
)

// ScoreRunner defines the engine methods required by the scoring handler.
type ScoreRunner interface {
	RunScoring(ctx context.Context, scope engine.Scope) (*domain.RunSummary, error)
	ScoreOne(ctx context.Context, listingID string) (*score.Result, error)
}

// ScoreHandler triggers scoring runs on demand.
type ScoreHandler struct {
	engine ScoreRunner
}

// NewScoreHandler creates a new ScoreHandler.
func NewScoreHandler(e ScoreRunner) *ScoreHandler {
	return &ScoreHandler{engine: e}
}

// RunScoringInput optionally restricts the run to one brand or brand+model.
type RunScoringInput struct {
	Body struct {
		Brand string `json:"brand,omitempty" doc:"Restrict the run to one brand"`
		Model string `json:"model,omitempty" doc:"Restrict the run to one model (requires brand)"`
	}
}

// RunScoringOutput is the per-listing outcome summary of the run.
type RunScoringOutput struct {
	Body domain.RunSummary
}

// ScoreListingInput identifies the listing to re-score.
type ScoreListingInput struct {
	ID string `path:"id" doc:"Listing UUID"`
}

// ScoreListingOutput is the scoring outcome for one listing.
type ScoreListingOutput struct {
	Body struct {
		Score       *float64               `json:"score,omitempty"`
		Tier        string                 `json:"tier,omitempty"`
		Percentile  *float64               `json:"percentile,omitempty"`
		CohortLevel string                 `json:"cohort_level"`
		CohortSize  int                    `json:"cohort_size"`
		Overlays    []score.AppliedOverlay `json:"overlays,omitempty"`
		Status      string                 `json:"status"`
	}
}

// RunScoring triggers a synchronous scoring run over the active population.
func (h *ScoreHandler) RunScoring(
	ctx context.Context,
	input *RunScoringInput,
) (*RunScoringOutput, error) {
	if input.Body.Model != "" && input.Body.Brand == "" {
		return nil, huma.Error422UnprocessableEntity("model scope requires a brand")
	}

	summary, err := h.engine.RunScoring(ctx, engine.Scope{
		Brand: input.Body.Brand,
		Model: input.Body.Model,
	})
	if err != nil {
		return nil, huma.Error500InternalServerError("scoring run failed: " + err.Error())
	}

	return &RunScoringOutput{Body: *summary}, nil
}

// ScoreListing re-scores a single listing against the current active
// population of its brand and model.
func (h *ScoreHandler) ScoreListing(
	ctx context.Context,
	input *ScoreListingInput,
) (*ScoreListingOutput, error) {
	res, err := h.engine.ScoreOne(ctx, input.ID)

	switch {
	case errors.Is(err, score.ErrInsufficientCohort):
		resp := &ScoreListingOutput{}
		resp.Body.Status = "insufficient_data"
		resp.Body.CohortLevel = res.CohortLevel
		resp.Body.CohortSize = res.CohortSize
		return resp, nil

	case errors.Is(err, score.ErrInvalidListing):
		return nil, huma.Error422UnprocessableEntity("listing cannot be scored: " + err.Error())

	case err != nil:
		return nil, huma.Error500InternalServerError("scoring failed: " + err.Error())
	}

	resp := &ScoreListingOutput{}
	resp.Body.Status = "scored"
	resp.Body.Score = &res.Score
	resp.Body.Tier = res.Tier
	resp.Body.Percentile = &res.Percentile
	resp.Body.CohortLevel = res.CohortLevel
	resp.Body.CohortSize = res.CohortSize
	resp.Body.Overlays = res.Overlays
	return resp, nil
}

// RegisterScoreRoutes registers scoring endpoints with the Huma API.
func RegisterScoreRoutes(api huma.API, h *ScoreHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "run-scoring",
		Method:      http.MethodPost,
		Path:        "/api/v1/score",
		Summary:     "Run scoring",
		Description: "Scores the active population synchronously and returns the outcome summary. Optionally scoped to one brand or brand+model.",
		Tags:        []string{"scoring"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.RunScoring)

	huma.Register(api, huma.Operation{
		OperationID: "score-listing",
		Method:      http.MethodPost,
		Path:        "/api/v1/listings/{id}/score",
		Summary:     "Score one listing",
		Description: "Re-evaluates a single listing against the current active population of its brand and model.",
		Tags:        []string{"scoring"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.ScoreListing)
}
