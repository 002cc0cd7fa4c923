package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/jhartmann/carwatch/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListJobs(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListJobs(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 500)")
}

func TestClient_ListListings(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/listings", r.URL.Path)
		assert.Equal(t, "VW", r.URL.Query().Get("brand"))
		assert.Equal(t, "Golf", r.URL.Query().Get("model"))
		assert.Equal(t, "70", r.URL.Query().Get("min_score"))
		assert.Equal(t, "true", r.URL.Query().Get("active"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ListingsResponse{
			Listings: []domain.Listing{{ID: "l1", Brand: "VW", Model: "Golf"}},
			Total:    1,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.ListListings(context.Background(), &ListListingsParams{
		Brand:    "VW",
		Model:    "Golf",
		MinScore: 70,
		Active:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Listings, 1)
	assert.Equal(t, "l1", resp.Listings[0].ID)
}

func TestClient_GetListing(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/listings/l1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.Listing{ID: "l1", Brand: "BMW"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	l, err := c.GetListing(context.Background(), "l1")
	require.NoError(t, err)
	assert.Equal(t, "BMW", l.Brand)
}

func TestClient_GetScoreHistory(t *testing.T) {
	t.Parallel()

	score := 81.5
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/listings/l1/scores", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]domain.ScoreHistoryEntry{
			{ID: "sh1", ListingID: "l1", Score: &score},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	entries, err := c.GetScoreHistory(context.Background(), "l1", 5)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].Score)
	assert.InDelta(t, 81.5, *entries[0].Score, 1e-9)
}

func TestClient_RunScoring(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/score", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "VW", body["brand"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.RunSummary{Scored: 12, Total: 15})
	}))
	defer srv.Close()

	c := New(srv.URL)
	summary, err := c.RunScoring(context.Background(), "VW", "")
	require.NoError(t, err)
	assert.Equal(t, 12, summary.Scored)
	assert.Equal(t, 15, summary.Total)
}

func TestClient_ScoreListing(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/listings/l1/score", r.URL.Path)

		score := 88.0
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ScoreOutcome{
			Status: "scored",
			Score:  &score,
			Tier:   "Excellent deal",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	out, err := c.ScoreListing(context.Background(), "l1")
	require.NoError(t, err)
	assert.Equal(t, "scored", out.Status)
	assert.Equal(t, "Excellent deal", out.Tier)
}

func TestClient_ListStats(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/stats", r.URL.Path)
		assert.Equal(t, "VW", r.URL.Query().Get("brand"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]domain.ModelYearStat{
			{Brand: "VW", Model: "Golf", Year: 2020, N: 14},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	stats, err := c.ListStats(context.Background(), "VW", "", 0)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 14, stats[0].N)
}

func TestClient_GetJobHistory(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/jobs/scoring", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]domain.JobRun{
			{ID: "jr1", JobName: "scoring", Status: "succeeded"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	runs, err := c.GetJobHistory(context.Background(), "scoring")
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "succeeded", runs[0].Status)
}

func TestClient_BaseURLTrimmed(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/jobs", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]domain.JobRun{})
	}))
	defer srv.Close()

	c := New(srv.URL + "/")
	_, err := c.ListJobs(context.Background())
	require.NoError(t, err)
}
