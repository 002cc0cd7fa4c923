// Package main implements a mock carwatch API server for local development.
// It serves canned listings from a JSON fixture so the cw CLI can be
// exercised without a database or a running carwatch instance.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

type listingsResponse struct {
	Listings []json.RawMessage `json:"listings"`
	Total    int               `json:"total"`
}

type listingSummary struct {
	ID    string   `json:"id"`
	Brand string   `json:"brand"`
	Model string   `json:"model"`
	Score *float64 `json:"score"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/listings.json", "path to listings fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "listings", len(fixture.Listings))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/listings", listingsHandler(logger, fixture))
	mux.HandleFunc("GET /api/v1/listings/{id}", listingHandler(logger, fixture))
	mux.HandleFunc("GET /api/v1/jobs", jobsHandler(logger))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock carwatch server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*listingsResponse, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var resp listingsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &resp, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func listingsHandler(logger *slog.Logger, fixture *listingsResponse) http.HandlerFunc {
	// Pre-parse filterable fields.
	type indexedListing struct {
		raw     json.RawMessage
		summary listingSummary
	}
	items := make([]indexedListing, 0, len(fixture.Listings))
	for _, raw := range fixture.Listings {
		var s listingSummary
		//nolint:errcheck // fixture data is trusted; field extraction is best-effort
		json.Unmarshal(raw, &s)
		items = append(items, indexedListing{raw: raw, summary: s})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		brand := strings.ToLower(r.URL.Query().Get("brand"))
		model := strings.ToLower(r.URL.Query().Get("model"))
		minScore, _ := strconv.ParseFloat(r.URL.Query().Get("min_score"), 64)

		limit := 50
		if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
			limit = v
		}
		offset := 0
		if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v >= 0 {
			offset = v
		}

		var matched []json.RawMessage
		for _, item := range items {
			if brand != "" && strings.ToLower(item.summary.Brand) != brand {
				continue
			}
			if model != "" && strings.ToLower(item.summary.Model) != model {
				continue
			}
			if minScore > 0 && (item.summary.Score == nil || *item.summary.Score < minScore) {
				continue
			}
			matched = append(matched, item.raw)
		}

		total := len(matched)

		if offset >= len(matched) {
			matched = nil
		} else {
			end := min(offset+limit, len(matched))
			matched = matched[offset:end]
		}

		if matched == nil {
			matched = []json.RawMessage{}
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(listingsResponse{Listings: matched, Total: total})
		logger.Info("listings", "brand", brand, "model", model, "matched", total, "returned", len(matched))
	}
}

func listingHandler(logger *slog.Logger, fixture *listingsResponse) http.HandlerFunc {
	byID := make(map[string]json.RawMessage, len(fixture.Listings))
	for _, raw := range fixture.Listings {
		var s listingSummary
		//nolint:errcheck // fixture data is trusted
		json.Unmarshal(raw, &s)
		byID[s.ID] = raw
	}

	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		raw, ok := byID[id]
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			//nolint:errcheck // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]string{"error": "listing not found"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck // best-effort write to HTTP response in mock server
		w.Write(raw)
		logger.Info("listing", "id", id)
	}
}

func jobsHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		now := time.Now().UTC()
		runs := []map[string]any{
			{
				"id":            "mock-run-1",
				"job_name":      "scoring",
				"started_at":    now.Add(-10 * time.Minute),
				"completed_at":  now.Add(-9 * time.Minute),
				"status":        "succeeded",
				"rows_affected": 42,
			},
			{
				"id":            "mock-run-2",
				"job_name":      "deactivate",
				"started_at":    now.Add(-2 * time.Hour),
				"completed_at":  now.Add(-2 * time.Hour).Add(5 * time.Second),
				"status":        "succeeded",
				"rows_affected": 3,
			},
		}
		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(runs)
		logger.Info("jobs")
	}
}
