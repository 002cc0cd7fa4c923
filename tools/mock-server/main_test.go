package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func loadTestFixture(t *testing.T) *listingsResponse {
	t.Helper()
	path := filepath.Join("testdata", "listings.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	var resp listingsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return &resp
}

func TestLoadFixture(t *testing.T) {
	fixture := loadTestFixture(t)
	if len(fixture.Listings) == 0 {
		t.Fatal("expected listings in fixture")
	}
	if fixture.Total != len(fixture.Listings) {
		t.Errorf("total=%d, want %d", fixture.Total, len(fixture.Listings))
	}
}

func TestListingsHandler_All(t *testing.T) {
	fixture := loadTestFixture(t)
	handler := listingsHandler(testLogger(), fixture)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/listings", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}

	var resp listingsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Total != len(fixture.Listings) {
		t.Errorf("total=%d, want %d", resp.Total, len(fixture.Listings))
	}
	if len(resp.Listings) != len(fixture.Listings) {
		t.Errorf("listings=%d, want %d", len(resp.Listings), len(fixture.Listings))
	}
}

func TestListingsHandler_BrandFilter(t *testing.T) {
	fixture := loadTestFixture(t)
	handler := listingsHandler(testLogger(), fixture)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/listings?brand=volkswagen", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	var resp listingsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Total == 0 {
		t.Error("expected Volkswagen results")
	}
	if resp.Total >= len(fixture.Listings) {
		t.Error("expected filter to reduce results")
	}
	for _, raw := range resp.Listings {
		var s listingSummary
		_ = json.Unmarshal(raw, &s)
		if s.Brand != "Volkswagen" {
			t.Errorf("brand=%s, want Volkswagen", s.Brand)
		}
	}
}

func TestListingsHandler_MinScoreFilter(t *testing.T) {
	fixture := loadTestFixture(t)
	handler := listingsHandler(testLogger(), fixture)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/listings?min_score=70", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	var resp listingsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Total == 0 {
		t.Error("expected results at or above score 70")
	}
	for _, raw := range resp.Listings {
		var s listingSummary
		_ = json.Unmarshal(raw, &s)
		if s.Score == nil || *s.Score < 70 {
			t.Errorf("listing %s below min_score", s.ID)
		}
	}
}

func TestListingsHandler_Pagination(t *testing.T) {
	fixture := loadTestFixture(t)
	handler := listingsHandler(testLogger(), fixture)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/listings?limit=2&offset=0", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	var resp listingsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Listings) != 2 {
		t.Errorf("listings=%d, want 2", len(resp.Listings))
	}
	if resp.Total != len(fixture.Listings) {
		t.Errorf("total=%d, want %d", resp.Total, len(fixture.Listings))
	}
}

func TestListingsHandler_NoResults(t *testing.T) {
	fixture := loadTestFixture(t)
	handler := listingsHandler(testLogger(), fixture)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/listings?brand=lada", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	var resp listingsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Total != 0 {
		t.Errorf("total=%d, want 0", resp.Total)
	}
	if resp.Listings == nil {
		t.Error("expected empty array, got nil")
	}
}

func TestListingHandler_Found(t *testing.T) {
	fixture := loadTestFixture(t)
	handler := listingHandler(testLogger(), fixture)

	var first listingSummary
	_ = json.Unmarshal(fixture.Listings[0], &first)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/listings/"+first.ID, http.NoBody)
	req.SetPathValue("id", first.ID)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}
	var got listingSummary
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if got.ID != first.ID {
		t.Errorf("id=%s, want %s", got.ID, first.ID)
	}
}

func TestListingHandler_NotFound(t *testing.T) {
	fixture := loadTestFixture(t)
	handler := listingHandler(testLogger(), fixture)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/listings/missing", http.NoBody)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestJobsHandler(t *testing.T) {
	handler := jobsHandler(testLogger())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}
	var runs []map[string]any
	if err := json.NewDecoder(w.Body).Decode(&runs); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("runs=%d, want 2", len(runs))
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}
