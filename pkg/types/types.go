// Package domain defines the core business types for carwatch.
package domain

import (
	"encoding/json"
	"time"
)

// FuelType represents a normalized fuel type.
type FuelType string

// Fuel type constants.
const (
	FuelDiesel   FuelType = "diesel"
	FuelPetrol   FuelType = "petrol"
	FuelElectric FuelType = "electric"
	FuelHybrid   FuelType = "hybrid"
	FuelUnknown  FuelType = "unknown"
)

// Transmission represents a normalized transmission type.
type Transmission string

// Transmission constants.
const (
	TransmissionAutomatic Transmission = "automatic"
	TransmissionManual    Transmission = "manual"
	TransmissionUnknown   Transmission = "unknown"
)

// Condition represents the normalized condition tier of a listing.
type Condition string

// Condition tier constants.
const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionUnknown   Condition = "unknown"
)

// Listing represents one used-vehicle offer with normalized attributes.
// Vehicle fields are written by the ingestion upsert; scoring fields are
// written exclusively by the scoring engine.
type Listing struct {
	ID         string `json:"id"                    db:"id"`
	Source     string `json:"source"                db:"source"`
	ExternalID string `json:"external_id,omitempty" db:"external_id"`
	URL        string `json:"url"                   db:"url"`
	Title      string `json:"title,omitempty"       db:"title"`

	// Normalized vehicle fields
	Brand        string       `json:"brand"                  db:"brand"`
	Model        string       `json:"model"                  db:"model"`
	Variant      string       `json:"variant,omitempty"      db:"variant"`
	Year         *int         `json:"year,omitempty"         db:"year"`
	MileageKM    *int         `json:"mileage_km,omitempty"   db:"mileage_km"`
	PriceEUR     *int         `json:"price_eur,omitempty"    db:"price_eur"`
	FuelType     FuelType     `json:"fuel_type"              db:"fuel_type"`
	Transmission Transmission `json:"transmission"           db:"transmission"`
	Color        string       `json:"color,omitempty"        db:"color"`
	Accident     bool         `json:"accident"               db:"accident"`
	Condition    Condition    `json:"condition"              db:"condition"`

	// Scoring fields
	Score           *float64   `json:"score,omitempty"             db:"score"`
	ScoreVersion    string     `json:"score_version,omitempty"     db:"score_version"`
	ScoreComputedAt *time.Time `json:"score_computed_at,omitempty" db:"score_computed_at"`
	ScoreTier       string     `json:"score_tier,omitempty"        db:"score_tier"`
	ScoreCohortSize *int       `json:"score_cohort_size,omitempty" db:"score_cohort_size"`
	ScorePercentile *float64   `json:"score_percentile,omitempty"  db:"score_percentile"`

	// Lifecycle
	FirstSeenAt time.Time `json:"first_seen_at" db:"first_seen_at"`
	LastSeenAt  time.Time `json:"last_seen_at"  db:"last_seen_at"`
	UpdatedAt   time.Time `json:"updated_at"    db:"updated_at"`
	IsActive    bool      `json:"is_active"     db:"is_active"`
}

// PriceHistoryEntry is an immutable snapshot of a listing's price and mileage,
// appended whenever the upsert process observes a change.
type PriceHistoryEntry struct {
	ID         string    `json:"id"                   db:"id"`
	ListingID  string    `json:"listing_id"           db:"listing_id"`
	PriceEUR   *int      `json:"price_eur,omitempty"  db:"price_eur"`
	MileageKM  *int      `json:"mileage_km,omitempty" db:"mileage_km"`
	RecordedAt time.Time `json:"recorded_at"          db:"recorded_at"`
}

// ScoreHistoryEntry is an immutable record of one scoring outcome for one
// listing. Score is nil for "insufficient market data" entries. Details holds
// the structured diagnostics: cohort level used, cohort size, raw percentile,
// applied overlays, and the configuration constants behind the score version.
type ScoreHistoryEntry struct {
	ID           string          `json:"id"              db:"id"`
	ListingID    string          `json:"listing_id"      db:"listing_id"`
	Score        *float64        `json:"score,omitempty" db:"score"`
	ScoreVersion string          `json:"score_version"   db:"score_version"`
	Details      json.RawMessage `json:"details"         db:"details"`
	ComputedAt   time.Time       `json:"computed_at"     db:"computed_at"`
}

// ModelYearStat is a daily aggregate of cohort-level price and mileage
// statistics for one (brand, model, year), written as a scoring-run byproduct
// for trend reporting.
type ModelYearStat struct {
	SnapshotDate  time.Time `json:"snapshot_date"            db:"snapshot_date"`
	Brand         string    `json:"brand"                    db:"brand"`
	Model         string    `json:"model"                    db:"model"`
	Year          int       `json:"year"                     db:"year"`
	N             int       `json:"n"                        db:"n"`
	AvgPrice      *float64  `json:"avg_price,omitempty"      db:"avg_price"`
	MedianPrice   *float64  `json:"median_price,omitempty"   db:"median_price"`
	AvgMileage    *float64  `json:"avg_mileage,omitempty"    db:"avg_mileage"`
	MedianMileage *float64  `json:"median_mileage,omitempty" db:"median_mileage"`
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}

// RunSummary reports the per-listing outcomes of one scoring run.
type RunSummary struct {
	ScoreVersion string        `json:"score_version"`
	Scored       int           `json:"scored"`
	Insufficient int           `json:"insufficient"`
	Invalid      int           `json:"invalid"`
	Failed       int           `json:"failed"`
	Total        int           `json:"total"`
	StartedAt    time.Time     `json:"started_at"`
	Duration     time.Duration `json:"duration"`
}
