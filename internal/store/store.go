// Package store defines the datastore abstraction for carwatch.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"encoding/json"
	"time"

	domain "github.com/jhartmann/carwatch/pkg/types"
)

// ListingQuery defines optional filters for listing queries.
type ListingQuery struct {
	Brand        *string
	Model        *string
	Year         *int
	FuelType     *string
	Transmission *string
	Tier         *string
	MinScore     *float64
	MaxScore     *float64
	MaxPriceEUR  *int
	ActiveOnly   bool
	Limit        int // default 50
	Offset       int
	OrderBy      string // "score", "price", "mileage", "year", "last_seen"
}

// ScoreUpdate carries one scoring outcome to be persisted. The listing's
// score fields and the corresponding history row are written in a single
// transaction so readers never observe one without the other.
type ScoreUpdate struct {
	ListingID  string
	Score      float64
	Version    string
	Tier       string
	CohortSize int
	Percentile float64
	ComputedAt time.Time
	Details    json.RawMessage
}

// Store defines all data access operations for carwatch.
type Store interface {
	// Listings
	//
	// UpsertListing inserts a listing or updates the existing row with the
	// same URL. A price history entry is appended on insert and whenever the
	// observed price or mileage differs from the stored row. Reports whether
	// a new row was created.
	UpsertListing(ctx context.Context, l *domain.Listing) (inserted bool, err error)
	GetListingByID(ctx context.Context, id string) (*domain.Listing, error)
	GetListingByURL(ctx context.Context, url string) (*domain.Listing, error)
	ListListings(ctx context.Context, opts *ListingQuery) ([]domain.Listing, int, error)
	// ListActiveListings returns every active listing, optionally restricted
	// to one brand or brand+model. Used as the frozen population snapshot for
	// a scoring run.
	ListActiveListings(ctx context.Context, brand, model string) ([]domain.Listing, error)
	// MarkInactive deactivates active listings not seen since the cutoff,
	// optionally restricted to one source.
	MarkInactive(ctx context.Context, source string, lastSeenBefore time.Time) (int, error)

	// Scores
	ApplyScore(ctx context.Context, u *ScoreUpdate) error
	// RecordInsufficient appends a history entry with a null score and
	// leaves the listing's current score fields untouched.
	RecordInsufficient(ctx context.Context, listingID, version string, details json.RawMessage, computedAt time.Time) error
	ListScoreHistory(ctx context.Context, listingID string, limit int) ([]domain.ScoreHistoryEntry, error)
	ListPriceHistory(ctx context.Context, listingID string, limit int) ([]domain.PriceHistoryEntry, error)

	// Aggregates
	UpsertModelYearStats(ctx context.Context, stats []domain.ModelYearStat) error
	ListModelYearStats(ctx context.Context, brand, model string, limit int) ([]domain.ModelYearStat, error)

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	RecoverStaleJobRuns(ctx context.Context, olderThan time.Duration) (int, error)
	AcquireSchedulerLock(ctx context.Context, jobName string, holder string, ttl time.Duration) (bool, error)
	ReleaseSchedulerLock(ctx context.Context, jobName string, holder string) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
