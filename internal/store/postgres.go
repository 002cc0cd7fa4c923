package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/jhartmann/carwatch/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertListing inserts a listing or updates the row sharing its URL.
// The row lookup, the write, and the conditional price history append happen
// in one transaction; concurrent upserts of the same URL serialize on the
// row lock.
func (s *PostgresStore) UpsertListing(ctx context.Context, l *domain.Listing) (bool, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("beginning upsert transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	var (
		existingID      string
		storedPrice     *int
		storedMileage   *int
		inserted        bool
		recordHistory   bool
	)

	err = tx.QueryRow(ctx, queryGetListingForUpdate, l.URL).Scan(
		&existingID, &storedPrice, &storedMileage,
	)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		inserted = true
		recordHistory = true
	case err != nil:
		return false, fmt.Errorf("locating listing by url: %w", err)
	default:
		l.ID = existingID
		recordHistory = !intPtrEqual(storedPrice, l.PriceEUR) ||
			!intPtrEqual(storedMileage, l.MileageKM)
	}

	args := pgx.NamedArgs{
		"source":       l.Source,
		"external_id":  l.ExternalID,
		"url":          l.URL,
		"title":        l.Title,
		"brand":        l.Brand,
		"model":        l.Model,
		"variant":      l.Variant,
		"year":         l.Year,
		"mileage_km":   l.MileageKM,
		"price_eur":    l.PriceEUR,
		"fuel_type":    string(l.FuelType),
		"transmission": string(l.Transmission),
		"color":        l.Color,
		"accident":     l.Accident,
		"condition":    string(l.Condition),
	}

	if inserted {
		err = tx.QueryRow(ctx, queryInsertListing, args).Scan(
			&l.ID, &l.FirstSeenAt, &l.LastSeenAt, &l.UpdatedAt,
		)
	} else {
		args["id"] = l.ID
		err = tx.QueryRow(ctx, queryUpdateListing, args).Scan(
			&l.FirstSeenAt, &l.LastSeenAt, &l.UpdatedAt,
		)
	}
	if err != nil {
		return false, fmt.Errorf("writing listing: %w", err)
	}
	l.IsActive = true

	if recordHistory {
		if _, err := tx.Exec(ctx, queryInsertPriceHistory, l.ID, l.PriceEUR, l.MileageKM); err != nil {
			return false, fmt.Errorf("appending price history: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("committing upsert: %w", err)
	}
	return inserted, nil
}

// GetListingByID retrieves a listing by its internal UUID.
func (s *PostgresStore) GetListingByID(ctx context.Context, id string) (*domain.Listing, error) {
	l := &domain.Listing{}
	if err := scanListing(s.pool.QueryRow(ctx, queryGetListingByID, id), l); err != nil {
		return nil, err
	}
	return l, nil
}

// GetListingByURL retrieves a listing by its unique source URL.
func (s *PostgresStore) GetListingByURL(ctx context.Context, url string) (*domain.Listing, error) {
	l := &domain.Listing{}
	if err := scanListing(s.pool.QueryRow(ctx, queryGetListingByURL, url), l); err != nil {
		return nil, err
	}
	return l, nil
}

// ListListings queries listings with optional filters, returning results and total count.
func (s *PostgresStore) ListListings(
	ctx context.Context,
	opts *ListingQuery,
) ([]domain.Listing, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting listings: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	listings, err := scanListings(rows)
	if err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

// ListActiveListings returns all active listings, optionally restricted to a
// brand or brand+model. Passing empty strings disables the corresponding filter.
func (s *PostgresStore) ListActiveListings(
	ctx context.Context,
	brand, model string,
) ([]domain.Listing, error) {
	rows, err := s.pool.Query(ctx, queryListActiveListings, brand, model)
	if err != nil {
		return nil, fmt.Errorf("querying active listings: %w", err)
	}
	defer rows.Close()

	return scanListings(rows)
}

// MarkInactive deactivates every active listing not seen since the cutoff,
// optionally restricted to one source. Returns the number of listings
// deactivated.
func (s *PostgresStore) MarkInactive(ctx context.Context, source string, lastSeenBefore time.Time) (int, error) {
	tag, err := s.pool.Exec(ctx, queryMarkInactive, lastSeenBefore, source)
	if err != nil {
		return 0, fmt.Errorf("marking listings inactive: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// ApplyScore writes the listing's score fields and the corresponding history
// entry in a single transaction.
func (s *PostgresStore) ApplyScore(ctx context.Context, u *ScoreUpdate) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning score transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	tag, err := tx.Exec(ctx, queryUpdateListingScore,
		u.ListingID, u.Score, u.Version, u.ComputedAt, u.Tier, u.CohortSize, u.Percentile,
	)
	if err != nil {
		return fmt.Errorf("updating listing score: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if _, err := tx.Exec(ctx, queryInsertScoreHistory,
		u.ListingID, u.Score, u.Version, u.Details, u.ComputedAt,
	); err != nil {
		return fmt.Errorf("inserting score history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing score: %w", err)
	}
	return nil
}

// RecordInsufficient appends a history entry with a null score. The
// listing's current score fields are left alone so the last computed
// score survives sparse runs.
func (s *PostgresStore) RecordInsufficient(
	ctx context.Context,
	listingID, version string,
	details json.RawMessage,
	computedAt time.Time,
) error {
	if _, err := s.pool.Exec(ctx, queryInsertScoreHistory,
		listingID, nil, version, details, computedAt,
	); err != nil {
		return fmt.Errorf("inserting score history: %w", err)
	}
	return nil
}

// ListScoreHistory returns a listing's score history, newest first.
func (s *PostgresStore) ListScoreHistory(
	ctx context.Context,
	listingID string,
	limit int,
) ([]domain.ScoreHistoryEntry, error) {
	rows, err := s.pool.Query(ctx, queryListScoreHistory, listingID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying score history: %w", err)
	}
	defer rows.Close()

	var entries []domain.ScoreHistoryEntry
	for rows.Next() {
		var e domain.ScoreHistoryEntry
		if err := rows.Scan(
			&e.ID, &e.ListingID, &e.Score, &e.ScoreVersion, &e.Details, &e.ComputedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning score history entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// ListPriceHistory returns a listing's price history, newest first.
func (s *PostgresStore) ListPriceHistory(
	ctx context.Context,
	listingID string,
	limit int,
) ([]domain.PriceHistoryEntry, error) {
	rows, err := s.pool.Query(ctx, queryListPriceHistory, listingID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying price history: %w", err)
	}
	defer rows.Close()

	var entries []domain.PriceHistoryEntry
	for rows.Next() {
		var e domain.PriceHistoryEntry
		if err := rows.Scan(
			&e.ID, &e.ListingID, &e.PriceEUR, &e.MileageKM, &e.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning price history entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// UpsertModelYearStats writes one day's aggregate rows, replacing any existing
// row for the same (snapshot_date, brand, model, year).
func (s *PostgresStore) UpsertModelYearStats(
	ctx context.Context,
	stats []domain.ModelYearStat,
) error {
	if len(stats) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, st := range stats {
		batch.Queue(queryUpsertModelYearStat, pgx.NamedArgs{
			"snapshot_date":  st.SnapshotDate,
			"brand":          st.Brand,
			"model":          st.Model,
			"year":           st.Year,
			"n":              st.N,
			"avg_price":      st.AvgPrice,
			"median_price":   st.MedianPrice,
			"avg_mileage":    st.AvgMileage,
			"median_mileage": st.MedianMileage,
		})
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close() //nolint:errcheck // close error surfaces via Exec

	for range stats {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("upserting model year stats: %w", err)
		}
	}
	return nil
}

// ListModelYearStats returns aggregate rows, newest snapshot first. Empty
// brand or model disables the corresponding filter.
func (s *PostgresStore) ListModelYearStats(
	ctx context.Context,
	brand, model string,
	limit int,
) ([]domain.ModelYearStat, error) {
	rows, err := s.pool.Query(ctx, queryListModelYearStats, brand, model, limit)
	if err != nil {
		return nil, fmt.Errorf("querying model year stats: %w", err)
	}
	defer rows.Close()

	var stats []domain.ModelYearStat
	for rows.Next() {
		var st domain.ModelYearStat
		if err := rows.Scan(
			&st.SnapshotDate, &st.Brand, &st.Model, &st.Year,
			&st.N, &st.AvgPrice, &st.MedianPrice, &st.AvgMileage, &st.MedianMileage,
		); err != nil {
			return nil, fmt.Errorf("scanning model year stat: %w", err)
		}
		stats = append(stats, st)
	}

	return stats, rows.Err()
}

// InsertJobRun records the start of a scheduled job and returns its UUID.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run as finished with the given status and metadata.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns the most recent runs for a specific job, newest first.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// ListLatestJobRuns returns the single most recent run for each distinct job name.
func (s *PostgresStore) ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListLatestJobRuns)
	if err != nil {
		return nil, fmt.Errorf("querying latest job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// RecoverStaleJobRuns marks any 'running' job rows older than olderThan as 'crashed',
// then deletes all rows older than 30 days. Returns the number of rows marked as crashed.
func (s *PostgresStore) RecoverStaleJobRuns(
	ctx context.Context,
	olderThan time.Duration,
) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	tag, err := s.pool.Exec(ctx, queryMarkStaleJobRunsCrashed, cutoff)
	if err != nil {
		return 0, fmt.Errorf("marking stale job runs crashed: %w", err)
	}
	affected := int(tag.RowsAffected())

	if _, err := s.pool.Exec(ctx, queryDeleteOldJobRuns); err != nil {
		return affected, fmt.Errorf("deleting old job runs: %w", err)
	}

	return affected, nil
}

// AcquireSchedulerLock attempts to acquire a distributed lock for the given job.
// Returns true if the lock was acquired, false if another holder already owns it.
func (s *PostgresStore) AcquireSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
	ttl time.Duration,
) (bool, error) {
	expiresAt := time.Now().Add(ttl)

	var gotName string
	err := s.pool.QueryRow(ctx, queryAcquireSchedulerLock, jobName, holder, expiresAt).Scan(&gotName)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil // lock held by another; conflict not replaced
	}
	if err != nil {
		return false, fmt.Errorf("acquiring scheduler lock: %w", err)
	}

	return true, nil
}

// ReleaseSchedulerLock deletes the lock row for the given job and holder.
func (s *PostgresStore) ReleaseSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
) error {
	_, err := s.pool.Exec(ctx, queryReleaseSchedulerLock, jobName, holder)
	if err != nil {
		return fmt.Errorf("releasing scheduler lock: %w", err)
	}
	return nil
}

// scanJobRuns scans rows from a job_runs query into a slice.
func scanJobRuns(rows pgx.Rows) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// scanListings drains a listing query into a slice.
func scanListings(rows pgx.Rows) ([]domain.Listing, error) {
	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := scanListing(rows, &l); err != nil {
			return nil, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

// scanListing scans a full listing row.
func scanListing(row scannable, l *domain.Listing) error {
	return row.Scan(
		&l.ID, &l.Source, &l.ExternalID, &l.URL, &l.Title,
		&l.Brand, &l.Model, &l.Variant, &l.Year, &l.MileageKM, &l.PriceEUR,
		&l.FuelType, &l.Transmission, &l.Color, &l.Accident, &l.Condition,
		&l.Score, &l.ScoreVersion, &l.ScoreComputedAt,
		&l.ScoreTier, &l.ScoreCohortSize, &l.ScorePercentile,
		&l.FirstSeenAt, &l.LastSeenAt, &l.UpdatedAt, &l.IsActive,
	)
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
