package store

// SQL query constants organized by entity.
// All SQL lives here — PostgresStore methods reference these constants.

// Listing queries.
const (
	listingColumns = `id, source, COALESCE(external_id, ''), url, COALESCE(title, ''),
		brand, model, COALESCE(variant, ''), year, mileage_km, price_eur,
		COALESCE(fuel_type, 'unknown'), COALESCE(transmission, 'unknown'),
		COALESCE(color, ''), accident, COALESCE(condition, 'unknown'),
		score, COALESCE(score_version, ''), score_computed_at,
		COALESCE(score_tier, ''), score_cohort_size, score_percentile,
		first_seen_at, last_seen_at, updated_at, is_active`

	queryGetListingForUpdate = `
		SELECT id, price_eur, mileage_km
		FROM listings
		WHERE url = $1
		FOR UPDATE`

	queryInsertListing = `
		INSERT INTO listings (
			source, external_id, url, title,
			brand, model, variant, year, mileage_km, price_eur,
			fuel_type, transmission, color, accident, condition,
			first_seen_at, last_seen_at, updated_at, is_active
		) VALUES (
			@source, @external_id, @url, @title,
			@brand, @model, @variant, @year, @mileage_km, @price_eur,
			@fuel_type, @transmission, @color, @accident, @condition,
			now(), now(), now(), true
		)
		RETURNING id, first_seen_at, last_seen_at, updated_at`

	queryUpdateListing = `
		UPDATE listings SET
			source       = @source,
			external_id  = @external_id,
			title        = @title,
			variant      = @variant,
			year         = @year,
			mileage_km   = @mileage_km,
			price_eur    = @price_eur,
			fuel_type    = @fuel_type,
			transmission = @transmission,
			color        = @color,
			accident     = @accident,
			condition    = @condition,
			last_seen_at = now(),
			updated_at   = now(),
			is_active    = true
		WHERE id = @id
		RETURNING first_seen_at, last_seen_at, updated_at`

	queryGetListingByID = `
		SELECT ` + listingColumns + `
		FROM listings
		WHERE id = $1`

	queryGetListingByURL = `
		SELECT ` + listingColumns + `
		FROM listings
		WHERE url = $1`

	queryListActiveListings = `
		SELECT ` + listingColumns + `
		FROM listings
		WHERE is_active = true
		  AND ($1 = '' OR lower(brand) = lower($1))
		  AND ($2 = '' OR lower(model) = lower($2))
		ORDER BY first_seen_at`

	queryMarkInactive = `
		UPDATE listings SET
			is_active  = false,
			updated_at = now()
		WHERE is_active = true
		  AND last_seen_at < $1
		  AND ($2 = '' OR source = $2)`
)

// Price history queries.
const (
	queryInsertPriceHistory = `
		INSERT INTO listing_price_history (listing_id, price_eur, mileage_km)
		VALUES ($1, $2, $3)`

	queryListPriceHistory = `
		SELECT id, listing_id, price_eur, mileage_km, recorded_at
		FROM listing_price_history
		WHERE listing_id = $1
		ORDER BY recorded_at DESC
		LIMIT $2`
)

// Score queries. ApplyScore and RecordInsufficient each run both statements
// of their pair inside one transaction.
const (
	queryUpdateListingScore = `
		UPDATE listings SET
			score             = $2,
			score_version     = $3,
			score_computed_at = $4,
			score_tier        = $5,
			score_cohort_size = $6,
			score_percentile  = $7,
			updated_at        = now()
		WHERE id = $1`

	queryInsertScoreHistory = `
		INSERT INTO listing_score_history (listing_id, score, score_version, details, computed_at)
		VALUES ($1, $2, $3, $4, $5)`

	queryListScoreHistory = `
		SELECT id, listing_id, score, score_version, details, computed_at
		FROM listing_score_history
		WHERE listing_id = $1
		ORDER BY computed_at DESC
		LIMIT $2`
)

// Aggregate queries.
const (
	queryUpsertModelYearStat = `
		INSERT INTO model_year_stats (
			snapshot_date, brand, model, year,
			n, avg_price, median_price, avg_mileage, median_mileage
		) VALUES (
			@snapshot_date, @brand, @model, @year,
			@n, @avg_price, @median_price, @avg_mileage, @median_mileage
		)
		ON CONFLICT (snapshot_date, brand, model, year) DO UPDATE SET
			n              = EXCLUDED.n,
			avg_price      = EXCLUDED.avg_price,
			median_price   = EXCLUDED.median_price,
			avg_mileage    = EXCLUDED.avg_mileage,
			median_mileage = EXCLUDED.median_mileage`

	queryListModelYearStats = `
		SELECT snapshot_date, brand, model, year,
			n, avg_price, median_price, avg_mileage, median_mileage
		FROM model_year_stats
		WHERE ($1 = '' OR lower(brand) = lower($1))
		  AND ($2 = '' OR lower(model) = lower($2))
		ORDER BY snapshot_date DESC, brand, model, year
		LIMIT $3`
)

// Scheduler queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name)
		VALUES ($1)
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at  = now(),
			status        = $2,
			error_text    = $3,
			rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`

	queryListLatestJobRuns = `
		SELECT DISTINCT ON (job_name)
			id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		ORDER BY job_name, started_at DESC`

	queryMarkStaleJobRunsCrashed = `
		UPDATE job_runs SET
			status       = 'crashed',
			completed_at = now()
		WHERE status = 'running' AND started_at < $1`

	queryDeleteOldJobRuns = `
		DELETE FROM job_runs WHERE started_at < now() - interval '30 days'`

	queryAcquireSchedulerLock = `
		INSERT INTO scheduler_locks (job_name, lock_holder, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_name) DO UPDATE
			SET locked_at   = now(),
				lock_holder = EXCLUDED.lock_holder,
				expires_at  = EXCLUDED.expires_at
			WHERE scheduler_locks.expires_at < now()
		RETURNING job_name`

	queryReleaseSchedulerLock = `
		DELETE FROM scheduler_locks WHERE job_name = $1 AND lock_holder = $2`
)
