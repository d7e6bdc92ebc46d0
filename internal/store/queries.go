package store

// SQL query constants organized by entity.
// All SQL lives here — PostgresStore methods reference these constants.

// Deal queries.
const (
	queryInsertDeal = `
		INSERT INTO deals (
			title, store,
			verified_mrp, verified_price, verified_discount,
			link, rating, category,
			seller_name, seller_rating, fulfilled_by_platform,
			score, grade, confidence_score,
			source_channel, image_url, offer_ends_at,
			created_at, updated_at
		) VALUES (
			@title, @store,
			@verified_mrp, @verified_price, @verified_discount,
			@link, @rating, @category,
			@seller_name, @seller_rating, @fulfilled_by_platform,
			@score, @grade, @confidence_score,
			@source_channel, @image_url, @offer_ends_at,
			now(), now()
		)
		ON CONFLICT (link) DO UPDATE SET
			title = EXCLUDED.title,
			verified_mrp = EXCLUDED.verified_mrp,
			verified_price = EXCLUDED.verified_price,
			verified_discount = EXCLUDED.verified_discount,
			rating = EXCLUDED.rating,
			seller_name = EXCLUDED.seller_name,
			seller_rating = EXCLUDED.seller_rating,
			fulfilled_by_platform = EXCLUDED.fulfilled_by_platform,
			score = EXCLUDED.score,
			grade = EXCLUDED.grade,
			confidence_score = EXCLUDED.confidence_score,
			image_url = EXCLUDED.image_url,
			offer_ends_at = EXCLUDED.offer_ends_at,
			updated_at = now()
		RETURNING id, created_at, updated_at`

	queryGetDealByID = `
		SELECT id, title, store,
			verified_mrp, verified_price, verified_discount,
			link, rating, COALESCE(category, ''),
			COALESCE(seller_name, ''), seller_rating, fulfilled_by_platform,
			score, grade, confidence_score,
			COALESCE(source_channel, ''), COALESCE(image_url, ''),
			offer_ends_at, created_at, updated_at
		FROM deals
		WHERE id = $1`

	queryGetDealByLink = `
		SELECT id, title, store,
			verified_mrp, verified_price, verified_discount,
			link, rating, COALESCE(category, ''),
			COALESCE(seller_name, ''), seller_rating, fulfilled_by_platform,
			score, grade, confidence_score,
			COALESCE(source_channel, ''), COALESCE(image_url, ''),
			offer_ends_at, created_at, updated_at
		FROM deals
		WHERE link = $1`

	queryListDealTitles = `
		SELECT title
		FROM deals
		WHERE store = $1 AND offer_ends_at > now()
		ORDER BY created_at DESC
		LIMIT $2`

	queryDeleteExpiredDeals = `
		DELETE FROM deals
		WHERE offer_ends_at <= now()`

	queryCountDeals = `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE offer_ends_at > now())
		FROM deals`

	queryCountDealsByStore = `
		SELECT store, COUNT(*)
		FROM deals
		WHERE offer_ends_at > now()
		GROUP BY store`

	queryCountDealsByCategory = `
		SELECT COALESCE(category, ''), COUNT(*)
		FROM deals
		WHERE offer_ends_at > now()
		GROUP BY category`
)

// Price history queries.
const (
	queryInsertPriceObservation = `
		INSERT INTO price_observations (product_key, price, mrp, observed_at, metadata)
		VALUES (@product_key, @price, @mrp, @observed_at, @metadata)`

	queryListPriceObservations = `
		SELECT product_key, price, mrp, observed_at, COALESCE(metadata, '{}')
		FROM price_observations
		WHERE product_key = $1 AND observed_at >= $2
		ORDER BY observed_at ASC`
)

// Scheduler queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name, started_at, status)
		VALUES ($1, now(), 'running')
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs
		SET completed_at = now(), status = $2, error_text = NULLIF($3, ''), rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status, COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`

	queryListLatestJobRuns = `
		SELECT DISTINCT ON (job_name)
			id, job_name, started_at, completed_at, status, COALESCE(error_text, ''), rows_affected
		FROM job_runs
		ORDER BY job_name, started_at DESC`

	queryMarkStaleJobRunsCrashed = `
		UPDATE job_runs
		SET completed_at = now(), status = 'crashed', error_text = 'recovered: run never completed'
		WHERE status = 'running' AND started_at < $1`

	queryDeleteOldJobRuns = `
		DELETE FROM job_runs
		WHERE started_at < now() - INTERVAL '30 days'`

	queryAcquireSchedulerLock = `
		INSERT INTO scheduler_locks (job_name, holder, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_name) DO UPDATE SET
			holder = EXCLUDED.holder,
			expires_at = EXCLUDED.expires_at
		WHERE scheduler_locks.expires_at < now() OR scheduler_locks.holder = EXCLUDED.holder
		RETURNING job_name`

	queryReleaseSchedulerLock = `
		DELETE FROM scheduler_locks
		WHERE job_name = $1 AND holder = $2`
)
