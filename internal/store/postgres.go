package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/dealradar/dealradar/pkg/types"
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

// InsertDeal inserts or updates a deal keyed by its product link. A second
// sighting of the same link refreshes prices, score, and expiry instead of
// creating a new row.
func (s *PostgresStore) InsertDeal(ctx context.Context, d *domain.Deal) error {
	args := pgx.NamedArgs{
		"title":                 d.Title,
		"store":                 string(d.Store),
		"verified_mrp":          d.VerifiedMRP,
		"verified_price":        d.VerifiedPrice,
		"verified_discount":     d.VerifiedDiscount,
		"link":                  d.Link,
		"rating":                d.Rating,
		"category":              d.Category,
		"seller_name":           d.SellerName,
		"seller_rating":         d.SellerRating,
		"fulfilled_by_platform": d.FulfilledByPlatform,
		"score":                 d.Score,
		"grade":                 d.Grade,
		"confidence_score":      d.ConfidenceScore,
		"source_channel":        d.SourceChannel,
		"image_url":             d.ImageURL,
		"offer_ends_at":         d.OfferEndsAt,
	}

	return s.pool.QueryRow(ctx, queryInsertDeal, args).Scan(
		&d.ID, &d.CreatedAt, &d.UpdatedAt,
	)
}

// GetDeal retrieves a deal by its internal UUID.
func (s *PostgresStore) GetDeal(ctx context.Context, id string) (*domain.Deal, error) {
	d := &domain.Deal{}
	if err := scanDeal(s.pool.QueryRow(ctx, queryGetDealByID, id), d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

// GetDealByLink retrieves a deal by its product link.
func (s *PostgresStore) GetDealByLink(ctx context.Context, link string) (*domain.Deal, error) {
	d := &domain.Deal{}
	if err := scanDeal(s.pool.QueryRow(ctx, queryGetDealByLink, link), d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

// ListDeals queries the catalog with optional filters, returning results
// and total count.
func (s *PostgresStore) ListDeals(
	ctx context.Context,
	opts *DealQuery,
) ([]domain.Deal, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting deals: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying deals: %w", err)
	}
	defer rows.Close()

	var deals []domain.Deal
	for rows.Next() {
		var d domain.Deal
		if err := scanDeal(rows, &d); err != nil {
			return nil, 0, fmt.Errorf("scanning deal: %w", err)
		}
		deals = append(deals, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating deals: %w", err)
	}

	return deals, total, nil
}

// ListDealTitles returns titles of active deals for a store, newest first.
// Used by the catalog near-duplicate gate before inserting a new deal.
func (s *PostgresStore) ListDealTitles(
	ctx context.Context,
	store string,
	limit int,
) ([]string, error) {
	rows, err := s.pool.Query(ctx, queryListDealTitles, store, limit)
	if err != nil {
		return nil, fmt.Errorf("querying deal titles: %w", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scanning deal title: %w", err)
		}
		titles = append(titles, t)
	}

	return titles, rows.Err()
}

// DeleteExpiredDeals removes deals whose offer window has closed and
// returns the number of rows deleted.
func (s *PostgresStore) DeleteExpiredDeals(ctx context.Context) (int, error) {
	tag, err := s.pool.Exec(ctx, queryDeleteExpiredDeals)
	if err != nil {
		return 0, fmt.Errorf("deleting expired deals: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// GetStats returns aggregate catalog counts, total and active, broken down
// by store and category.
func (s *PostgresStore) GetStats(ctx context.Context) (*domain.CatalogStats, error) {
	stats := &domain.CatalogStats{
		ByStore:    make(map[string]int),
		ByCategory: make(map[string]int),
	}

	if err := s.pool.QueryRow(ctx, queryCountDeals).Scan(
		&stats.TotalDeals, &stats.ActiveDeals,
	); err != nil {
		return nil, fmt.Errorf("counting deals: %w", err)
	}

	if err := s.countInto(ctx, queryCountDealsByStore, stats.ByStore); err != nil {
		return nil, fmt.Errorf("counting deals by store: %w", err)
	}
	if err := s.countInto(ctx, queryCountDealsByCategory, stats.ByCategory); err != nil {
		return nil, fmt.Errorf("counting deals by category: %w", err)
	}

	return stats, nil
}

// InsertPriceObservation appends one point to a product's price series.
func (s *PostgresStore) InsertPriceObservation(
	ctx context.Context,
	o *domain.PriceObservation,
) error {
	metaJSON, err := json.Marshal(o.Metadata)
	if err != nil {
		return fmt.Errorf("marshaling observation metadata: %w", err)
	}

	args := pgx.NamedArgs{
		"product_key": o.ProductKey,
		"price":       o.Price,
		"mrp":         o.MRP,
		"observed_at": o.ObservedAt,
		"metadata":    metaJSON,
	}

	if _, err := s.pool.Exec(ctx, queryInsertPriceObservation, args); err != nil {
		return fmt.Errorf("inserting price observation: %w", err)
	}
	return nil
}

// ListPriceObservations returns a product's observations at or after the
// given cutoff, oldest first.
func (s *PostgresStore) ListPriceObservations(
	ctx context.Context,
	productKey string,
	since time.Time,
) ([]domain.PriceObservation, error) {
	rows, err := s.pool.Query(ctx, queryListPriceObservations, productKey, since)
	if err != nil {
		return nil, fmt.Errorf("querying price observations: %w", err)
	}
	defer rows.Close()

	var obs []domain.PriceObservation
	for rows.Next() {
		var o domain.PriceObservation
		var metaJSON []byte
		if err := rows.Scan(&o.ProductKey, &o.Price, &o.MRP, &o.ObservedAt, &metaJSON); err != nil {
			return nil, fmt.Errorf("scanning price observation: %w", err)
		}
		if err := json.Unmarshal(metaJSON, &o.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshaling observation metadata: %w", err)
		}
		obs = append(obs, o)
	}

	return obs, rows.Err()
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

// countInto runs a (label, count) aggregate query into a map.
func (s *PostgresStore) countInto(ctx context.Context, query string, dst map[string]int) error {
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var label string
		var count int
		if err := rows.Scan(&label, &count); err != nil {
			return err
		}
		dst[label] = count
	}
	return rows.Err()
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

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

// scanDeal scans a full deal row.
func scanDeal(row scannable, d *domain.Deal) error {
	return row.Scan(
		&d.ID, &d.Title, &d.Store,
		&d.VerifiedMRP, &d.VerifiedPrice, &d.VerifiedDiscount,
		&d.Link, &d.Rating, &d.Category,
		&d.SellerName, &d.SellerRating, &d.FulfilledByPlatform,
		&d.Score, &d.Grade, &d.ConfidenceScore,
		&d.SourceChannel, &d.ImageURL,
		&d.OfferEndsAt, &d.CreatedAt, &d.UpdatedAt,
	)
}
