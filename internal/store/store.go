// Package store defines the datastore abstraction for dealradar.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/dealradar/dealradar/pkg/types"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// DealQuery defines optional filters for catalog queries.
type DealQuery struct {
	Store      *string
	Category   *string
	MinScore   *float64
	MaxPrice   *float64
	ActiveOnly bool // offer_ends_at in the future
	Limit      int  // default 50
	Offset     int
	OrderBy    string // "score", "price", "created_at"
}

// Store defines all data access operations for dealradar.
type Store interface {
	// Deals
	InsertDeal(ctx context.Context, d *domain.Deal) error
	GetDeal(ctx context.Context, id string) (*domain.Deal, error)
	GetDealByLink(ctx context.Context, link string) (*domain.Deal, error)
	ListDeals(ctx context.Context, opts *DealQuery) ([]domain.Deal, int, error)
	ListDealTitles(ctx context.Context, store string, limit int) ([]string, error)
	DeleteExpiredDeals(ctx context.Context) (int, error)
	GetStats(ctx context.Context) (*domain.CatalogStats, error)

	// Price history
	InsertPriceObservation(ctx context.Context, o *domain.PriceObservation) error
	ListPriceObservations(ctx context.Context, productKey string, since time.Time) ([]domain.PriceObservation, error)

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
