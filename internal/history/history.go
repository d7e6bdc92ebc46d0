// Package history records product price observations and derives
// analytics over them: historical lows, inflated-MRP detection, window
// aggregates, and a coarse trend. Observations are append-only; every
// insight is computed on read and never persisted.
package history

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/dealradar/dealradar/internal/store"
	"github.com/dealradar/dealradar/pkg/logger"
	domain "github.com/dealradar/dealradar/pkg/types"
)

const (
	// lookbackDays bounds every history read. Historical-low and
	// fake-discount checks use the full window.
	lookbackDays = 90
	// insightDays is the aggregate window for lowest/highest/average
	// and the trend.
	insightDays = 30
	recentDays  = 7

	// mrpTolerance flags a claimed MRP as inflated when it exceeds the
	// average observed selling price by this factor.
	mrpTolerance = 1.2

	// trendBandPercent is the dead band around zero inside which the
	// trend counts as stable.
	trendBandPercent = 5.0

	// minTrendObservations is the fewest points a trend can be read from.
	minTrendObservations = 3
)

// Tracker reads and writes a product's price series.
type Tracker struct {
	store store.Store
	log   *slog.Logger
	now   func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the logger used for history diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(t *Tracker) { t.log = log }
}

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// New creates a Tracker backed by the given store.
func New(s store.Store, opts ...Option) *Tracker {
	t := &Tracker{
		store: s,
		log:   logger.Discard(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// RecordPrice appends one observation to a product's series.
func (t *Tracker) RecordPrice(
	ctx context.Context,
	productKey string,
	price float64,
	mrp *float64,
	metadata map[string]string,
) error {
	obs := &domain.PriceObservation{
		ProductKey: productKey,
		Price:      price,
		MRP:        mrp,
		ObservedAt: t.now().UTC(),
		Metadata:   metadata,
	}
	if err := t.store.InsertPriceObservation(ctx, obs); err != nil {
		return fmt.Errorf("recording price for %s: %w", productKey, err)
	}

	t.log.Debug("recorded price observation",
		"product_key", productKey,
		"price", price,
	)
	return nil
}

// Insights derives the full analytics view for a product given its
// current price and the MRP the promotion claims. The series is read
// once over the 90-day lookback; the 30-day and 7-day windows are
// carved out in memory. A product with no observations inside the
// 30-day window yields the zero insight with an unknown trend, even
// when older observations exist.
func (t *Tracker) Insights(
	ctx context.Context,
	productKey string,
	currentPrice float64,
	claimedMRP *float64,
) (*domain.PriceInsight, error) {
	now := t.now()
	all, err := t.store.ListPriceObservations(ctx, productKey, now.AddDate(0, 0, -lookbackDays))
	if err != nil {
		return nil, fmt.Errorf("loading price history for %s: %w", productKey, err)
	}

	insight := &domain.PriceInsight{Trend30d: domain.TrendUnknown}

	window30 := observationsSince(all, now.AddDate(0, 0, -insightDays))
	if len(window30) == 0 {
		return insight, nil
	}

	insight.HasHistory = true

	// Prices are recorded positive, but a series of unusable points
	// still counts as "no usable history".
	prices90 := prices(all)
	prices30 := prices(window30)
	if len(prices90) == 0 || len(prices30) == 0 {
		return insight, nil
	}

	insight.IsHistoricalLow = currentPrice <= minOf(prices90)

	insight.Lowest30d = floatPtr(minOf(prices30))
	insight.Highest30d = floatPtr(maxOf(prices30))
	insight.Average30d = floatPtr(avgOf(prices30))
	insight.PriceDrop30d = dropPercent(prices30, currentPrice)
	insight.PriceDrop7d = dropPercent(prices(observationsSince(all, now.AddDate(0, 0, -recentDays))), currentPrice)
	insight.Trend30d = trend(window30)

	if claimedMRP != nil {
		insight.IsFakeDiscount = *claimedMRP > avgOf(prices90)*mrpTolerance
	}

	return insight, nil
}

// observationsSince filters an ascending series to points at or after
// the cutoff.
func observationsSince(obs []domain.PriceObservation, cutoff time.Time) []domain.PriceObservation {
	for i, o := range obs {
		if !o.ObservedAt.Before(cutoff) {
			return obs[i:]
		}
	}
	return nil
}

// dropPercent is the percentage fall from the window average to the
// current price, rounded to two decimals. Negative means the price
// rose. Nil when the window is empty.
func dropPercent(windowPrices []float64, currentPrice float64) *float64 {
	if len(windowPrices) == 0 {
		return nil
	}
	avg := avgOf(windowPrices)
	if avg == 0 {
		return nil
	}
	return floatPtr(round2((avg - currentPrice) / avg * 100))
}

// trend compares the average of the first half of the window with the
// second half. Moves inside the dead band are stable; fewer than three
// observations cannot support a direction at all.
func trend(obs []domain.PriceObservation) domain.Trend {
	if len(obs) < minTrendObservations {
		return domain.TrendUnknown
	}

	mid := len(obs) / 2
	avgFirst := avgOf(prices(obs[:mid]))
	avgSecond := avgOf(prices(obs[mid:]))
	if avgFirst == 0 {
		return domain.TrendUnknown
	}

	diffPercent := (avgSecond - avgFirst) / avgFirst * 100
	switch {
	case diffPercent > trendBandPercent:
		return domain.TrendRising
	case diffPercent < -trendBandPercent:
		return domain.TrendFalling
	default:
		return domain.TrendStable
	}
}

func prices(obs []domain.PriceObservation) []float64 {
	out := make([]float64, 0, len(obs))
	for _, o := range obs {
		if o.Price > 0 {
			out = append(out, o.Price)
		}
	}
	return out
}

func minOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		m = min(m, v)
	}
	return m
}

func maxOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		m = max(m, v)
	}
	return m
}

func avgOf(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func floatPtr(v float64) *float64 { return &v }
