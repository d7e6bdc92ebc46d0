// Package extract turns unstructured promotional text into structured
// candidate deals using a cascade of rule-based extractors. Extraction
// never fails: fields that cannot be recovered come back empty and are
// rejected downstream.
package extract

import (
	"log/slog"
	"time"

	"github.com/dealradar/dealradar/pkg/logger"
	domain "github.com/dealradar/dealradar/pkg/types"
)

// Extractor parses promotional messages into candidate deals.
type Extractor struct {
	log *slog.Logger
	now func() time.Time
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger used for extraction diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(e *Extractor) { e.log = log }
}

// WithClock overrides the observation timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) { e.now = now }
}

// New creates an Extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		log: logger.Discard(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses one raw message into a candidate deal. It never
// returns an error: an unparseable message yields a candidate with
// empty fields and the title sentinel, which downstream verification
// rejects. Store, prices and category read the whitespace-collapsed
// text; the link reads the raw text because cleaning can corrupt URLs;
// the title works line by line.
func (e *Extractor) Extract(raw string) domain.CandidateDeal {
	deal := domain.CandidateDeal{
		Title:      TitleSentinel,
		Store:      domain.StoreOther,
		Category:   CategoryOther,
		ObservedAt: e.now().UTC(),
	}
	if raw == "" {
		return deal
	}

	cleaned := CleanText(raw)

	deal.Store = DetectStore(cleaned)

	prices := ExtractPrices(cleaned)
	deal.DiscountPrice = prices.DiscountPrice
	deal.MRP = prices.MRP
	deal.DiscountPercent = prices.DiscountPercent

	deal.Link = ExtractLink(raw)
	deal.Title = ExtractTitle(raw)
	deal.Category = Categorize(cleaned)

	e.log.Debug("extracted candidate deal",
		"store", deal.Store,
		"title", deal.Title,
		"category", deal.Category,
		"has_price", deal.DiscountPrice != nil,
		"has_link", deal.Link != "",
	)
	return deal
}
