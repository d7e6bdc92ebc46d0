// Package verify implements the confidence-based verification gate. A
// candidate deal is checked against the official product page; the
// outcome records how much of the promotional claim could be
// corroborated, never whether the deal is "good". Deal quality is the
// scorer's job.
package verify

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/dealradar/dealradar/internal/fetch"
	"github.com/dealradar/dealradar/pkg/logger"
	domain "github.com/dealradar/dealradar/pkg/types"
)

// DefaultMinConfidence is the persistence-gate threshold.
const DefaultMinConfidence = 0.4

// Confidence contributions. Base credit is for attempting verification
// at all; the rest is per corroborated official field.
const (
	confidenceBase  = 0.40
	confidencePrice = 0.35
	confidenceMRP   = 0.15
	confidenceTitle = 0.10
)

// LinkResolver expands shortened promotional links to final product URLs.
type LinkResolver interface {
	Resolve(ctx context.Context, raw string) (string, error)
}

// Pipeline runs a candidate deal through link resolution, official
// fetch, and confidence calculation. Both collaborators are optional:
// a nil resolver skips expansion, a nil fetcher degrades every result
// to the unverifiable path.
type Pipeline struct {
	resolver      LinkResolver
	fetcher       fetch.Fetcher
	log           *slog.Logger
	minConfidence float64
	now           func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger used for verification diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(p *Pipeline) { p.log = log }
}

// WithMinConfidence overrides the persistence-gate threshold.
func WithMinConfidence(min float64) Option {
	return func(p *Pipeline) { p.minConfidence = min }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// New creates a verification Pipeline.
func New(resolver LinkResolver, fetcher fetch.Fetcher, opts ...Option) *Pipeline {
	p := &Pipeline{
		resolver:      resolver,
		fetcher:       fetcher,
		log:           logger.Discard(),
		minConfidence: DefaultMinConfidence,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Verify runs one candidate through the pipeline. It never returns an
// error: every failure mode lands in a terminal recommendation so that
// batch processing is isolated per record.
func (p *Pipeline) Verify(ctx context.Context, deal *domain.CandidateDeal) *domain.VerificationResult {
	res := &domain.VerificationResult{
		Source:         domain.SourceNone,
		Recommendation: domain.RecommendReject,
		VerifiedAt:     p.now().UTC(),
	}

	link := deal.Link
	if link == "" {
		res.Issues = append(res.Issues, "no product link provided")
		res.ConfidenceLabel = labelFor(res.ConfidenceScore)
		return res
	}

	// Step 1: expand shortened links. Failure is recorded but not
	// terminal; the original link may still fetch.
	if p.resolver != nil && fetch.IsShortLink(link) {
		resolved, err := p.resolver.Resolve(ctx, link)
		if err != nil {
			res.Issues = append(res.Issues, fmt.Sprintf("link resolution failed: %v", err))
			p.log.Debug("link resolution failed", "link", link, "error", err)
		} else {
			link = resolved
		}
	}

	// Step 2: fetch the official product page.
	page, err := p.fetchPage(ctx, link)
	if err != nil {
		res.Issues = append(res.Issues, "could not fetch official product page")
		res.Source = domain.SourceMessageText
		res.Recommendation = domain.RecommendReview
		res.ConfidenceScore = confidenceBase
		res.ConfidenceLabel = labelFor(res.ConfidenceScore)
		p.log.Debug("official fetch failed",
			"link", link,
			"error", err,
		)
		return res
	}

	// Step 3: take official fields as-is. Authoritative content comes
	// only from the merchant page, never from the message.
	res.Source = domain.SourceOfficialSite
	res.VerifiedTitle = page.Title
	res.VerifiedPrice = page.OfferPrice
	res.VerifiedMRP = page.MRP
	res.Availability = page.Availability
	res.Rating = page.Rating
	res.ReviewCount = page.ReviewCount
	res.SellerName = page.SellerName
	res.SellerRating = page.SellerRating
	res.FulfilledByPlatform = page.FulfilledByPlatform
	res.ImageURL = page.ImageURL

	if page.MRP != nil && page.OfferPrice != nil && *page.MRP > *page.OfferPrice {
		pct := (*page.MRP - *page.OfferPrice) / *page.MRP * 100
		res.VerifiedDiscount = &pct
	}

	res.IsVerified = page.OfferPrice != nil
	if res.IsVerified {
		res.Recommendation = domain.RecommendAccept
	}

	// Step 4: additive confidence over corroborated fields.
	res.ConfidenceScore = confidence(res)
	res.ConfidenceLabel = labelFor(res.ConfidenceScore)

	p.log.Info("deal verified",
		"link", link,
		"confidence", res.ConfidenceScore,
		"recommendation", res.Recommendation,
	)
	return res
}

// ShouldPersist is the persistence gate, separate from the terminal
// recommendation: a borderline confidence still persists when official
// data was actually obtained.
func (p *Pipeline) ShouldPersist(res *domain.VerificationResult) bool {
	if res.ConfidenceScore >= p.minConfidence {
		return true
	}

	hasOfficialData := res.VerifiedPrice != nil || res.VerifiedTitle != ""
	return hasOfficialData && res.ConfidenceScore >= p.minConfidence-0.1
}

func (p *Pipeline) fetchPage(ctx context.Context, link string) (*domain.ProductPage, error) {
	if p.fetcher == nil {
		return nil, fmt.Errorf("official fetch capability not configured")
	}
	return p.fetcher.Fetch(ctx, link)
}

func confidence(res *domain.VerificationResult) float64 {
	score := confidenceBase
	if res.VerifiedPrice != nil {
		score += confidencePrice
	}
	if res.VerifiedMRP != nil {
		score += confidenceMRP
	}
	if res.VerifiedTitle != "" {
		score += confidenceTitle
	}
	return math.Round(math.Min(1.0, score)*100) / 100
}

func labelFor(score float64) domain.ConfidenceLabel {
	switch {
	case score >= 0.9:
		return domain.ConfidenceVeryHigh
	case score >= 0.75:
		return domain.ConfidenceHigh
	case score >= 0.6:
		return domain.ConfidenceMedium
	case score >= 0.4:
		return domain.ConfidenceLow
	default:
		return domain.ConfidenceVeryLow
	}
}
