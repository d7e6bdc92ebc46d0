// Package engine orchestrates the full pipeline: extraction,
// verification, price history, scoring, persistence, and notification.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dealradar/dealradar/internal/dedupe"
	"github.com/dealradar/dealradar/internal/metrics"
	"github.com/dealradar/dealradar/internal/notify"
	"github.com/dealradar/dealradar/internal/store"
	"github.com/dealradar/dealradar/pkg/extract"
	"github.com/dealradar/dealradar/pkg/logger"
	scorer "github.com/dealradar/dealradar/pkg/scorer"
	domain "github.com/dealradar/dealradar/pkg/types"
)

const (
	defaultNotifyThreshold  = 75.0
	defaultOfferTTL         = 7 * 24 * time.Hour
	defaultCatalogScanLimit = 200

	// Persist-time price sanity bounds, in rupees.
	minPersistPrice = 10.0
	maxPersistPrice = 500_000.0
)

// Verifier corroborates a candidate deal against its official product
// page and decides whether the result is worth keeping.
type Verifier interface {
	Verify(ctx context.Context, deal *domain.CandidateDeal) *domain.VerificationResult
	ShouldPersist(res *domain.VerificationResult) bool
}

// Historian records price observations and derives analytics over them.
type Historian interface {
	RecordPrice(ctx context.Context, productKey string, price float64, mrp *float64, metadata map[string]string) error
	Insights(ctx context.Context, productKey string, currentPrice float64, claimedMRP *float64) (*domain.PriceInsight, error)
}

// Classifier assigns a category to a product title. Implementations
// must not fail: an undecidable title comes back as a fallback
// category.
type Classifier interface {
	Classify(ctx context.Context, title string) string
}

// keywordClassifier is the default Classifier, backed by the
// rule-based category table. A model-backed classifier can be
// injected with WithClassifier.
type keywordClassifier struct{}

func (keywordClassifier) Classify(_ context.Context, title string) string {
	return extract.Categorize(title)
}

// Engine orchestrates extraction, verification, history, scoring,
// persistence, and notification.
type Engine struct {
	store      store.Store
	verifier   Verifier
	history    Historian
	extractor  *extract.Extractor
	detector   *dedupe.Detector
	classifier Classifier
	notifier   notify.Notifier
	sources    []Source
	log        *slog.Logger
	now        func() time.Time

	notifyThreshold  float64
	offerTTL         time.Duration
	catalogScanLimit int
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	v Verifier,
	h Historian,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:            s,
		verifier:         v,
		history:          h,
		notifier:         n,
		extractor:        extract.New(),
		detector:         dedupe.New(),
		classifier:       keywordClassifier{},
		log:              logger.Discard(),
		now:              time.Now,
		notifyThreshold:  defaultNotifyThreshold,
		offerTTL:         defaultOfferTTL,
		catalogScanLimit: defaultCatalogScanLimit,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithExtractor sets the message extractor.
func WithExtractor(ex *extract.Extractor) EngineOption {
	return func(e *Engine) {
		e.extractor = ex
	}
}

// WithDetector sets the duplicate detector used for batch processing.
func WithDetector(d *dedupe.Detector) EngineOption {
	return func(e *Engine) {
		e.detector = d
	}
}

// WithClassifier replaces the keyword classifier, typically with a
// model-backed one.
func WithClassifier(c Classifier) EngineOption {
	return func(e *Engine) {
		e.classifier = c
	}
}

// WithSources registers the candidate sources swept by RunSweep.
func WithSources(srcs ...Source) EngineOption {
	return func(e *Engine) {
		e.sources = srcs
	}
}

// WithNotifyThreshold sets the minimum score for outbound alerts.
func WithNotifyThreshold(t float64) EngineOption {
	return func(e *Engine) {
		e.notifyThreshold = t
	}
}

// WithOfferTTL sets the default lifetime of a persisted deal.
func WithOfferTTL(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.offerTTL = d
	}
}

// WithCatalogScanLimit caps how many recent catalog titles the
// near-duplicate gate compares against.
func WithCatalogScanLimit(n int) EngineOption {
	return func(e *Engine) {
		e.catalogScanLimit = n
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// ProcessMessage runs one inbound promotional message through the full
// pipeline. Candidates without a usable product link are dropped
// silently; all other outcomes are reflected in metrics.
func (eng *Engine) ProcessMessage(ctx context.Context, msg domain.Message) error {
	metrics.MessagesProcessedTotal.Inc()

	candidate := eng.extractor.Extract(msg.Text)
	candidate.SourceChannel = msg.ChannelID
	metrics.CandidatesExtractedTotal.Inc()

	if !candidate.Persistable() {
		metrics.DealsDroppedTotal.WithLabelValues("no_link").Inc()
		eng.log.Debug("candidate has no product link, skipping",
			"channel", msg.ChannelID,
			"message_id", msg.MessageID,
		)
		return nil
	}

	_, err := eng.processCandidate(ctx, &candidate)
	if err != nil {
		metrics.MessageFailuresTotal.Inc()
	}
	return err
}

// Consume drains a message channel with a bounded worker pool,
// returning once the channel closes or the context is cancelled.
// Failures are isolated per message.
func (eng *Engine) Consume(ctx context.Context, msgs <-chan domain.Message, workers int) {
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case msg, ok := <-msgs:
					if !ok {
						return
					}
					if err := eng.ProcessMessage(ctx, msg); err != nil {
						eng.log.Error("message processing failed",
							"channel", msg.ChannelID,
							"message_id", msg.MessageID,
							"error", err,
						)
					}
				}
			}
		}()
	}
	wg.Wait()
}

// ProcessBatch deduplicates a batch of candidates, then runs each
// survivor through verification and persistence. It returns how many
// deals were persisted; per-candidate failures are aggregated, not
// fatal.
func (eng *Engine) ProcessBatch(ctx context.Context, candidates []domain.CandidateDeal) (int, error) {
	unique := eng.detector.Deduplicate(candidates, dedupe.StrategyBest)
	if skipped := len(candidates) - len(unique); skipped > 0 {
		metrics.DuplicatesSkippedTotal.Add(float64(skipped))
	}

	var (
		persisted int
		errs      []error
	)
	for i := range unique {
		if ctx.Err() != nil {
			return persisted, ctx.Err()
		}

		c := unique[i]
		if !c.Persistable() {
			metrics.DealsDroppedTotal.WithLabelValues("no_link").Inc()
			continue
		}

		ok, err := eng.processCandidate(ctx, &c)
		if err != nil {
			errs = append(errs, fmt.Errorf("candidate %q: %w", c.Title, err))
			continue
		}
		if ok {
			persisted++
		}
	}
	return persisted, errors.Join(errs...)
}

// processCandidate takes one persistable candidate through
// verification, history, scoring, the catalog gates, and notification.
// The bool reports whether a deal row was written.
func (eng *Engine) processCandidate(ctx context.Context, c *domain.CandidateDeal) (bool, error) {
	c.Normalize()

	res := eng.verifier.Verify(ctx, c)
	metrics.VerificationsTotal.WithLabelValues(string(res.Recommendation)).Inc()

	if !eng.verifier.ShouldPersist(res) {
		metrics.DealsDroppedTotal.WithLabelValues("low_confidence").Inc()
		eng.log.Info("dropping unverifiable candidate",
			"title", c.Title,
			"confidence", res.ConfidenceScore,
			"recommendation", res.Recommendation,
		)
		return false, nil
	}

	// Official fields win over promotional text wherever both exist.
	title := res.VerifiedTitle
	if title == "" {
		title = c.Title
	}
	price := res.VerifiedPrice
	if price == nil {
		price = c.DiscountPrice
	}
	mrp := res.VerifiedMRP
	if mrp == nil {
		mrp = c.MRP
	}

	if title == "" {
		metrics.DealsDroppedTotal.WithLabelValues("no_title").Inc()
		return false, nil
	}
	if price == nil {
		metrics.DealsDroppedTotal.WithLabelValues("no_price").Inc()
		return false, nil
	}
	if *price < minPersistPrice || *price > maxPersistPrice {
		metrics.DealsDroppedTotal.WithLabelValues("price_out_of_range").Inc()
		eng.log.Warn("dropping candidate with implausible price",
			"title", title,
			"price", *price,
		)
		return false, nil
	}

	productKey := extract.ProductKey(c.Link)

	if err := eng.history.RecordPrice(ctx, productKey, *price, mrp, map[string]string{
		"store":   string(c.Store),
		"channel": c.SourceChannel,
	}); err != nil {
		eng.log.Warn("recording price failed", "product_key", productKey, "error", err)
	}

	insights, err := eng.history.Insights(ctx, productKey, *price, mrp)
	if err != nil {
		eng.log.Warn("price insights unavailable", "product_key", productKey, "error", err)
		insights = nil
	}

	// Re-categorize with the verified title, which is usually cleaner
	// than the promotional one.
	category := eng.classifier.Classify(ctx, title)

	result := scorer.Score(scorer.DealData{
		DiscountPercent: discountPercent(res, c, price, mrp),
		Rating:          pickRating(res, c),
		ReviewCount:     pickReviews(res, c),
		DealType:        c.DealType,
		SellerType:      sellerType(res, c),
		StockStatus:     stockStatus(res, c),
	}, insights)
	metrics.ScoringDistribution.Observe(result.Total)

	refresh, err := eng.catalogGate(ctx, c, title)
	if err != nil {
		return false, err
	}
	if !refresh.allowed {
		return false, nil
	}

	deal := &domain.Deal{
		Title:               title,
		Store:               c.Store,
		VerifiedMRP:         mrp,
		VerifiedPrice:       *price,
		VerifiedDiscount:    discountPtr(res, c, price, mrp),
		Link:                c.Link,
		Rating:              pickRating(res, c),
		Category:            category,
		SellerName:          res.SellerName,
		SellerRating:        res.SellerRating,
		FulfilledByPlatform: res.FulfilledByPlatform,
		Score:               result.Total,
		Grade:               result.Grade,
		ConfidenceScore:     res.ConfidenceScore,
		SourceChannel:       c.SourceChannel,
		ImageURL:            res.ImageURL,
		OfferEndsAt:         eng.now().Add(eng.offerTTL),
	}

	if err := eng.store.InsertDeal(ctx, deal); err != nil {
		return false, fmt.Errorf("persisting deal: %w", err)
	}
	metrics.DealsPersistedTotal.Inc()

	eng.log.Info("deal persisted",
		"title", deal.Title,
		"store", deal.Store,
		"price", deal.VerifiedPrice,
		"score", deal.Score,
		"grade", deal.Grade,
		"refreshed", refresh.existing,
	)

	if deal.Score >= eng.notifyThreshold {
		eng.sendAlert(ctx, deal)
	}
	return true, nil
}

// gateResult reports whether the catalog accepts a candidate and
// whether it matched an existing row by link.
type gateResult struct {
	allowed  bool
	existing bool
}

// catalogGate decides whether a verified candidate may enter the
// catalog. A link already present is a refresh and bypasses the title
// gate; a new link is compared against recent same-store titles to
// reject near-duplicate listings of the same product.
func (eng *Engine) catalogGate(ctx context.Context, c *domain.CandidateDeal, title string) (gateResult, error) {
	_, err := eng.store.GetDealByLink(ctx, c.Link)
	switch {
	case err == nil:
		return gateResult{allowed: true, existing: true}, nil
	case errors.Is(err, store.ErrNotFound):
		// Fall through to the title gate.
	default:
		return gateResult{}, fmt.Errorf("looking up deal by link: %w", err)
	}

	titles, err := eng.store.ListDealTitles(ctx, string(c.Store), eng.catalogScanLimit)
	if err != nil {
		// The gate is best-effort: a scan failure must not block a
		// verified deal.
		eng.log.Warn("catalog title scan failed", "store", c.Store, "error", err)
		return gateResult{allowed: true}, nil
	}

	for _, existing := range titles {
		if dedupe.SimilarCoreTitles(title, existing) {
			metrics.DuplicatesSkippedTotal.Inc()
			metrics.DealsDroppedTotal.WithLabelValues("near_duplicate").Inc()
			eng.log.Info("near-duplicate of catalog deal, skipping",
				"title", title,
				"existing", existing,
			)
			return gateResult{}, nil
		}
	}
	return gateResult{allowed: true}, nil
}

func (eng *Engine) sendAlert(ctx context.Context, deal *domain.Deal) {
	payload := notify.PayloadFromDeal(deal)
	if err := eng.notifier.SendDeal(ctx, &payload); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		eng.log.Error("deal notification failed", "title", deal.Title, "error", err)
		return
	}
	metrics.NotificationsSentTotal.Inc()
}

// discountPercent resolves the effective discount for scoring:
// verified first, then the claimed percent, then derived from the
// price pair.
func discountPercent(res *domain.VerificationResult, c *domain.CandidateDeal, price, mrp *float64) float64 {
	if p := discountPtr(res, c, price, mrp); p != nil {
		return *p
	}
	return 0
}

func discountPtr(res *domain.VerificationResult, c *domain.CandidateDeal, price, mrp *float64) *float64 {
	if res.VerifiedDiscount != nil {
		return res.VerifiedDiscount
	}
	if c.DiscountPercent != nil {
		return c.DiscountPercent
	}
	if mrp != nil && price != nil && *mrp > *price && *mrp > 0 {
		pct := (*mrp - *price) / *mrp * 100
		return &pct
	}
	return nil
}

func pickRating(res *domain.VerificationResult, c *domain.CandidateDeal) float64 {
	if res.Rating > 0 {
		return res.Rating
	}
	return c.Rating
}

func pickReviews(res *domain.VerificationResult, c *domain.CandidateDeal) int {
	if res.ReviewCount > 0 {
		return res.ReviewCount
	}
	return c.ReviewCount
}

func sellerType(res *domain.VerificationResult, c *domain.CandidateDeal) string {
	if res.FulfilledByPlatform {
		return "fulfilled_by_platform"
	}
	if c.SellerType != "" {
		return c.SellerType
	}
	return res.SellerName
}

func stockStatus(res *domain.VerificationResult, c *domain.CandidateDeal) string {
	if res.Availability != "" {
		return res.Availability
	}
	return c.StockStatus
}
