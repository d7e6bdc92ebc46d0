// Package dedupe collapses duplicate deals arriving from different
// channels and platforms. Identity is decided by canonical product
// URLs first and fuzzy title/price matching second; resolution keeps a
// single representative per group according to a caller-chosen
// strategy.
package dedupe

import (
	"fmt"
	"hash/fnv"
	"log/slog"

	"github.com/dealradar/dealradar/pkg/logger"
	domain "github.com/dealradar/dealradar/pkg/types"
)

// Strategy selects which member of a duplicate group survives.
type Strategy string

// Resolution strategies.
const (
	// StrategyBest keeps the lowest effective price, score-tie-broken.
	StrategyBest Strategy = "best"
	// StrategyFirst keeps the earliest member by input order.
	StrategyFirst Strategy = "first"
	// StrategyMerge collapses the group into one record carrying the
	// source list, duplicate count and price range.
	StrategyMerge Strategy = "merge"
)

// Default similarity bars. The same-store bar is looser because the
// store already narrows the match space.
const (
	DefaultThreshold   = 0.85
	sameStoreThreshold = 0.75
	priceTolerance     = 0.05
)

// Group is one set of deals judged to be the same product. Transient:
// it exists only for the duration of one deduplication pass.
type Group struct {
	Key     string
	Members []domain.CandidateDeal
}

// Detector finds and resolves duplicate deals within a batch.
type Detector struct {
	threshold float64
	log       *slog.Logger
}

// Option configures a Detector.
type Option func(*Detector)

// WithThreshold overrides the title similarity threshold.
func WithThreshold(t float64) Option {
	return func(d *Detector) { d.threshold = t }
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(d *Detector) { d.log = log }
}

// New creates a Detector with the default similarity threshold.
func New(opts ...Option) *Detector {
	d := &Detector{
		threshold: DefaultThreshold,
		log:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// IsDuplicate reports whether two deals describe the same product and
// why. The checks run in order: canonical URL equality, title
// similarity with close prices, then same store with a looser title
// bar. The relation is symmetric.
func (d *Detector) IsDuplicate(a, b domain.CandidateDeal) (bool, string) {
	urlA, urlB := CanonicalURL(a.Link), CanonicalURL(b.Link)
	if urlA != "" && urlA == urlB {
		return true, "exact URL match"
	}

	sim := TitleSimilarity(a.Title, b.Title)
	if sim >= d.threshold {
		if PricesClose(a.EffectivePrice(), b.EffectivePrice(), priceTolerance) {
			return true, fmt.Sprintf("title similarity %.2f with similar price", sim)
		}
	}

	if a.Store != domain.StoreOther && a.Store == b.Store && sim >= sameStoreThreshold {
		return true, fmt.Sprintf("same store, title similarity %.2f", sim)
	}

	return false, ""
}

// FindDuplicates groups duplicates within a batch. Grouping is
// single-pass greedy: each not-yet-grouped deal absorbs every later
// matching deal. O(n²) comparisons, fine for the tens-to-hundreds
// batches this runs on. Only groups with two or more members are
// returned.
func (d *Detector) FindDuplicates(deals []domain.CandidateDeal) []Group {
	var groups []Group
	taken := make([]bool, len(deals))

	for i := range deals {
		if taken[i] {
			continue
		}
		group := Group{
			Key:     groupKey(deals[i]),
			Members: []domain.CandidateDeal{deals[i]},
		}
		for j := i + 1; j < len(deals); j++ {
			if taken[j] {
				continue
			}
			if dup, reason := d.IsDuplicate(deals[i], deals[j]); dup {
				d.log.Debug("duplicate deal",
					"kept", deals[i].Title, "dropped", deals[j].Title, "reason", reason)
				group.Members = append(group.Members, deals[j])
				taken[j] = true
			}
		}
		taken[i] = true
		if len(group.Members) > 1 {
			groups = append(groups, group)
		}
	}
	return groups
}

// Deduplicate returns the batch with duplicate groups collapsed to one
// representative each. The result never grows and keeps input order.
func (d *Detector) Deduplicate(deals []domain.CandidateDeal, strategy Strategy) []domain.CandidateDeal {
	groups := d.FindDuplicates(deals)
	if len(groups) == 0 {
		out := make([]domain.CandidateDeal, len(deals))
		copy(out, deals)
		return out
	}

	// Map each group member back to its batch index so survivors keep
	// input order.
	drop := make(map[int]bool)
	replace := make(map[int]domain.CandidateDeal)

	for _, g := range groups {
		indices := memberIndices(deals, g.Members)

		switch strategy {
		case StrategyFirst:
			for _, idx := range indices[1:] {
				drop[idx] = true
			}
		case StrategyMerge:
			replace[indices[0]] = mergeGroup(g.Members)
			for _, idx := range indices[1:] {
				drop[idx] = true
			}
		default: // StrategyBest
			best := bestIndex(deals, indices)
			for _, idx := range indices {
				if idx != best {
					drop[idx] = true
				}
			}
		}
	}

	out := make([]domain.CandidateDeal, 0, len(deals))
	for i, deal := range deals {
		if drop[i] {
			continue
		}
		if merged, ok := replace[i]; ok {
			deal = merged
		}
		out = append(out, deal)
	}
	return out
}

// bestIndex picks the group member with the lowest effective price.
// Deals without a price sort last. Equal prices keep the earlier deal:
// candidates carry no quality score at this stage (scoring happens
// after resolution), so input order is the only tiebreak available.
func bestIndex(deals []domain.CandidateDeal, indices []int) int {
	best := indices[0]
	for _, idx := range indices[1:] {
		if cheaper(deals[idx], deals[best]) {
			best = idx
		}
	}
	return best
}

func cheaper(a, b domain.CandidateDeal) bool {
	pa, pb := a.EffectivePrice(), b.EffectivePrice()
	switch {
	case pa <= 0:
		return false
	case pb <= 0:
		return true
	default:
		return pa < pb
	}
}

// mergeGroup collapses a duplicate group into its first member,
// annotated with every source channel, the member count and the
// observed price spread.
func mergeGroup(members []domain.CandidateDeal) domain.CandidateDeal {
	merged := members[0]

	seen := make(map[string]struct{})
	for _, m := range members {
		src := m.SourceChannel
		if src == "" {
			src = "unknown"
		}
		if _, dup := seen[src]; !dup {
			seen[src] = struct{}{}
			merged.Sources = append(merged.Sources, src)
		}
	}
	merged.DuplicateCount = len(members)

	var prices []float64
	for _, m := range members {
		if p := m.EffectivePrice(); p > 0 {
			prices = append(prices, p)
		}
	}
	if len(prices) > 0 {
		pr := domain.PriceRange{Min: prices[0], Max: prices[0]}
		for _, p := range prices[1:] {
			if p < pr.Min {
				pr.Min = p
			}
			if p > pr.Max {
				pr.Max = p
			}
		}
		merged.PriceRange = &pr
		merged.DiscountPrice = &pr.Min
	}
	return merged
}

func memberIndices(deals []domain.CandidateDeal, members []domain.CandidateDeal) []int {
	indices := make([]int, 0, len(members))
	used := make(map[int]bool)
	for _, m := range members {
		for i := range deals {
			if used[i] {
				continue
			}
			if deals[i].Link == m.Link && deals[i].Title == m.Title && deals[i].SourceChannel == m.SourceChannel {
				indices = append(indices, i)
				used[i] = true
				break
			}
		}
	}
	return indices
}

// groupKey derives a stable short identifier for a duplicate group from
// the representative's canonical URL and normalized title.
func groupKey(deal domain.CandidateDeal) string {
	h := fnv.New64a()
	h.Write([]byte(CanonicalURL(deal.Link)))
	h.Write([]byte{0})
	h.Write([]byte(NormalizeTitle(deal.Title)))
	return fmt.Sprintf("%016x", h.Sum64())
}
