package dedupe

import (
	"regexp"
	"strings"

	"github.com/dealradar/dealradar/pkg/extract"
)

// nonWordRegex matches everything outside word characters and spaces.
var nonWordRegex = regexp.MustCompile(`[^\w\s]`)

// stopwords removed before title comparison.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {},
}

// NormalizeTitle lowercases a title, strips punctuation and stopwords
// and collapses whitespace, making fuzzy comparisons insensitive to
// formatting noise.
func NormalizeTitle(title string) string {
	if title == "" {
		return ""
	}
	t := strings.ToLower(title)
	t = nonWordRegex.ReplaceAllString(t, " ")

	var kept []string
	for _, w := range strings.Fields(t) {
		if _, stop := stopwords[w]; !stop {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// TitleSimilarity measures how alike two titles are as the
// longest-common-subsequence ratio of their normalized forms:
// 2*lcs / (len(a)+len(b)), in [0,1].
func TitleSimilarity(a, b string) float64 {
	na, nb := NormalizeTitle(a), NormalizeTitle(b)
	if na == "" || nb == "" {
		return 0
	}
	ra, rb := []rune(na), []rune(nb)
	lcs := lcsLength(ra, rb)
	return 2 * float64(lcs) / float64(len(ra)+len(rb))
}

// lcsLength computes the longest common subsequence length with a
// two-row DP, O(len(a)*len(b)) time and O(len(b)) space.
func lcsLength(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// PricesClose reports whether two prices differ by no more than
// tolerance (a fraction) of their average. Zero prices never match.
func PricesClose(a, b, tolerance float64) bool {
	if a <= 0 || b <= 0 {
		return false
	}
	avg := (a + b) / 2
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff/avg <= tolerance
}

// CoreTitle reduces a title to its comparison core: everything before
// the first parenthesis, lowercased, capped at 50 characters. Pack
// sizes and variant notes almost always live in the parentheses.
func CoreTitle(title string) string {
	core := title
	if i := strings.IndexByte(core, '('); i >= 0 {
		core = core[:i]
	}
	core = strings.ToLower(strings.TrimSpace(core))
	if len(core) > 50 {
		core = core[:50]
	}
	return core
}

// SimilarCoreTitles implements the catalog-level near-duplicate check:
// two titles collide when one core contains the other, both are
// substantial, and their lengths agree within 80%. Catches the same
// product re-posted under a different affiliate link.
func SimilarCoreTitles(a, b string) bool {
	ca, cb := CoreTitle(a), CoreTitle(b)
	if len(ca) <= 10 || len(cb) <= 10 {
		return false
	}
	if !strings.Contains(ca, cb) && !strings.Contains(cb, ca) {
		return false
	}
	shorter, longer := len(ca), len(cb)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	return float64(shorter)/float64(longer) > 0.8
}

// CanonicalURL re-exports the URL canonicalization used for product
// identity so callers inside the resolver don't import pkg/extract
// everywhere.
func CanonicalURL(raw string) string {
	return extract.CanonicalURL(raw)
}
