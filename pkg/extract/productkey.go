package extract

import (
	"net/url"
	"regexp"
	"strings"
)

// Store-specific product ID patterns.
var (
	// asinRegex captures the Amazon Standard Identification Number.
	// Examples: "/dp/B0CHX1W1XY", "/gp/product/B0CHX1W1XY".
	asinRegex = regexp.MustCompile(`(?i)/(?:dp|gp/product)/([A-Z0-9]{10})`)

	// flipkartItemRegex captures Flipkart item IDs from product paths.
	// Example: "/boat-airdopes/p/itm2f78a1e7d".
	flipkartItemRegex = regexp.MustCompile(`(?i)/p/(itm[a-z0-9]+)`)

	// myntraItemRegex captures the numeric ID at the end of Myntra paths.
	// Example: "/nike/air-max/12345".
	myntraItemRegex = regexp.MustCompile(`/(\d+)/?$`)
)

// CanonicalURL reduces a product URL to a store-specific canonical
// identity, discarding hosts' casing, affiliate query strings and
// tracking path segments. Two URLs for the same product canonicalize
// to the same string. Unknown stores fall back to host plus path.
func CanonicalURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(strings.ToLower(raw))
	if err != nil {
		return strings.ToLower(raw)
	}

	host := u.Hostname()
	switch {
	case strings.Contains(host, "amazon"):
		if m := asinRegex.FindStringSubmatch(u.Path); m != nil {
			return "amazon.in/dp/" + strings.ToUpper(m[1])
		}
	case strings.Contains(host, "flipkart"):
		if m := flipkartItemRegex.FindStringSubmatch(u.Path); m != nil {
			return "flipkart.com/p/" + m[1]
		}
		if pid := u.Query().Get("pid"); pid != "" {
			return "flipkart.com/pid/" + pid
		}
	case strings.Contains(host, "myntra"):
		if m := myntraItemRegex.FindStringSubmatch(u.Path); m != nil {
			return "myntra.com/" + m[1]
		}
	}

	return host + strings.TrimSuffix(u.Path, "/")
}

// ProductKey derives the identity used for price-history grouping and
// catalog dedup. It is the canonical URL; kept as a separate name so
// callers state intent.
func ProductKey(rawURL string) string {
	return CanonicalURL(rawURL)
}
