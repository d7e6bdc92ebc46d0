package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/dealradar/dealradar/pkg/logger"
)

// ErrNotProductPage is returned when a link resolves to a search,
// category, or collection page instead of a single product.
var ErrNotProductPage = errors.New("not a single product page")

// shortLinkDomains are known URL shorteners used by promotional
// channels. A link on one of these hosts must be expanded before the
// product URL can be canonicalized.
var shortLinkDomains = []string{
	"amzn.to",
	"amzn-to.co",
	"amzn.in",
	"fkrt.it",
	"fkrt.co",
	"fkrt.cc",
	"bit.ly",
	"bitli.in",
	"tinyurl.com",
	"goo.gl",
	"ow.ly",
	"t.co",
	"rb.gy",
	"cutt.ly",
	"s.click.aliexpress.com",
	"dl.flipkart.com",
	"indfs.in",
	"msho.in",
	"myntr.it",
	"myntr.in",
	"ajiio.in",
	"ajiio.co",
	"extp.in",
}

// redirectPageHosts serve an affiliate redirect page that carries the
// real destination in a query parameter rather than an HTTP redirect.
var redirectPageHosts = []string{
	"linkredirect.in",
	"indiafreestuff.in",
	"indfs.in",
	"redirect",
}

// redirectParams are the query parameter names affiliate redirect pages
// hide the destination URL behind, in lookup order.
var redirectParams = []string{"dl", "url", "redirect", "target", "link", "destination", "to"}

// asinPathRegex extracts the Amazon product ID from a resolved path,
// e.g. "/boat-airdopes/dp/B08XYZ1234/ref=xyz" yields "B08XYZ1234".
var asinPathRegex = regexp.MustCompile(`(?i)/(?:dp|gp/product)/([A-Z0-9]{10})`)

const (
	maxResolveDepth = 3
	resolveTimeout  = 20 * time.Second
)

// IsShortLink reports whether the URL points at a known shortener.
func IsShortLink(raw string) bool {
	u, err := url.Parse(withScheme(raw))
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Host)
	for _, d := range shortLinkDomains {
		if strings.Contains(host, d) {
			return true
		}
	}
	return false
}

// Resolver expands shortened links into canonical product URLs.
type Resolver struct {
	client *http.Client
	log    *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithHTTPClient overrides the HTTP client, for tests.
func WithHTTPClient(c *http.Client) ResolverOption {
	return func(r *Resolver) { r.client = c }
}

// WithResolverLogger sets the logger used for resolution diagnostics.
func WithResolverLogger(log *slog.Logger) ResolverOption {
	return func(r *Resolver) { r.log = log }
}

// NewResolver creates a Resolver. The default client follows redirects
// with a 20-second overall timeout.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		client: &http.Client{Timeout: resolveTimeout},
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve follows a promotional link to its final product URL: HTTP
// redirects first, then affiliate redirect-page query parameters.
// Search and category destinations fail with ErrNotProductPage;
// Amazon and Flipkart URLs come back stripped of tracking parameters.
func (r *Resolver) Resolve(ctx context.Context, raw string) (string, error) {
	return r.resolve(ctx, raw, 0)
}

func (r *Resolver) resolve(ctx context.Context, raw string, depth int) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", errors.New("empty link")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, withScheme(raw), nil)
	if err != nil {
		return "", fmt.Errorf("building resolve request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", raw, err)
	}
	resp.Body.Close()

	final := resp.Request.URL
	host := strings.ToLower(final.Host)

	// Affiliate redirect pages carry the destination in a query
	// parameter instead of answering with a Location header.
	if isRedirectPageHost(host) && depth < maxResolveDepth {
		for _, param := range redirectParams {
			if target := final.Query().Get(param); target != "" {
				if unescaped, err := url.QueryUnescape(target); err == nil {
					target = unescaped
				}
				r.log.Debug("unwrapping redirect page",
					"host", host,
					"param", param,
				)
				return r.resolve(ctx, target, depth+1)
			}
		}
	}

	if err := validateProductURL(final); err != nil {
		return "", err
	}

	cleaned := cleanProductURL(final)
	r.log.Debug("resolved link", "raw", raw, "resolved", cleaned)
	return cleaned, nil
}

func isRedirectPageHost(host string) bool {
	for _, d := range redirectPageHosts {
		if strings.Contains(host, d) {
			return true
		}
	}
	return false
}

// validateProductURL rejects destinations that list many products.
// Saving a search page as a deal poisons the catalog with a bogus
// title and price.
func validateProductURL(u *url.URL) error {
	host := strings.ToLower(u.Host)
	full := u.String()

	switch {
	case strings.Contains(host, "myntra.com"):
		if !containsAnyOf(full, "/buy/", "/-/", "/p/") &&
			containsAnyOf(full, "?", "rf=", "sort=", "filter", "/shop/", "category") {
			return fmt.Errorf("%w: myntra category or search page", ErrNotProductPage)
		}
	case strings.Contains(host, "amazon"):
		if strings.Contains(full, "/s?") || strings.Contains(full, "/s/") {
			return fmt.Errorf("%w: amazon search results page", ErrNotProductPage)
		}
	case strings.Contains(host, "flipkart.com"):
		if containsAnyOf(full, "/search?", "q=", "/category/", "/~cs-", "/pr?", "collection") ||
			strings.HasSuffix(strings.TrimRight(u.Path, "/"), "/pr") {
			return fmt.Errorf("%w: flipkart search or category page", ErrNotProductPage)
		}
	case strings.Contains(host, "shopsy.in"):
		if containsAnyOf(full, "/search?", "q=", "/category/") ||
			((strings.Contains(full, "/pr?") || strings.Contains(full, "~cs-")) &&
				containsAnyOf(full, "collection-tab-name", "pageCriteria")) {
			return fmt.Errorf("%w: shopsy search or collection page", ErrNotProductPage)
		}
	}
	return nil
}

// cleanProductURL strips tracking parameters from known merchants.
// Amazon collapses to /dp/ASIN; Flipkart keeps only the pid parameter.
func cleanProductURL(u *url.URL) string {
	host := strings.ToLower(u.Host)

	switch {
	case strings.Contains(host, "amazon"):
		if m := asinPathRegex.FindStringSubmatch(u.Path); m != nil {
			return fmt.Sprintf("https://%s/dp/%s", u.Host, m[1])
		}
	case strings.Contains(host, "flipkart"):
		clean := fmt.Sprintf("%s://%s%s", u.Scheme, u.Host, u.Path)
		if pid := u.Query().Get("pid"); pid != "" {
			clean += "?pid=" + pid
		}
		return clean
	}
	return u.String()
}

func withScheme(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}

func containsAnyOf(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
