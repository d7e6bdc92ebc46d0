// Package fetch resolves promotional short links to canonical product
// URLs and retrieves official product pages from merchant sites. The
// resolver follows HTTP redirects and unwraps affiliate redirect pages;
// the scraper pulls title, prices, availability, and seller fields out
// of the product page HTML.
package fetch

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	domain "github.com/dealradar/dealradar/pkg/types"
)

// Fetcher retrieves the official product page behind a resolved URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*domain.ProductPage, error)
}

// userAgent is sent on every outbound request. Merchant sites serve a
// stripped-down page (or none at all) to unidentified clients.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// amountRegex matches the first currency amount in a price string,
// e.g. "₹1,499.00" or "Rs. 999".
var amountRegex = regexp.MustCompile(`[\d,]+(?:\.\d+)?`)

// parsePrice pulls a float out of merchant price text. Returns nil for
// text without a usable amount.
func parsePrice(text string) *float64 {
	m := amountRegex.FindString(text)
	if m == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
	if err != nil || v <= 0 {
		return nil
	}
	return &v
}
