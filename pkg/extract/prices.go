package extract

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Valid price bounds in rupees. Anything outside is treated as noise
// (phone numbers, pin codes, order counts).
const (
	MinValidPrice = 10
	MaxValidPrice = 500000
)

// percentRegex matches discount percentages like "67% Off" or "33 %".
// The captured value is validated to 1-99 before use.
var percentRegex = regexp.MustCompile(`(?i)(\d+)\s*%\s*(?:off|discount)?`)

// discountPriceRegexes match explicit selling-price phrases, most
// specific first. Examples: "at Rs.664", "starting from ₹999",
// "deal: Rs 1299", "now ₹499".
var discountPriceRegexes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:at|@|for|just|only)\s+(?:Rs\.?\s*|₹\s*)(\d{2,6})\b`),
	regexp.MustCompile(`(?i)(?:starting\s+from|starts\s+at)\s+(?:Rs\.?\s*|₹\s*)(\d{2,6})\b`),
	regexp.MustCompile(`(?i)(?:price|deal|offer)\s*:?\s*(?:Rs\.?\s*|₹\s*)(\d{2,6})\b`),
	regexp.MustCompile(`(?i)(?:now|today)\s+(?:Rs\.?\s*|₹\s*)(\d{2,6})\b`),
}

// mrpRegexes match explicit original-price phrases.
// Examples: "MRP: Rs.1299", "was Rs.1999", "worth ₹2999".
var mrpRegexes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:MRP|M\.R\.P\.?)\s*:?\s*(?:Rs\.?\s*|₹\s*)(\d{2,6})\b`),
	regexp.MustCompile(`(?i)(?:original\s+price|was|worth)\s*:?\s*(?:Rs\.?\s*|₹\s*)(\d{2,6})\b`),
}

// currencyPriceRegex is the fallback: any currency-prefixed number.
var currencyPriceRegex = regexp.MustCompile(`(?i)(?:Rs\.?\s*|₹\s*)(\d{2,6})\b`)

// Prices holds the price fields extracted from one message. Any of the
// three may be absent.
type Prices struct {
	MRP             *float64
	DiscountPrice   *float64
	DiscountPercent *float64
}

// ExtractPrices pulls MRP, discount price and discount percentage out of
// promotional text. Patterns run in strict priority order: percentage,
// explicit discount-price phrases, explicit MRP phrases, then a
// currency-number fallback. Results are reconciled so that MRP is always
// strictly greater than the discount price, and a missing member of the
// {price, mrp, percent} triple is derived from the other two when the
// arithmetic is plausible.
func ExtractPrices(text string) Prices {
	var p Prices

	// Commas break digit grouping in every pattern below.
	text = strings.ReplaceAll(text, ",", "")

	if m := percentRegex.FindStringSubmatch(text); m != nil {
		if pct, err := strconv.Atoi(m[1]); err == nil && pct >= 1 && pct <= 99 {
			p.DiscountPercent = floatPtr(float64(pct))
		}
	}

	for _, re := range discountPriceRegexes {
		if v, ok := matchPrice(re, text); ok {
			p.DiscountPrice = floatPtr(v)
			break
		}
	}

	for _, re := range mrpRegexes {
		if v, ok := matchPrice(re, text); ok {
			p.MRP = floatPtr(v)
			break
		}
	}

	if p.DiscountPrice == nil {
		p.fromCurrencyFallback(text)
	}

	p.reconcile()
	p.derive()
	return p
}

// fromCurrencyFallback collects every currency-prefixed number in the
// valid range. A single value is the discount price; with two or more,
// the minimum is the discount price and the maximum becomes the MRP only
// when it exceeds the minimum by at least 10%.
func (p *Prices) fromCurrencyFallback(text string) {
	matches := currencyPriceRegex.FindAllStringSubmatch(text, -1)
	if matches == nil {
		return
	}

	seen := make(map[float64]struct{})
	var valid []float64
	for _, m := range matches {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil || v < MinValidPrice || v > MaxValidPrice {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		valid = append(valid, v)
	}
	if len(valid) == 0 {
		return
	}
	sort.Float64s(valid)

	p.DiscountPrice = floatPtr(valid[0])
	if len(valid) >= 2 {
		lo, hi := valid[0], valid[len(valid)-1]
		if hi > lo*1.1 {
			p.MRP = floatPtr(hi)
		}
	}
}

// reconcile enforces MRP > discount price. An MRP at or below the
// selling price carries no discount information and is dropped.
func (p *Prices) reconcile() {
	if p.MRP == nil || p.DiscountPrice == nil {
		return
	}
	if *p.MRP <= *p.DiscountPrice {
		p.MRP = nil
	}
}

// derive backfills the missing member of the price triple. The percent
// is derived whenever both prices exist; the MRP is derived only for
// percentages between 10 and 90, where the division is numerically
// trustworthy.
func (p *Prices) derive() {
	if p.MRP != nil && p.DiscountPrice != nil && p.DiscountPercent == nil {
		if *p.MRP > *p.DiscountPrice {
			pct := (*p.MRP - *p.DiscountPrice) / *p.MRP * 100
			p.DiscountPercent = floatPtr(math.Round(pct))
		}
	}

	if p.MRP == nil && p.DiscountPrice != nil && p.DiscountPercent != nil {
		pct := *p.DiscountPercent
		if pct >= 10 && pct <= 90 {
			mrp := math.Round(*p.DiscountPrice / (1 - pct/100))
			if mrp <= MaxValidPrice {
				p.MRP = floatPtr(mrp)
			}
		}
	}
}

// matchPrice applies one pattern and validates the captured value.
func matchPrice(re *regexp.Regexp, text string) (float64, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil || v < MinValidPrice || v > MaxValidPrice {
		return 0, false
	}
	return v, true
}

func floatPtr(v float64) *float64 { return &v }
