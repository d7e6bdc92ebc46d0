package extract

import (
	"regexp"
	"strings"
)

// TitleSentinel is returned when no usable product title can be found.
// Downstream stages treat it as "title unknown".
const TitleSentinel = "Product"

const maxTitleLen = 80

// skipLineRegexes reject lines that are calls to action or channel
// chatter rather than product descriptions.
var skipLineRegexes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(buy now|click|link|join|subscribe|available only|don't miss)`),
	regexp.MustCompile(`(?i)^get\s+\d+`),
	regexp.MustCompile(`(?i)^(good\s+rating|rating|review)s?$`),
	// Full-line announcements like "Amazon Lightning Deal!" or "MYNTRA SALE".
	regexp.MustCompile(`(?i)^[\w\s]*(?:deal|sale|offer|loot)s?\s*[!:]*$`),
}

// fillerWords mark non-English instruction lines that never name a
// product.
var fillerWords = []string{"lelo", "krne", "hoga", "krdena", "auto-charged"}

// titleStripRegexes remove promotional framing from a product line, in
// order. Examples of what each strips:
//
//	"AJIO Loot : "                  (store/discount preamble)
//	"58% Off - "                    (leading percentage)
//	"[Many Options]"                (bracketed annotations)
//	"Upto 80% Off On "              (leading upto clause)
//	" upto 60% off"                 (mid-sentence upto clause)
//	" starting from Rs.650"         (trailing price clause)
//	" apply ₹50 off coupon ..."     (coupon instructions)
//	" @ flipkart"                   (store mentions)
//	" at ₹2699 (MRP ...) ..."       (price clause and everything after)
//	"free trial ..."                (service promotions)
var titleStripRegexes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^.*?(?:loot|deal|offer|sale)\s*:\s*(?:flat\s+\d+%\s+off\s+on\s+)?`),
	regexp.MustCompile(`(?i)^⚡?\d+%?\s+off\s*[-:]?\s*`),
	regexp.MustCompile(`(?i)\[many options\]`),
	regexp.MustCompile(`\[[^\]]{1,30}\]`),
	regexp.MustCompile(`(?i)^upto\s+\d+%\s+off\s+on\s+`),
	regexp.MustCompile(`(?i)\s+upto\s+\d+%?\s+off\b`),
	regexp.MustCompile(`(?i)\s+starting\s+from\b.*$`),
	regexp.MustCompile(`(?i)\s*apply\s+₹?\d+%?\s+off\s+coupon.*$`),
	regexp.MustCompile(`(?i)\s*@\s*\w+.*$`),
	regexp.MustCompile(`(?i)\s+at\s+(?:₹|Rs\.?)\s*\d+.*$`),
	regexp.MustCompile(`\s*\.\s*$`),
	regexp.MustCompile(`(?i)\bfree trial\b.*`),
	regexp.MustCompile(`https?://\S+`),
}

// genderSectionRegex finds the start of a gender-specific sub-listing in
// multi-product roundup lines ("Men's : ... Women's : ...").
var genderSectionRegex = regexp.MustCompile(`(?i)(?:men'?s?|women'?s?|boy'?s?|girl'?s?|kid'?s?)\s*:`)

// genericTitles are exact phrases that look like titles but carry no
// product information.
var genericTitles = map[string]struct{}{
	"product": {}, "item": {}, "deal": {}, "offer": {}, "sale": {}, "buy": {},
	"good rating": {}, "buy now": {}, "big bold sale": {}, "biggest sale": {},
	"all branded product": {}, "many options": {}, "hot deal": {}, "best deal": {},
	"super sale": {}, "mega sale": {}, "flash sale": {}, "special offer": {},
	"limited offer": {}, "exclusive deal": {}, "top deal": {}, "amazing deal": {},
	"great offer": {}, "best offer": {}, "discount": {}, "coupon": {},
	"shopping": {}, "online shopping": {}, "shop now": {}, "order now": {},
	"clothing starts": {}, "products": {}, "items": {}, "options available": {},
	"deals starts": {}, "offer starts": {}, "sale starts": {}, "new arrival": {},
	"new arrivals": {}, "latest deals": {}, "trending": {}, "best price": {},
	"lowest price": {}, "special price": {}, "exclusive": {}, "limited time": {},
}

// genericTitleRegexes catch generic phrases the exact-match list misses.
var genericTitleRegexes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(options?|deals?|offers?|sales?|items?|products?)\s+(available|here|now)$`),
	regexp.MustCompile(`(?i)^(shop|buy|order|get|grab)\s+(now|here|today)$`),
	regexp.MustCompile(`(?i)^(hot|best|top|super|mega|flash)\s+(deal|offer|sale)s?$`),
	regexp.MustCompile(`(?i)^\d+\s*%?\s*(off|discount)$`),
	regexp.MustCompile(`(?i)^(all|many|various|multiple|different)\s+(options?|items?|products?)`),
}

// promoKeywords indicate the line is channel promotion. Two or more
// hits disqualify a candidate title.
var promoKeywords = []string{
	"big bold", "biggest", "don't miss", "scroll down", "all loots",
	"branded product", "only at", "price", "options", "available",
}

// singleWordProducts are one-word titles specific enough to keep.
var singleWordProducts = map[string]struct{}{
	"jeans": {}, "shirt": {}, "watch": {}, "phone": {}, "laptop": {},
}

// ratingCountRegex matches lines like "172 Good Rating" that are review
// counts rather than products.
var ratingCountRegex = regexp.MustCompile(`^\d+\s+\w+(\s+\w+)?$`)

// urlOnlyRegex spots messages that are nothing but a link.
var urlOnlyRegex = regexp.MustCompile(`^https?://`)

// countedGoods whitelist number-led titles that really are products
// ("2 Pack Cotton Shirts").
var countedGoods = []string{"pack", "shirt", "jeans", "pcs", "pieces"}

// ExtractTitle pulls a product title out of raw promotional text.
// It picks the first line that looks like a product description, strips
// promotional framing, then rejects results that are too short or too
// generic. Multi-product lines deliberately yield only the first
// product. Returns TitleSentinel when nothing usable remains.
func ExtractTitle(raw string) string {
	if urlOnlyRegex.MatchString(strings.TrimSpace(raw)) {
		return TitleSentinel
	}

	line := firstProductLine(cleanLines(raw))
	if line == "" {
		return TitleSentinel
	}

	title := line
	for _, re := range titleStripRegexes {
		title = re.ReplaceAllString(title, "")
	}
	if loc := genderSectionRegex.FindStringIndex(title); loc != nil {
		title = title[:loc[0]]
	}
	title = strings.Join(strings.Fields(title), " ")
	title = strings.Trim(title, " :-.,;!?*_#")

	if !validTitle(title) {
		return TitleSentinel
	}
	return capTitle(title)
}

// firstProductLine returns the first line that plausibly describes a
// product, or "".
func firstProductLine(lines []string) string {
	for _, line := range lines {
		if strings.HasPrefix(line, "http") {
			continue
		}
		if matchesAny(skipLineRegexes, line) {
			continue
		}
		if containsAny(strings.ToLower(line), fillerWords) {
			continue
		}
		if len(line) > 10 {
			return line
		}
	}
	return ""
}

func validTitle(title string) bool {
	if len(title) < 5 {
		return false
	}

	lower := strings.ToLower(title)
	if _, generic := genericTitles[lower]; generic {
		return false
	}
	if matchesAny(genericTitleRegexes, title) {
		return false
	}

	if len(strings.Fields(title)) <= 1 {
		if _, ok := singleWordProducts[lower]; !ok {
			return false
		}
	}

	promoHits := 0
	for _, kw := range promoKeywords {
		if strings.Contains(lower, kw) {
			promoHits++
		}
	}
	if promoHits >= 2 {
		return false
	}

	if ratingCountRegex.MatchString(title) && !containsAny(lower, countedGoods) {
		return false
	}
	return true
}

// capTitle limits the title length, trimming on a word boundary.
func capTitle(title string) string {
	if len(title) <= maxTitleLen {
		return title
	}
	cut := title[:maxTitleLen]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimSpace(cut)
}

func matchesAny(regexes []*regexp.Regexp, s string) bool {
	for _, re := range regexes {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
