package extract

import (
	"regexp"

	domain "github.com/dealradar/dealradar/pkg/types"
)

// storePattern pairs a store with the pattern that identifies it in
// promotional text, either by name or by its link domains.
type storePattern struct {
	store   domain.Store
	pattern *regexp.Regexp
}

// storePatterns is checked in order; the first match wins. Amazon sits
// first because mixed-store roundup messages most often lead with it.
var storePatterns = []storePattern{
	{domain.StoreAmazon, regexp.MustCompile(`(?i)\b(amazon|amzn\.to|amazon\.in)\b`)},
	{domain.StoreFlipkart, regexp.MustCompile(`(?i)\b(flipkart|fkrt\.it|flipkart\.com)\b`)},
	{domain.StoreMyntra, regexp.MustCompile(`(?i)\b(myntra|myntra\.com)\b`)},
	{domain.StoreAjio, regexp.MustCompile(`(?i)\b(ajio|ajio\.com)\b`)},
	{domain.StoreMeesho, regexp.MustCompile(`(?i)\b(meesho|meesho\.com)\b`)},
	{domain.StoreNykaa, regexp.MustCompile(`(?i)\b(nykaa|nykaa\.com)\b`)},
	{domain.StoreSnapdeal, regexp.MustCompile(`(?i)\b(snapdeal|snapdeal\.com)\b`)},
}

// DetectStore identifies the e-commerce platform mentioned in text.
// Returns StoreOther when nothing matches.
func DetectStore(text string) domain.Store {
	for _, sp := range storePatterns {
		if sp.pattern.MatchString(text) {
			return sp.store
		}
	}
	return domain.StoreOther
}
