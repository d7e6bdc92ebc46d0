package source

import (
	"time"

	"github.com/dealradar/dealradar/pkg/extract"
	domain "github.com/dealradar/dealradar/pkg/types"
)

// feedItem is one deal as exported by a feed.
type feedItem struct {
	Title           string   `json:"title"`
	URL             string   `json:"url"`
	Price           *float64 `json:"price,omitempty"`
	MRP             *float64 `json:"mrp,omitempty"`
	DiscountPercent *float64 `json:"discount_percent,omitempty"`
	Rating          float64  `json:"rating,omitempty"`
	ReviewCount     int      `json:"review_count,omitempty"`
	DealType        string   `json:"deal_type,omitempty"`
	SellerType      string   `json:"seller_type,omitempty"`
	StockStatus     string   `json:"stock_status,omitempty"`
	Category        string   `json:"category,omitempty"`
}

// toCandidate converts one feed item into a candidate deal. Items
// without a product link are unusable and reported as not ok.
func toCandidate(item *feedItem, feedName string, observed time.Time) (domain.CandidateDeal, bool) {
	if item.URL == "" {
		return domain.CandidateDeal{}, false
	}

	c := domain.CandidateDeal{
		Title:           item.Title,
		Store:           extract.DetectStore(item.URL),
		DiscountPrice:   item.Price,
		MRP:             item.MRP,
		DiscountPercent: item.DiscountPercent,
		Link:            item.URL,
		Category:        item.Category,
		SourceChannel:   feedName,
		ObservedAt:      observed,

		Rating:      item.Rating,
		ReviewCount: item.ReviewCount,
		DealType:    item.DealType,
		SellerType:  item.SellerType,
		StockStatus: item.StockStatus,
	}

	if c.Category == "" {
		c.Category = extract.Categorize(item.Title)
	}
	return c, true
}
