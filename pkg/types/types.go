// Package domain defines the core business types for deal radar.
package domain

import (
	"strings"
	"time"
)

// Store identifies the e-commerce platform a deal belongs to.
type Store string

// Store constants, matching the detection table in pkg/extract.
const (
	StoreAmazon   Store = "Amazon"
	StoreFlipkart Store = "Flipkart"
	StoreMyntra   Store = "Myntra"
	StoreAjio     Store = "Ajio"
	StoreMeesho   Store = "Meesho"
	StoreNykaa    Store = "Nykaa"
	StoreSnapdeal Store = "Snapdeal"
	StoreOther    Store = "Other"
)

// Trend labels the direction of a product's price over the analysis window.
type Trend string

// Trend constants.
const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendStable  Trend = "stable"
	TrendUnknown Trend = "unknown"
)

// Recommendation is the terminal state of the verification pipeline.
type Recommendation string

// Recommendation constants.
const (
	RecommendAccept Recommendation = "ACCEPT"
	RecommendReview Recommendation = "REVIEW"
	RecommendReject Recommendation = "REJECT"
)

// ConfidenceLabel is the human-readable bucket for a confidence score.
type ConfidenceLabel string

// Confidence labels, highest to lowest.
const (
	ConfidenceVeryHigh ConfidenceLabel = "Very High"
	ConfidenceHigh     ConfidenceLabel = "High"
	ConfidenceMedium   ConfidenceLabel = "Medium"
	ConfidenceLow      ConfidenceLabel = "Low"
	ConfidenceVeryLow  ConfidenceLabel = "Very Low"
)

// Message is one inbound tuple from the promotional message stream.
// Delivery is at least once; persistence must be idempotent on the deal link.
type Message struct {
	Text       string    `json:"text"`
	ChannelID  string    `json:"channel_id"`
	MessageID  int64     `json:"message_id"`
	ReceivedAt time.Time `json:"received_at"`
}

// PriceRange summarizes the price spread of a merged duplicate group.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// CandidateDeal is an unverified deal freshly extracted from promotional
// text or pulled from a scrape source. Prices are pointers because most
// promotional messages carry only a subset of them.
type CandidateDeal struct {
	Title           string   `json:"title"`
	Store           Store    `json:"store"`
	DiscountPrice   *float64 `json:"discount_price,omitempty"`
	MRP             *float64 `json:"mrp,omitempty"`
	DiscountPercent *float64 `json:"discount_percent,omitempty"`
	Link            string   `json:"link"`
	Category        string   `json:"category"`

	SourceChannel string    `json:"source_channel,omitempty"`
	ObservedAt    time.Time `json:"observed_at"`

	// Enrichment available when the candidate came from a scrape source
	// rather than a bare text message.
	Rating      float64 `json:"rating,omitempty"`
	ReviewCount int     `json:"review_count,omitempty"`
	DealType    string  `json:"deal_type,omitempty"`
	SellerType  string  `json:"seller_type,omitempty"`
	StockStatus string  `json:"stock_status,omitempty"`

	// Populated by the duplicate resolver's merge strategy.
	Sources        []string    `json:"sources,omitempty"`
	DuplicateCount int         `json:"duplicate_count,omitempty"`
	PriceRange     *PriceRange `json:"price_range,omitempty"`
}

// EffectivePrice returns the best known price for comparison purposes,
// or 0 when no price was extracted.
func (d *CandidateDeal) EffectivePrice() float64 {
	if d.PriceRange != nil && d.PriceRange.Min > 0 {
		return d.PriceRange.Min
	}
	if d.DiscountPrice != nil {
		return *d.DiscountPrice
	}
	return 0
}

// Normalize enforces the mrp >= discount_price invariant: an MRP at or
// below the selling price is dropped, and swapped pairs are corrected.
func (d *CandidateDeal) Normalize() {
	if d.MRP == nil || d.DiscountPrice == nil {
		return
	}
	switch {
	case *d.MRP < *d.DiscountPrice:
		d.MRP, d.DiscountPrice = d.DiscountPrice, d.MRP
	case *d.MRP == *d.DiscountPrice:
		d.MRP = nil
	}
}

// Persistable reports whether the candidate is worth sending through
// verification: it needs a product link, and links back into the messaging
// platform itself are promotional noise, not products.
func (d *CandidateDeal) Persistable() bool {
	if d.Link == "" {
		return false
	}
	link := strings.ToLower(d.Link)
	return !strings.Contains(link, "t.me/") && !strings.Contains(link, "telegram.me/")
}

// PriceObservation is one append-only point in a product's price series.
// ProductKey is the normalized store-specific identity derived from the
// product URL (see pkg/extract.ProductKey). Observations are never mutated.
type PriceObservation struct {
	ProductKey string            `json:"product_key" db:"product_key"`
	Price      float64           `json:"price"       db:"price"`
	MRP        *float64          `json:"mrp,omitempty" db:"mrp"`
	ObservedAt time.Time         `json:"observed_at" db:"observed_at"`
	Metadata   map[string]string `json:"metadata,omitempty" db:"metadata"`
}

// PriceInsight is a derived, never-persisted view over a product's
// observations within a trailing window. A zero value means "no history".
type PriceInsight struct {
	HasHistory      bool     `json:"has_history"`
	IsHistoricalLow bool     `json:"is_historical_low"`
	IsFakeDiscount  bool     `json:"is_fake_discount"`
	PriceDrop7d     *float64 `json:"price_drop_7d,omitempty"`
	PriceDrop30d    *float64 `json:"price_drop_30d,omitempty"`
	Lowest30d       *float64 `json:"lowest_30d,omitempty"`
	Highest30d      *float64 `json:"highest_30d,omitempty"`
	Average30d      *float64 `json:"average_30d,omitempty"`
	Trend30d        Trend    `json:"trend_30d"`
}

// ProductPage is the normalized record returned by an official product
// fetch. All fields come from the merchant page, never from the
// promotional message.
type ProductPage struct {
	Title               string   `json:"title"`
	OfferPrice          *float64 `json:"offer_price,omitempty"`
	MRP                 *float64 `json:"mrp,omitempty"`
	Availability        string   `json:"availability,omitempty"`
	Rating              float64  `json:"rating,omitempty"`
	ReviewCount         int      `json:"review_count,omitempty"`
	SellerName          string   `json:"seller_name,omitempty"`
	SellerRating        float64  `json:"seller_rating,omitempty"`
	FulfilledByPlatform bool     `json:"fulfilled_by_platform,omitempty"`
	ImageURL            string   `json:"image_url,omitempty"`
}

// Verification source constants.
const (
	SourceOfficialSite = "official_site"
	SourceMessageText  = "telegram_text"
	SourceNone         = "none"
)

// VerificationResult is the immutable outcome of one verification attempt.
// Confidence measures how much content was corroborated by an official
// source, not deal quality.
type VerificationResult struct {
	IsVerified      bool            `json:"is_verified"`
	ConfidenceScore float64         `json:"confidence_score"`
	ConfidenceLabel ConfidenceLabel `json:"confidence_label"`

	VerifiedTitle    string   `json:"verified_title,omitempty"`
	VerifiedPrice    *float64 `json:"verified_price,omitempty"`
	VerifiedMRP      *float64 `json:"verified_mrp,omitempty"`
	VerifiedDiscount *float64 `json:"verified_discount,omitempty"`

	Availability        string  `json:"availability,omitempty"`
	Rating              float64 `json:"rating,omitempty"`
	ReviewCount         int     `json:"review_count,omitempty"`
	SellerName          string  `json:"seller_name,omitempty"`
	SellerRating        float64 `json:"seller_rating,omitempty"`
	FulfilledByPlatform bool    `json:"fulfilled_by_platform,omitempty"`
	ImageURL            string  `json:"image_url,omitempty"`

	Source         string         `json:"verification_source"`
	Issues         []string       `json:"issues,omitempty"`
	Recommendation Recommendation `json:"recommendation"`
	VerifiedAt     time.Time      `json:"verified_at"`
}

// Deal is a persisted catalog row. Authoritative content comes from
// verified/official fields only; the link is the uniqueness key.
type Deal struct {
	ID    string `json:"id"    db:"id"`
	Title string `json:"title" db:"title"`
	Store Store  `json:"store" db:"store"`

	VerifiedMRP      *float64 `json:"verified_mrp,omitempty"      db:"verified_mrp"`
	VerifiedPrice    float64  `json:"verified_price"              db:"verified_price"`
	VerifiedDiscount *float64 `json:"verified_discount,omitempty" db:"verified_discount"`

	Link     string  `json:"link"     db:"link"`
	Rating   float64 `json:"rating"   db:"rating"`
	Category string  `json:"category" db:"category"`

	SellerName          string  `json:"seller_name,omitempty"   db:"seller_name"`
	SellerRating        float64 `json:"seller_rating,omitempty" db:"seller_rating"`
	FulfilledByPlatform bool    `json:"fulfilled_by_platform"   db:"fulfilled_by_platform"`

	Score           float64 `json:"score"            db:"score"`
	Grade           string  `json:"grade"            db:"grade"`
	ConfidenceScore float64 `json:"confidence_score" db:"confidence_score"`

	SourceChannel string    `json:"source_channel,omitempty" db:"source_channel"`
	ImageURL      string    `json:"image_url,omitempty"      db:"image_url"`
	OfferEndsAt   time.Time `json:"offer_ends_at"            db:"offer_ends_at"`
	CreatedAt     time.Time `json:"created_at"               db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"               db:"updated_at"`
}

// Job run statuses.
const (
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}

// CatalogStats holds aggregate counts over the persisted catalog.
type CatalogStats struct {
	TotalDeals  int            `json:"total_deals"`
	ActiveDeals int            `json:"active_deals"`
	ByStore     map[string]int `json:"by_store"`
	ByCategory  map[string]int `json:"by_category"`
}
