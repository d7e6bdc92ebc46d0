// Package score ranks deals on a 0-100 scale from six weighted factors:
// discount authenticity, discount percentage, product popularity, deal
// urgency, price competitiveness and seller trust. Scoring is a pure
// function of the deal fields plus optional price-history insights.
package score

import (
	"math"
	"strings"

	domain "github.com/dealradar/dealradar/pkg/types"
)

// Factor maxima. The six maxima sum to 100.
const (
	MaxAuthenticity    = 25.0
	MaxDiscountPercent = 20.0
	MaxPopularity      = 15.0
	MaxUrgency         = 15.0
	MaxCompetitiveness = 15.0
	MaxSellerTrust     = 10.0
)

// DealData holds the fields needed for scoring, decoupled from the
// persistence model. Missing fields score their factor's floor.
type DealData struct {
	DiscountPercent float64
	Rating          float64
	ReviewCount     int
	DealType        string
	SellerType      string
	StockStatus     string
}

// Breakdown shows per-factor scores.
type Breakdown struct {
	Authenticity    float64 `json:"discount_authenticity"`
	DiscountPercent float64 `json:"discount_percentage"`
	Popularity      float64 `json:"product_popularity"`
	Urgency         float64 `json:"deal_urgency"`
	Competitiveness float64 `json:"price_competitiveness"`
	SellerTrust     float64 `json:"seller_trust"`
}

// Result is the outcome of scoring one deal.
type Result struct {
	Total          float64   `json:"total_score"`
	Grade          string    `json:"grade"`
	Breakdown      Breakdown `json:"breakdown"`
	Recommendation string    `json:"recommendation"`
}

// Score computes the composite deal score. insights may be nil, in
// which case the history-dependent factors fall back to their neutral
// no-history behavior.
func Score(d DealData, insights *domain.PriceInsight) Result {
	b := Breakdown{
		Authenticity:    scoreAuthenticity(d, insights),
		DiscountPercent: scoreDiscountPercent(d.DiscountPercent),
		Popularity:      scorePopularity(d.Rating, d.ReviewCount),
		Urgency:         scoreUrgency(d.DealType, d.StockStatus),
		Competitiveness: scoreCompetitiveness(insights),
		SellerTrust:     scoreSellerTrust(d.SellerType),
	}

	total := round1(b.Authenticity + b.DiscountPercent + b.Popularity +
		b.Urgency + b.Competitiveness + b.SellerTrust)

	return Result{
		Total:          total,
		Grade:          Grade(total),
		Breakdown:      b,
		Recommendation: Recommendation(total),
	}
}

// scoreAuthenticity judges whether the discount is real. Without
// history the raw discount magnitude stands in, and suspiciously large
// discounts score lower, not higher. With history the factor starts
// full and loses points for fake-discount flags and rising prices.
func scoreAuthenticity(d DealData, insights *domain.PriceInsight) float64 {
	if insights == nil || !insights.HasHistory {
		switch {
		case d.DiscountPercent >= 80:
			return 10
		case d.DiscountPercent > 50:
			return 15
		case d.DiscountPercent > 20:
			return 20
		default:
			return 15
		}
	}

	s := MaxAuthenticity
	if insights.IsFakeDiscount {
		s -= 15
	}
	if insights.IsHistoricalLow {
		s += 5
	}
	switch insights.Trend30d {
	case domain.TrendFalling:
		s += 2
	case domain.TrendRising:
		s -= 2
	}
	return round1(clamp(s, 0, MaxAuthenticity))
}

func scoreDiscountPercent(pct float64) float64 {
	switch {
	case pct >= 70:
		return 20
	case pct >= 60:
		return 18
	case pct >= 50:
		return 16
	case pct >= 40:
		return 14
	case pct >= 30:
		return 12
	case pct >= 20:
		return 10
	case pct >= 10:
		return 6
	case pct >= 5:
		return 3
	default:
		return 0
	}
}

// scorePopularity blends rating (up to 10, linear) with a review-count
// bracket (up to 5).
func scorePopularity(rating float64, reviews int) float64 {
	s := 0.0
	if rating > 0 {
		s += rating / 5 * 10
	}

	switch {
	case reviews >= 10000:
		s += 5
	case reviews >= 5000:
		s += 4.5
	case reviews >= 1000:
		s += 4
	case reviews >= 500:
		s += 3.5
	case reviews >= 100:
		s += 3
	case reviews >= 50:
		s += 2
	case reviews >= 10:
		s += 1
	}
	return round1(math.Min(s, MaxPopularity))
}

// scoreUrgency combines deal-type tier (up to 10) with stock pressure
// (up to 5). Out of stock zeroes the whole factor.
func scoreUrgency(dealType, stockStatus string) float64 {
	s := 0.0

	dt := strings.ToLower(dealType)
	switch {
	case containsAny(dt, "lightning", "flash", "limited"):
		s += 10
	case containsAny(dt, "festival", "sale", "special"):
		s += 8
	case containsAny(dt, "daily", "today"):
		s += 6
	default:
		s += 3
	}

	stock := strings.ToLower(stockStatus)
	switch {
	case strings.Contains(stock, "low") || strings.Contains(stock, "limited"):
		s += 5
	case strings.Contains(stock, "in_stock") || strings.Contains(stock, "available"):
		s += 3
	case strings.Contains(stock, "out"):
		s = 0
	}
	return round1(math.Min(s, MaxUrgency))
}

// scoreCompetitiveness rewards historical lows and recent price drops.
// Without history the factor stays neutral at half its maximum.
func scoreCompetitiveness(insights *domain.PriceInsight) float64 {
	if insights == nil || !insights.HasHistory {
		return MaxCompetitiveness / 2
	}

	s := MaxCompetitiveness / 2
	if insights.IsHistoricalLow {
		s += 5
	}

	switch drop := deref(insights.PriceDrop7d); {
	case drop > 20:
		s += 2.5
	case drop > 10:
		s += 1.5
	case drop > 5:
		s += 0.5
	}
	switch drop := deref(insights.PriceDrop30d); {
	case drop > 30:
		s += 2.5
	case drop > 20:
		s += 1.5
	case drop > 10:
		s += 0.5
	}
	return round1(math.Min(s, MaxCompetitiveness))
}

func scoreSellerTrust(sellerType string) float64 {
	seller := strings.ToLower(sellerType)
	switch {
	case containsAny(seller, "official", "brand", "manufacturer"):
		return 10
	case containsAny(seller, "verified", "authorized", "plus", "assured"):
		return 8
	case containsAny(seller, "platform", "fulfilled"):
		return 6
	default:
		return 3
	}
}

// Grade maps a total score to a letter grade.
func Grade(total float64) string {
	switch {
	case total >= 90:
		return "A+"
	case total >= 85:
		return "A"
	case total >= 80:
		return "A-"
	case total >= 75:
		return "B+"
	case total >= 70:
		return "B"
	case total >= 65:
		return "B-"
	case total >= 60:
		return "C+"
	case total >= 55:
		return "C"
	case total >= 50:
		return "C-"
	case total >= 40:
		return "D"
	default:
		return "F"
	}
}

// Recommendation maps a total score to a buyer-facing verdict at
// coarser granularity than the grade.
func Recommendation(total float64) string {
	switch {
	case total >= 85:
		return "Excellent Deal! Highly Recommended"
	case total >= 75:
		return "Great Deal! Worth Buying"
	case total >= 65:
		return "Good Deal! Consider It"
	case total >= 55:
		return "Average Deal - Check Alternatives"
	case total >= 40:
		return "Below Average - Not Recommended"
	default:
		return "Poor Deal - Avoid"
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
