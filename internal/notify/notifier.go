// Package notify defines the notification interface and implementations
// for high-score deal delivery.
package notify

import (
	"context"
	"fmt"

	domain "github.com/dealradar/dealradar/pkg/types"
)

// DealPayload contains the display-ready data for one deal notification.
type DealPayload struct {
	Title           string
	Store           string
	Category        string
	Price           string
	MRP             string
	DiscountPercent string
	Score           int
	Grade           string
	Confidence      string
	Seller          string
	Link            string
	ImageURL        string
}

// Notifier defines the interface for sending deal notifications.
type Notifier interface {
	SendDeal(ctx context.Context, deal *DealPayload) error
	SendBatch(ctx context.Context, deals []DealPayload) error
}

// PayloadFromDeal formats a persisted catalog row for notification.
func PayloadFromDeal(d *domain.Deal) DealPayload {
	p := DealPayload{
		Title:      d.Title,
		Store:      string(d.Store),
		Category:   d.Category,
		Price:      fmt.Sprintf("₹%.0f", d.VerifiedPrice),
		Score:      int(d.Score),
		Grade:      d.Grade,
		Confidence: fmt.Sprintf("%.0f%%", d.ConfidenceScore*100),
		Seller:     d.SellerName,
		Link:       d.Link,
		ImageURL:   d.ImageURL,
	}
	if d.VerifiedMRP != nil {
		p.MRP = fmt.Sprintf("₹%.0f", *d.VerifiedMRP)
	}
	if d.VerifiedDiscount != nil {
		p.DiscountPercent = fmt.Sprintf("%.0f%% off", *d.VerifiedDiscount)
	}
	return p
}
