package client

import (
	"context"
	"time"

	domain "github.com/dealradar/dealradar/pkg/types"
)

// ParseResult is the server's view of one parsed promotional message.
type ParseResult struct {
	Candidate  domain.CandidateDeal `json:"candidate"`
	ProductKey string               `json:"product_key,omitempty"`
}

// Parse runs the server's extraction cascade over raw message text.
func (c *Client) Parse(ctx context.Context, text string) (*ParseResult, error) {
	body := map[string]string{"text": text}

	var resp ParseResult
	if err := c.post(ctx, "/api/v1/parse", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TriggerSweep triggers an immediate source sweep.
func (c *Client) TriggerSweep(ctx context.Context) error {
	return c.post(ctx, "/api/v1/sweep", nil, nil)
}

// TriggerCleanup triggers immediate deletion of expired deals.
func (c *Client) TriggerCleanup(ctx context.Context) error {
	return c.post(ctx, "/api/v1/deals/cleanup", nil, nil)
}

// Quota is the page-fetch quota status.
type Quota struct {
	DailyLimit int64     `json:"daily_limit"`
	DailyUsed  int64     `json:"daily_used"`
	Remaining  int64     `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
}

// GetQuota returns the current page-fetch quota status.
func (c *Client) GetQuota(ctx context.Context) (*Quota, error) {
	var q Quota
	if err := c.get(ctx, "/api/v1/quota", &q); err != nil {
		return nil, err
	}
	return &q, nil
}
