package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/dealradar/dealradar/pkg/types"
)

// DealsResponse wraps a paginated deals response.
type DealsResponse struct {
	Deals []domain.Deal `json:"deals"`
	Total int           `json:"total"`
}

// ListDealsParams defines query parameters for catalog queries.
type ListDealsParams struct {
	Store    string
	Category string
	MinScore float64
	MaxPrice float64
	Active   bool
	Limit    int
	Offset   int
	OrderBy  string
}

// ListDeals returns deals matching the given parameters.
func (c *Client) ListDeals(
	ctx context.Context,
	params *ListDealsParams,
) (*DealsResponse, error) {
	q := url.Values{}
	if params.Store != "" {
		q.Set("store", params.Store)
	}
	if params.Category != "" {
		q.Set("category", params.Category)
	}
	if params.MinScore > 0 {
		q.Set("min_score", strconv.FormatFloat(params.MinScore, 'f', -1, 64))
	}
	if params.MaxPrice > 0 {
		q.Set("max_price", strconv.FormatFloat(params.MaxPrice, 'f', -1, 64))
	}
	if params.Active {
		q.Set("active", "true")
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.OrderBy != "" {
		q.Set("order_by", params.OrderBy)
	}

	path := "/api/v1/deals"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp DealsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetDeal returns a single deal by ID.
func (c *Client) GetDeal(ctx context.Context, id string) (*domain.Deal, error) {
	var d domain.Deal
	if err := c.get(ctx, "/api/v1/deals/"+id, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// GetStats returns aggregate catalog statistics.
func (c *Client) GetStats(ctx context.Context) (*domain.CatalogStats, error) {
	var s domain.CatalogStats
	if err := c.get(ctx, "/api/v1/stats", &s); err != nil {
		return nil, err
	}
	return &s, nil
}
