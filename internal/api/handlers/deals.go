package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dealradar/dealradar/internal/store"
	domain "github.com/dealradar/dealradar/pkg/types"
)

// DealsHandler handles catalog query endpoints.
type DealsHandler struct {
	store store.Store
}

// NewDealsHandler creates a new DealsHandler.
func NewDealsHandler(s store.Store) *DealsHandler {
	return &DealsHandler{store: s}
}

// --- Input/Output types ---

// ListDealsInput is the input for listing deals with optional filters.
type ListDealsInput struct {
	Store    string  `query:"store"     doc:"Filter by e-commerce platform"  enum:"Amazon,Flipkart,Myntra,Ajio,Meesho,Nykaa,Snapdeal,Other,"`
	Category string  `query:"category"  doc:"Filter by product category"     enum:"electronics,fashion,home,beauty,books,grocery,sports,other,"`
	MinScore float64 `query:"min_score" doc:"Minimum deal score"                                                                               minimum:"0" maximum:"100"`
	MaxPrice float64 `query:"max_price" doc:"Maximum verified price"                                                                           minimum:"0"`
	Active   bool    `query:"active"    doc:"Only deals whose offer window is still open"`
	Limit    int     `query:"limit"     doc:"Number of results (default 50)"                                                                   minimum:"1" maximum:"1000"`
	Offset   int     `query:"offset"    doc:"Pagination offset"                                                                                minimum:"0"`
	OrderBy  string  `query:"order_by"  doc:"Sort field"                     enum:"score,price,created_at,"`
}

// ListDealsOutput is the response for listing deals.
type ListDealsOutput struct {
	Body struct {
		Deals  []domain.Deal `json:"deals"`
		Total  int           `json:"total"`
		Limit  int           `json:"limit"`
		Offset int           `json:"offset"`
	}
}

// GetDealInput is the input for getting a single deal.
type GetDealInput struct {
	ID string `path:"id" doc:"Deal UUID"`
}

// GetDealOutput is the response for getting a single deal.
type GetDealOutput struct {
	Body domain.Deal
}

// StatsOutput is the response for catalog statistics.
type StatsOutput struct {
	Body domain.CatalogStats
}

// --- Handlers ---

// ListDeals returns deals with optional filters for store, category,
// score, price, and pagination.
func (h *DealsHandler) ListDeals(
	ctx context.Context,
	input *ListDealsInput,
) (*ListDealsOutput, error) {
	q := &store.DealQuery{
		ActiveOnly: input.Active,
		Offset:     input.Offset,
		OrderBy:    input.OrderBy,
	}

	if input.Store != "" {
		q.Store = &input.Store
	}

	if input.Category != "" {
		q.Category = &input.Category
	}

	if input.MinScore != 0 {
		q.MinScore = &input.MinScore
	}

	if input.MaxPrice != 0 {
		q.MaxPrice = &input.MaxPrice
	}

	if input.Limit != 0 {
		q.Limit = input.Limit
	}

	deals, total, err := h.store.ListDeals(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("deal query failed: " + err.Error())
	}

	resp := &ListDealsOutput{}
	resp.Body.Deals = deals
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetDeal returns a single deal by ID.
func (h *DealsHandler) GetDeal(
	ctx context.Context,
	input *GetDealInput,
) (*GetDealOutput, error) {
	deal, err := h.store.GetDeal(ctx, input.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("deal not found")
		}
		return nil, huma.Error500InternalServerError("deal lookup failed: " + err.Error())
	}

	return &GetDealOutput{Body: *deal}, nil
}

// GetStats returns aggregate catalog statistics.
func (h *DealsHandler) GetStats(ctx context.Context, _ *struct{}) (*StatsOutput, error) {
	stats, err := h.store.GetStats(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("stats query failed: " + err.Error())
	}

	return &StatsOutput{Body: *stats}, nil
}

// RegisterDealRoutes registers catalog endpoints with the Huma API.
func RegisterDealRoutes(api huma.API, h *DealsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-deals",
		Method:      http.MethodGet,
		Path:        "/api/v1/deals",
		Summary:     "List deals",
		Description: "Returns catalog deals with optional filters for store, category, score, price, and pagination.",
		Tags:        []string{"deals"},
	}, h.ListDeals)

	huma.Register(api, huma.Operation{
		OperationID: "get-deal",
		Method:      http.MethodGet,
		Path:        "/api/v1/deals/{id}",
		Summary:     "Get a deal by ID",
		Description: "Returns a single catalog deal by its UUID.",
		Tags:        []string{"deals"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetDeal)

	huma.Register(api, huma.Operation{
		OperationID: "get-stats",
		Method:      http.MethodGet,
		Path:        "/api/v1/stats",
		Summary:     "Get catalog statistics",
		Description: "Returns aggregate deal counts, split by store and category.",
		Tags:        []string{"deals"},
	}, h.GetStats)
}
