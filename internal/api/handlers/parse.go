package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dealradar/dealradar/pkg/extract"
	domain "github.com/dealradar/dealradar/pkg/types"
)

// ParseHandler exposes the rule-based extractor as an endpoint, useful
// for inspecting what a promotional message would yield before it
// enters the pipeline.
type ParseHandler struct {
	extractor *extract.Extractor
}

// NewParseHandler creates a new ParseHandler.
func NewParseHandler(ex *extract.Extractor) *ParseHandler {
	return &ParseHandler{extractor: ex}
}

// ParseInput is the request body for the parse endpoint.
type ParseInput struct {
	Body struct {
		Text string `json:"text" minLength:"1" doc:"Raw promotional message text" example:"boAt Airdopes 141 @ ₹999 (MRP ₹4490) https://amzn.to/3xYz12A"`
	}
}

// ParseOutput is the response body for the parse endpoint.
type ParseOutput struct {
	Body struct {
		Candidate  domain.CandidateDeal `json:"candidate" doc:"Extracted candidate deal"`
		ProductKey string               `json:"product_key,omitempty" example:"amazon.in/dp/B09N3ZNHTY" doc:"Normalized product identity derived from the link"`
	}
}

// Parse runs the extraction cascade over one raw message.
func (h *ParseHandler) Parse(_ context.Context, input *ParseInput) (*ParseOutput, error) {
	candidate := h.extractor.Extract(input.Body.Text)

	resp := &ParseOutput{}
	resp.Body.Candidate = candidate
	if candidate.Link != "" {
		resp.Body.ProductKey = extract.ProductKey(candidate.Link)
	}
	return resp, nil
}

// RegisterParseRoutes registers the parse endpoint with the Huma API.
func RegisterParseRoutes(api huma.API, h *ParseHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "parse-message",
		Method:      http.MethodPost,
		Path:        "/api/v1/parse",
		Summary:     "Parse a promotional message",
		Description: "Runs the rule-based extraction cascade over raw promotional text " +
			"and returns the candidate deal it would produce.",
		Tags: []string{"extract"},
	}, h.Parse)
}
