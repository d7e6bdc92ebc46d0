package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Sweeper defines the interface for triggering a source sweep.
type Sweeper interface {
	RunSweep(ctx context.Context) error
}

// Cleaner defines the interface for triggering expired-deal cleanup.
type Cleaner interface {
	RunCleanup(ctx context.Context) error
}

// SweepHandler handles manual sweep trigger requests.
type SweepHandler struct {
	sweeper Sweeper
}

// NewSweepHandler creates a new SweepHandler.
func NewSweepHandler(s Sweeper) *SweepHandler {
	return &SweepHandler{sweeper: s}
}

// SweepOutput is the response body for the sweep endpoint.
type SweepOutput struct {
	Body struct {
		Status string `json:"status" example:"sweep completed" doc:"Sweep status"`
	}
}

// Sweep triggers a full source sweep run.
func (h *SweepHandler) Sweep(ctx context.Context, _ *struct{}) (*SweepOutput, error) {
	if err := h.sweeper.RunSweep(ctx); err != nil {
		return nil, huma.Error500InternalServerError("sweep failed: " + err.Error())
	}

	resp := &SweepOutput{}
	resp.Body.Status = "sweep completed"
	return resp, nil
}

// CleanupHandler handles manual expired-deal cleanup requests.
type CleanupHandler struct {
	cleaner Cleaner
}

// NewCleanupHandler creates a new CleanupHandler.
func NewCleanupHandler(c Cleaner) *CleanupHandler {
	return &CleanupHandler{cleaner: c}
}

// CleanupOutput is the response body for the cleanup endpoint.
type CleanupOutput struct {
	Body struct {
		Status string `json:"status" example:"cleanup completed" doc:"Cleanup status"`
	}
}

// Cleanup triggers deletion of deals whose offer window has passed.
func (h *CleanupHandler) Cleanup(ctx context.Context, _ *struct{}) (*CleanupOutput, error) {
	if err := h.cleaner.RunCleanup(ctx); err != nil {
		return nil, huma.Error500InternalServerError("cleanup failed: " + err.Error())
	}

	resp := &CleanupOutput{}
	resp.Body.Status = "cleanup completed"
	return resp, nil
}

// RegisterTriggerRoutes registers trigger endpoints with the Huma API.
func RegisterTriggerRoutes(api huma.API, sweepH *SweepHandler, cleanupH *CleanupHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "trigger-sweep",
		Method:      http.MethodPost,
		Path:        "/api/v1/sweep",
		Summary:     "Trigger a source sweep",
		Description: "Pulls candidates from every registered source, deduplicates them, " +
			"then verifies, scores, and persists the survivors.",
		Tags:   []string{"scheduler"},
		Errors: []int{http.StatusInternalServerError},
	}, sweepH.Sweep)

	huma.Register(api, huma.Operation{
		OperationID: "trigger-cleanup",
		Method:      http.MethodPost,
		Path:        "/api/v1/deals/cleanup",
		Summary:     "Delete expired deals",
		Description: "Removes catalog rows whose offer window has passed.",
		Tags:        []string{"scheduler"},
		Errors:      []int{http.StatusInternalServerError},
	}, cleanupH.Cleanup)
}
