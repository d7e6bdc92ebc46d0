package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/dealradar/dealradar/pkg/types"
)

// IngestHandler accepts raw promotional messages and enqueues them for
// the pipeline worker pool. Enqueueing is non-blocking: when the queue
// is full the remainder of the batch is rejected so the caller can
// retry with backoff.
type IngestHandler struct {
	queue chan<- domain.Message
	now   func() time.Time
}

// NewIngestHandler creates a new IngestHandler writing to queue.
func NewIngestHandler(queue chan<- domain.Message) *IngestHandler {
	return &IngestHandler{queue: queue, now: time.Now}
}

// IngestInput is the request body for the ingest endpoint.
type IngestInput struct {
	Body struct {
		ChannelID string   `json:"channel_id" minLength:"1" example:"deals-alerts" doc:"Identifier of the originating channel"`
		Messages  []string `json:"messages" minItems:"1" maxItems:"100" doc:"Raw promotional message texts"`
	}
}

// IngestOutput is the response body for the ingest endpoint.
type IngestOutput struct {
	Status int
	Body   struct {
		Accepted int `json:"accepted" example:"3" doc:"Messages enqueued for processing"`
		Rejected int `json:"rejected" example:"0" doc:"Messages rejected because the queue is full"`
	}
}

// Ingest enqueues a batch of raw messages.
func (h *IngestHandler) Ingest(_ context.Context, input *IngestInput) (*IngestOutput, error) {
	received := h.now()

	resp := &IngestOutput{Status: http.StatusAccepted}
	for i, text := range input.Body.Messages {
		msg := domain.Message{
			Text:       text,
			ChannelID:  input.Body.ChannelID,
			MessageID:  int64(i),
			ReceivedAt: received,
		}
		select {
		case h.queue <- msg:
			resp.Body.Accepted++
		default:
			resp.Body.Rejected = len(input.Body.Messages) - resp.Body.Accepted
			resp.Status = http.StatusTooManyRequests
			return resp, nil
		}
	}
	return resp, nil
}

// RegisterIngestRoutes registers the ingest endpoint with the Huma API.
func RegisterIngestRoutes(api huma.API, h *IngestHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "ingest-messages",
		Method:      http.MethodPost,
		Path:        "/api/v1/messages",
		Summary:     "Ingest promotional messages",
		Description: "Enqueues a batch of raw promotional messages for extraction, " +
			"verification, and scoring by the pipeline workers.",
		Tags: []string{"pipeline"},
	}, h.Ingest)
}
