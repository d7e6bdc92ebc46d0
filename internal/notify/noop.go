package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded notifications.
// It is used when Discord (or another notification backend) is not
// configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards deals with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendDeal logs and discards a single deal.
func (n *NoOpNotifier) SendDeal(_ context.Context, deal *DealPayload) error {
	n.log.Debug("notification discarded (no backend configured)",
		"title", deal.Title,
		"store", deal.Store,
		"score", deal.Score,
	)
	return nil
}

// SendBatch logs and discards a batch of deals.
func (n *NoOpNotifier) SendBatch(_ context.Context, deals []DealPayload) error {
	n.log.Debug("batch notification discarded (no backend configured)",
		"count", len(deals),
	)
	return nil
}
