package service

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/instprint-backend/internal/core/domain"
)

// payloadLogLimit is how many characters of a webhook body reach the log.
const payloadLogLimit = 200

type WebhookService struct {
	logger *slog.Logger
}

func NewWebhookService(logger *slog.Logger) *WebhookService {
	return &WebhookService{logger: logger}
}

// Receive records the delivery in the log. The signature is not verified.
func (s *WebhookService) Receive(ctx context.Context, delivery domain.WebhookDelivery) {
	s.logger.InfoContext(ctx, "webhook received",
		"delivery_id", delivery.ID,
		"payload_bytes", len(delivery.Payload),
		"signature_present", delivery.HasSignature(),
		"payload", delivery.PayloadPrefix(payloadLogLimit),
	)
}
