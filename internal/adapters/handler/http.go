package handler

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/instprint-backend/internal/core/domain"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps every request body this package reads.
const maxBodyBytes = 1 << 20

type OrderService interface {
	CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.OrderResult, error)
}

type WebhookService interface {
	Receive(ctx context.Context, delivery domain.WebhookDelivery)
}

type PaymentHandler struct {
	orderService   OrderService
	webhookService WebhookService
	logger         *slog.Logger
}

func NewPaymentHandler(
	orderService OrderService,
	webhookService WebhookService,
	logger *slog.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		orderService:   orderService,
		webhookService: webhookService,
		logger:         logger,
	}
}

func (h *PaymentHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleStatus)
	r.Post("/create_order", h.HandleCreateOrder)
	r.Post("/webhook", h.HandleWebhook)
}
