package ports

import (
	"context"

	"github.com/DanielPopoola/instprint-backend/internal/core/domain"
)

// PaymentProvider defines the behavior of the external payment gateway.
type PaymentProvider interface {
	CreateOrder(ctx context.Context, req domain.ProviderOrderRequest) (*domain.ProviderOrder, error)
}
