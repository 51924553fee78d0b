package service

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/instprint-backend/internal/core/domain"
	"github.com/DanielPopoola/instprint-backend/internal/core/ports"
	"github.com/go-playground/validator"
)

type OrderService struct {
	provider       ports.PaymentProvider
	publishableKey string
	validate       *validator.Validate
	logger         *slog.Logger
}

// NewOrderService wires the gateway client with the public key id that is
// echoed back to clients alongside each order id.
func NewOrderService(provider ports.PaymentProvider, publishableKey string, logger *slog.Logger) *OrderService {
	return &OrderService{
		provider:       provider,
		publishableKey: publishableKey,
		validate:       validator.New(),
		logger:         logger,
	}
}

// CreateOrder asks the gateway for a captured-on-payment INR order. The
// gateway is called exactly once; its failures come back as PROVIDER_ERROR.
func (s *OrderService) CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.OrderResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.NewInvalidAmountError(req.Amount)
	}

	providerReq := domain.ProviderOrderRequest{
		Amount:         domain.ToMinorUnits(req.Amount),
		Currency:       domain.CurrencyINR,
		Receipt:        req.ReceiptOrDefault(),
		PaymentCapture: true,
	}

	order, err := s.provider.CreateOrder(ctx, providerReq)
	if err != nil {
		s.logger.ErrorContext(ctx, "provider order creation failed",
			"amount", providerReq.Amount,
			"currency", providerReq.Currency,
			"receipt", providerReq.Receipt,
			"error", err,
		)
		return nil, domain.NewProviderError(err)
	}

	s.logger.InfoContext(ctx, "order created",
		"order_id", order.ID,
		"amount", providerReq.Amount,
		"receipt", providerReq.Receipt,
	)

	return &domain.OrderResult{
		OrderID:        order.ID,
		PublishableKey: s.publishableKey,
	}, nil
}
