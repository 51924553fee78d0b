package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/DanielPopoola/instprint-backend/internal/core/domain"
)

// CreateOrderRequest accepts amount as a JSON number or a numeric string.
type CreateOrderRequest struct {
	Amount  json.RawMessage `json:"amount" swaggertype:"integer" example:"100"`
	Receipt looseString     `json:"receipt,omitempty" swaggertype:"string" example:"receipt_42"`
	UserID  looseString     `json:"userId,omitempty" swaggertype:"string" example:"u1"`
}

type CreateOrderResponse struct {
	OrderID string `json:"order_id" example:"order_IluGWxBm9U8zJ8"`
	Key     string `json:"key" example:"rzp_test_1DP5mmOlF5G5ag"`
}

// HandleCreateOrder creates a payment order with the gateway
// @Summary      Create a payment order
// @Description  Creates a Razorpay order for an INR amount given in rupees and returns its id with the publishable key.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      CreateOrderRequest   true  "Order amount in rupees with optional receipt and user id"
// @Success      200      {object}  CreateOrderResponse  "Order created"
// @Failure      400      {object}  ErrorResponse        "Invalid amount"
// @Failure      500      {object}  ErrorResponse        "Payment provider error"
// @Router       /create_order [post]
func (h *PaymentHandler) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.rejectAmount(w, r, "(unreadable body)", err)
		return
	}

	var req CreateOrderRequest
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			h.rejectAmount(w, r, "(malformed body)", err)
			return
		}
	}

	amount, err := domain.ParseAmount(amountText(req.Amount))
	if err != nil {
		h.rejectAmount(w, r, string(req.Amount), err)
		return
	}

	result, err := h.orderService.CreateOrder(r.Context(), domain.OrderRequest{
		Amount:  amount,
		Receipt: string(req.Receipt),
		UserID:  string(req.UserID),
	})
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CreateOrderResponse{
		OrderID: result.OrderID,
		Key:     result.PublishableKey,
	})
}

func (h *PaymentHandler) rejectAmount(w http.ResponseWriter, r *http.Request, value string, cause error) {
	h.logger.WarnContext(r.Context(), "rejected order request",
		"amount", value,
		"error", cause,
	)
	respondWithError(w, domain.NewInvalidAmountError(value))
}

// amountText unwraps a JSON string amount and maps null to empty. Any other
// literal is returned as written for ParseAmount to judge.
func amountText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return string(raw)
		}
		return s
	}

	return string(raw)
}

// looseString decodes JSON strings and numbers into their text form; null is
// empty. Objects, arrays and booleans keep their compact JSON text.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = looseString(v)
		return nil
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return err
	}
	*s = looseString(compact.String())
	return nil
}
