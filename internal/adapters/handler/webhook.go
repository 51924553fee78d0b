package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/DanielPopoola/instprint-backend/internal/core/domain"
	"github.com/google/uuid"
)

const signatureHeader = "X-Razorpay-Signature"

type WebhookResponse struct {
	Status string `json:"status" example:"received"`
}

// HandleWebhook acknowledges a gateway callback
// @Summary      Receive a payment webhook
// @Description  Accepts a Razorpay event and acknowledges it. The signature header is read but not verified.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        X-Razorpay-Signature  header    string           false  "Webhook signature"
// @Success      200                   {object}  WebhookResponse  "Webhook acknowledged"
// @Router       /webhook [post]
func (h *PaymentHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.logger.WarnContext(r.Context(), "webhook body read failed",
			"bytes_read", len(payload),
			"error", err,
		)
	}

	h.webhookService.Receive(r.Context(), domain.WebhookDelivery{
		ID:         uuid.NewString(),
		Payload:    payload,
		Signature:  r.Header.Get(signatureHeader),
		ReceivedAt: time.Now().UTC(),
	})

	respondWithJSON(w, http.StatusOK, WebhookResponse{Status: "received"})
}
