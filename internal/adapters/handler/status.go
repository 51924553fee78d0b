package handler

import "net/http"

const statusMessage = "InstPrint backend running"

type StatusResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message" example:"InstPrint backend running"`
}

// HandleStatus reports that the service is up
// @Summary      Service status
// @Description  Reports that the service is up.
// @Tags         status
// @Produce      json
// @Success      200  {object}  StatusResponse  "Service is running"
// @Router       / [get]
func (h *PaymentHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, StatusResponse{
		Status:  "ok",
		Message: statusMessage,
	})
}
