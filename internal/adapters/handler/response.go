package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DanielPopoola/instprint-backend/internal/core/domain"
)

type ErrorResponse struct {
	Error string `json:"error" example:"Invalid amount"`
}

func respondWithJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(data)
}

func respondWithError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		message = domainErr.Message

		if domainErr.Code == domain.ErrCodeInvalidAmount {
			status = http.StatusBadRequest
		}
	}

	respondWithJSON(w, status, ErrorResponse{Error: message})
}
