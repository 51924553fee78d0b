package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/DanielPopoola/instprint-backend/internal/docs"
	"github.com/go-chi/chi/v5"
)

// DocsHandler serves the API description in swagger 2.0 and OpenAPI 3 form.
type DocsHandler struct {
	swagger []byte
	openapi []byte
}

func NewDocsHandler(ctx context.Context) (*DocsHandler, error) {
	swagger, err := docs.Swagger()
	if err != nil {
		return nil, err
	}

	doc, err := docs.OpenAPI3(ctx)
	if err != nil {
		return nil, err
	}

	openapi, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding openapi document: %w", err)
	}

	return &DocsHandler{swagger: swagger, openapi: openapi}, nil
}

func (h *DocsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/swagger/doc.json", h.serve(h.swagger))
	r.Get("/openapi.json", h.serve(h.openapi))
}

func (h *DocsHandler) serve(doc []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(doc)
	}
}
