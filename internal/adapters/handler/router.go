package handler

import (
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/instprint-backend/internal/adapters/middleware"
	"github.com/DanielPopoola/instprint-backend/internal/config"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts the payment and docs routes behind the middleware chain.
// docs may be nil.
func NewRouter(h *PaymentHandler, docs *DocsHandler, cors config.CORSConfig, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(cors))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusNotFound, ErrorResponse{Error: "not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
	})

	h.RegisterRoutes(r)
	if docs != nil {
		docs.RegisterRoutes(r)
	}

	return r
}
