package middleware

import (
	"net/http"

	"github.com/DanielPopoola/instprint-backend/internal/config"
	"github.com/go-chi/cors"
)

// CORS lets browser clients on the configured origins call every route.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	})
}
