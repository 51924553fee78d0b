//go:generate go tool swag init --generalInfo main.go --dir ./,../../internal/adapters/handler --output ../../internal/docs --outputTypes go

// @title        InstPrint Payments API
// @version      1.0
// @description  Creates Razorpay orders for the InstPrint app and receives payment webhooks.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/instprint-backend/internal/adapters/handler"
	"github.com/DanielPopoola/instprint-backend/internal/adapters/razorpay"
	"github.com/DanielPopoola/instprint-backend/internal/config"
	"github.com/DanielPopoola/instprint-backend/internal/core/service"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("server exited")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting instprint backend",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"razorpay_base_url", cfg.Razorpay.BaseURL,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider := razorpay.NewClient(cfg.Razorpay)

	orderService := service.NewOrderService(provider, cfg.Razorpay.KeyID, logger)
	webhookService := service.NewWebhookService(logger)

	h := handler.NewPaymentHandler(orderService, webhookService, logger)

	docsHandler, err := handler.NewDocsHandler(ctx)
	if err != nil {
		logger.Warn("api docs disabled", "error", err)
	}

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler.NewRouter(h, docsHandler, cfg.CORS, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
			return err
		}
		return nil
	})

	return g.Wait()
}
