package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/walletledger/internal/adapter/http/handler"
	"github.com/iho/walletledger/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	WalletHandler      *handler.WalletHandler
	TransactionHandler *handler.TransactionHandler
	HealthHandler      *handler.HealthHandler
	Logger             zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Server Running"))
	})

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Wallets
		r.Route("/wallets", func(r chi.Router) {
			r.Post("/", cfg.WalletHandler.Create)
			r.Get("/", cfg.WalletHandler.List)
			r.Post("/{user_id}/credit", cfg.WalletHandler.Credit)
			r.Post("/{user_id}/debit", cfg.WalletHandler.Debit)
			r.Get("/{user_id}/balance", cfg.WalletHandler.GetBalance)
			r.Get("/{user_id}/transactions", cfg.TransactionHandler.ListByUser)
		})

		// Transactions
		r.Get("/transactions", cfg.TransactionHandler.List)
	})

	return r
}
