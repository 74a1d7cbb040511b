package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zencommerce/trexle-payment-service/internal/delivery/http/handlers"
	"github.com/zencommerce/trexle-payment-service/internal/delivery/http/middleware"
)

type RouterDeps struct {
	Payments      *handlers.PaymentHandler
	Cards         *handlers.CardHandler
	Sessions      *handlers.SessionHandler
	Session       *middleware.SessionMiddleware
	StorefrontKey string
}

func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// server-to-server endpoints, authenticated by the storefront key
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireStorefrontKey(deps.StorefrontKey))
		r.Post("/payments/purchase", deps.Payments.Purchase)
		r.Post("/payments/refund", deps.Payments.Refund)
		r.Get("/orders/{orderID}/transactions", deps.Payments.OrderTransactions)
		r.Post("/sessions", deps.Sessions.Create)
	})

	// customer-facing endpoints, gated by an active session
	r.Group(func(r chi.Router) {
		r.Use(deps.Session.RequireCustomer)
		r.Post("/cards", deps.Cards.Store)
		r.Get("/cards", deps.Cards.List)
		r.Delete("/cards/{token}", deps.Cards.Delete)
		r.Post("/cards/delete", deps.Cards.LegacyDelete)
		r.Delete("/sessions", deps.Sessions.Destroy)
	})

	return r
}
