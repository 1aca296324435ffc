package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"bistro/internal/adapter/logger"
	"bistro/internal/interfaces"
)

// NewRouter wires the HTTP surface: public catalog and orders under /api,
// admin catalog CRUD and stats under /api/admin.
func NewRouter(
	catalog interfaces.CatalogService,
	orders interfaces.OrderService,
	stats interfaces.StatsService,
	lgr logger.Logger,
) http.Handler {
	menuHandler := NewMenuHandler(catalog, lgr)
	orderHandler := NewOrderHandler(orders, lgr)
	adminHandler := NewAdminHandler(catalog, stats, lgr)

	r := chi.NewRouter()
	r.Use(LoggingMiddleware(lgr))
	r.Use(RecoveryMiddleware(lgr))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]bool{"alive": true})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/menu", menuHandler.GetMenu)
		r.Get("/menu/{id}", menuHandler.GetMenuItem)

		r.Post("/submit-order", orderHandler.SubmitOrder)
		r.Get("/orders", orderHandler.ListOrders)
		r.Get("/orders/{id}", orderHandler.GetOrder)
		r.Put("/orders/{id}/status", orderHandler.UpdateStatus)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/menu", adminHandler.ListMenu)
			r.Post("/menu", adminHandler.CreateMenuItem)
			r.Put("/menu/{id}", adminHandler.UpdateMenuItem)
			r.Delete("/menu/{id}", adminHandler.DeleteMenuItem)
			r.Get("/stats", adminHandler.GetStats)
		})
	})

	return r
}
