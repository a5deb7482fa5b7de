package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/waffyhq/waffy-dashboard/internal/http/handlers"
	"github.com/waffyhq/waffy-dashboard/internal/http/ratelimit"
)

func NewRouter(limiter *ratelimit.Registry) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(RateLimitMiddleware(limiter))
		api.Use(AuthMiddleware)

		api.Get("/dashboard", handlers.GetDashboardHandler)
		api.Get("/records/{kind}", handlers.GetRecordsHandler)
		api.Get("/records/{kind}/export", handlers.ExportRecordsHandler)
		api.Put("/orders/{id}/status", handlers.UpdateOrderStatusHandler)
	})

	return r
}
