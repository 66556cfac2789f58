// Package httptransport assembles the HTTP routing table: public token
// endpoints, bearer-guarded phone book endpoints, and operational routes.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhandler "phonebook/internal/auth/handler"
	phonebookhandler "phonebook/internal/phonebook/handler"
	"phonebook/internal/platform/metrics"
	"phonebook/internal/platform/middleware"
	"phonebook/pkg/platform/httputil"
)

// NewRouter wires all endpoints. The oauth routes stay outside the bearer
// middleware: they exist to issue the tokens the middleware verifies.
func NewRouter(
	authHandler *authhandler.Handler,
	phoneBookHandler *phonebookhandler.Handler,
	verifier middleware.TokenVerifier,
	httpMetrics *metrics.HTTP,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(httpMetrics.Middleware)

	// Operational endpoints, no auth.
	r.Get("/healthz", handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Token issuance, explicitly exempt from the bearer check.
	authHandler.Register(r)

	// Everything under /phoneBook requires a valid bearer token.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(verifier, logger))
		phoneBookHandler.Register(r)
	})

	r.NotFound(handleNotFound)
	r.MethodNotAllowed(handleNotFound)

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleNotFound keeps the legacy 404 body for unmatched routes.
func handleNotFound(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusNotFound, map[string]string{
		"message": "The requested route is unsupported.",
	})
}
