package api

import (
	"net/http"
	"timezone-months-service/internal/api/docs"
	"timezone-months-service/internal/api/handlers"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(svc handlers.MonthEndsComputer, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()

	monthsHandler := &handlers.MonthsHandler{Service: svc}

	mux.Handle("/health", instrument("health", handlers.Health))
	mux.Handle("/months", instrument("months", monthsHandler.Months))
	mux.Handle("/formatted-months", instrument("formatted_months", monthsHandler.FormattedMonths))
	mux.Handle("/api-docs/openapi.json", instrument("api_docs", docs.Handler))
	mux.Handle("/metrics", promhttp.Handler())

	var h http.Handler = mux
	h = securityHeadersMiddleware(h)
	h = corsMiddleware(allowedOrigins)(h)
	h = loggingMiddleware(h)
	h = requestIDMiddleware(h)
	return h
}
