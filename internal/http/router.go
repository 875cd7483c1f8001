package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/injury-report-service/internal/http/handlers"
	"github.com/preston-bernstein/injury-report-service/internal/http/middleware"
	"github.com/preston-bernstein/injury-report-service/internal/http/requestutil"
	"github.com/preston-bernstein/injury-report-service/internal/metrics"
)

// NewRouter registers HTTP routes with request logging, panic recovery, and any-origin CORS.
func NewRouter(handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(logger, recorder))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestutil.HeaderRequestID},
		ExposedHeaders: []string{requestutil.HeaderRequestID},
		MaxAge:         300,
	}))

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health", handler.Health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/injuries", handler.Injuries)
	})
	return r
}
