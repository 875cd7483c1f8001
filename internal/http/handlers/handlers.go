package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/injury-report-service/internal/domain/injuries"
	"github.com/preston-bernstein/injury-report-service/internal/logging"
	"github.com/preston-bernstein/injury-report-service/internal/providers"
)

// Reporter produces the front-end injury report.
type Reporter interface {
	Report(ctx context.Context) ([]injuries.Update, error)
}

// Handler wires HTTP routes to the injury report service.
type Handler struct {
	reports Reporter
	logger  *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(reports Reporter, logger *slog.Logger) *Handler {
	return &Handler{
		reports: reports,
		logger:  logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, loggerFromContext(r, h.logger))
}

// Injuries returns one {id, status} update per roster player.
func (h *Handler) Injuries(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	if h.reports == nil {
		writeProblem(w, nethttp.StatusInternalServerError, errorMessage(providers.KindUpstream), providers.ErrProviderUnavailable.Error(), logger)
		return
	}

	updates, err := h.reports.Report(r.Context())
	if err != nil {
		kind := providers.KindOf(err)
		logging.Error(logger, "failed to build injury report", nil,
			slog.String(logging.FieldErrorKind, string(kind)),
			slog.Any("err", err),
		)
		writeProblem(w, nethttp.StatusInternalServerError, errorMessage(kind), err.Error(), logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, updates, logger)
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", loggerFromContext(r, h.logger))
}

// MethodNotAllowed answers known routes hit with an unsupported method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", loggerFromContext(r, h.logger))
}

func errorMessage(kind providers.Kind) string {
	switch kind {
	case providers.KindConfig:
		return "injury provider is misconfigured"
	case providers.KindDecode:
		return "injury provider returned an unreadable response"
	default:
		return "failed to fetch injuries from provider"
	}
}
