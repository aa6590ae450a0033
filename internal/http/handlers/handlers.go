package handlers

import (
	"net/http"

	"direct-transport-es/internal/logx"
)

const bannerMessage = "Direct Transport ES Backend listo"

// Handlers serves the service level endpoints: banner, diagnostics and liveness.
type Handlers struct {
	Logger logx.Logger
	diag   diagnoser
}

// New creates a Handlers instance. A nil logger is replaced with a no-op one.
func New(logger logx.Logger, diag diagnoser) *Handlers {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Handlers{Logger: logger, diag: diag}
}

// Root handles GET / with the readiness banner.
func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, messageResponse{Message: bannerMessage})
}

// Diagnostics handles GET /test. It always answers 200, failures are described in the body.
func (h *Handlers) Diagnostics(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, diagnosticsToResponse(h.diag.Diagnose(r.Context())))
}

// Ping handles GET /ping and returns 200 with {"message":"pong"}.
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, messageResponse{Message: "pong"})
}

// HealthcheckHead handles HEAD /healthcheck and returns 204 No Content.
func (h *Handlers) HealthcheckHead(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// NotFound returns a JSON 404 error for unknown routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(h.Logger, w, r, http.StatusNotFound, "route not found")
}

// MethodNotAllowed returns a JSON 405 error.
func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(h.Logger, w, r, http.StatusMethodNotAllowed, "method not allowed")
}
