package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"direct-transport-es/internal/domain"
	"direct-transport-es/internal/logx"
)

// RequestHandler serves transport requests and their status updates.
type RequestHandler struct {
	usecase requestUsecase
	logger  logx.Logger
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(logger logx.Logger, uc requestUsecase) *RequestHandler {
	return &RequestHandler{usecase: uc, logger: logger}
}

// Create handles POST /api/requests.
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.RequestInput
	if ok := decodeJSON(h.logger, w, r, &in); !ok {
		return
	}

	id, err := h.usecase.CreateRequest(r.Context(), in)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, idResponse{ID: id})
}

// List handles GET /api/requests?status=&city=.
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.usecase.ListRequests(r.Context(), domain.RequestFilter{
		Status: domain.RequestStatus(q.Get("status")),
		City:   q.Get("city"),
	})
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, requestsToResponse(list))
}

// UpdateStatus handles PATCH /api/requests/{request_id}/status.
func (h *RequestHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body statusUpdateRequest
	if ok := decodeJSON(h.logger, w, r, &body); !ok {
		return
	}
	upd, err := body.toDomain()
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}

	req, err := h.usecase.UpdateRequestStatus(r.Context(), chi.URLParam(r, "request_id"), upd)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, requestToResponse(*req))
}
