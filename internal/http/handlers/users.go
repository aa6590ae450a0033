package handlers

import (
	"net/http"

	"direct-transport-es/internal/domain"
	"direct-transport-es/internal/logx"
)

// UserHandler serves user registration and the carrier directory.
type UserHandler struct {
	usecase userUsecase
	logger  logx.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(logger logx.Logger, uc userUsecase) *UserHandler {
	return &UserHandler{usecase: uc, logger: logger}
}

// Create handles POST /api/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.UserInput
	if ok := decodeJSON(h.logger, w, r, &in); !ok {
		return
	}

	id, err := h.usecase.CreateUser(r.Context(), in)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, idResponse{ID: id})
}

// ListCarriers handles GET /api/transportistas?province=&vehicle_type=.
func (h *UserHandler) ListCarriers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.usecase.ListCarriers(r.Context(), domain.CarrierFilter{
		Province:    q.Get("province"),
		VehicleType: q.Get("vehicle_type"),
	})
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, carriersToResponse(list))
}
