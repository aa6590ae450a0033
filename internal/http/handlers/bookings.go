package handlers

import (
	"net/http"

	"direct-transport-es/internal/domain"
	"direct-transport-es/internal/logx"
)

// BookingHandler captures booking intents for manual follow-up.
type BookingHandler struct {
	usecase bookingUsecase
	logger  logx.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(logger logx.Logger, uc bookingUsecase) *BookingHandler {
	return &BookingHandler{usecase: uc, logger: logger}
}

// CreateIntent handles POST /api/bookings/intent.
func (h *BookingHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var in domain.BookingIntentInput
	if ok := decodeJSON(h.logger, w, r, &in); !ok {
		return
	}

	id, err := h.usecase.CreateBookingIntent(r.Context(), in)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, idResponse{ID: id})
}
