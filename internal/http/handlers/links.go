package handlers

import (
	"net/http"

	"direct-transport-es/internal/logx"
	"direct-transport-es/internal/service/handoff"
)

// LinkHandler builds chat handoff links.
type LinkHandler struct {
	validator structValidator
	logger    logx.Logger
}

// NewLinkHandler creates a new LinkHandler.
func NewLinkHandler(logger logx.Logger, v structValidator) *LinkHandler {
	return &LinkHandler{validator: v, logger: logger}
}

// WhatsApp handles GET /api/whatsapp-link?name=&phone=&pickup=&dropoff=&date=&item=.
func (h *LinkHandler) WhatsApp(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := handoff.LinkParams{
		Name:    q.Get("name"),
		Phone:   q.Get("phone"),
		Pickup:  q.Get("pickup"),
		Dropoff: q.Get("dropoff"),
		Date:    q.Get("date"),
		Item:    q.Get("item"),
	}
	if err := h.validator.Struct(p); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, urlResponse{URL: handoff.WhatsAppLink(p)})
}
