package admin_list_bookings

import (
	"net/http"

	"github.com/m04kA/TennisCourt-BookingService/internal/api/handlers"
)

type Handler struct {
	service AdminService
	logger  Logger
}

func NewHandler(service AdminService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /admin/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.ListBookings(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings - Listed %d bookings", len(records))
	handlers.RespondJSON(w, http.StatusOK, records)
}
