package admin_delete_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/TennisCourt-BookingService/internal/api/handlers"
	adminService "github.com/m04kA/TennisCourt-BookingService/internal/service/admin"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgBookingNotFound  = "booking not found"
)

// DeleteResponse HTTP response model
type DeleteResponse struct {
	Success bool `json:"success"`
}

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

// Handle POST /admin/delete/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /admin/delete/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.service.DeleteBooking(r.Context(), bookingID); err != nil {
		if errors.Is(err, adminService.ErrBookingNotFound) {
			h.logger.Warn("POST /admin/delete/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("POST /admin/delete/{id} - Failed to delete booking_id=%d: %v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/delete/{id} - Booking deleted: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, DeleteResponse{Success: true})
}
