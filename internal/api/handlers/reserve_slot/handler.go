package reserve_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/TennisCourt-BookingService/internal/api/handlers"
	reserveSlot "github.com/m04kA/TennisCourt-BookingService/internal/usecase/reserve_slot"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time format"
	msgMissingFields      = "date, time, name, phone and email are required"
	msgDateOutsideWindow  = "date is outside the booking period"
	msgSlotTaken          = "slot already taken"
)

type Handler struct {
	useCase ReserveSlotUseCase
	logger  Logger
}

func NewHandler(useCase ReserveSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /reserve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ReserveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reserve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Пустые date/time отдаём как missing fields, а не как ошибку формата
	if req.Date == "" || req.Time == "" || req.Name == "" || req.Phone == "" || req.Email == "" {
		h.logger.Warn("POST /reserve - Missing required fields")
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reserve - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, reserveSlot.ErrInvalidInput):
			h.logger.Warn("POST /reserve - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, reserveSlot.ErrDateOutsideWindow):
			h.logger.Warn("POST /reserve - Date outside window: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateOutsideWindow)

		case errors.Is(err, reserveSlot.ErrSlotTaken):
			h.logger.Warn("POST /reserve - Slot taken: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgSlotTaken)

		default:
			h.logger.Error("POST /reserve - Failed to reserve: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reserve - Hold created: booking_id=%d, date=%s, time=%s",
		result.BookingID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusOK, ReserveResponse{BookingID: result.BookingID})
}
