package get_slots

import (
	"net/http"
	"time"

	"github.com/m04kA/TennisCourt-BookingService/internal/api/handlers"
	"github.com/m04kA/TennisCourt-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/TennisCourt-BookingService/internal/usecase/get_available_slots"
)

const msgInvalidDate = "invalid date format, expected YYYY-MM-DD"

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /slots?date=YYYY-MM-DD
// Отдает JSON-массив строк "HH:MM". Отсутствующая дата и дата вне окна
// бронирования — пустой массив; битый формат даты — 400.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		handlers.RespondJSON(w, http.StatusOK, []string{})
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /slots - Failed to get slots: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	slots := make([]string, len(result.Slots))
	for i, s := range result.Slots {
		slots[i] = s.String()
	}

	handlers.RespondJSON(w, http.StatusOK, slots)
}
