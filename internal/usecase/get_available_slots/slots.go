package get_available_slots

import (
	"time"

	"github.com/m04kA/TennisCourt-BookingService/internal/domain"
	"github.com/m04kA/TennisCourt-BookingService/pkg/types"
)

// generateTimeSlots генерирует все слоты дня для заданных рабочих часов.
// Слоты идут подряд с шагом stepMinutes, начиная с открытия; слот существует,
// пока его время начала строго раньше закрытия (интервал [open, close)).
// Чистая функция: результат зависит только от аргументов.
func generateTimeSlots(hours domain.DayHours, stepMinutes int) ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)

	current := hours.Open
	for current.IsBefore(hours.Close) {
		slots = append(slots, current)

		next, err := current.AddMinutes(stepMinutes)
		if err != nil {
			return nil, err
		}
		current = next
	}

	return slots, nil
}

// subtractBooked убирает из слотов те, на которые есть активное
// (оплаченное или удерживаемое) бронирование на момент now.
// Просроченные hold'ы не блокируют слот, даже если sweep ещё не выполнялся.
func subtractBooked(slots []types.TimeString, bookings []*domain.Booking, now time.Time) []types.TimeString {
	taken := make(map[types.TimeString]struct{}, len(bookings))
	for _, b := range bookings {
		if b.IsActiveAt(now) {
			taken[b.StartTime] = struct{}{}
		}
	}

	available := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if _, ok := taken[slot]; !ok {
			available = append(available, slot)
		}
	}

	return available
}
