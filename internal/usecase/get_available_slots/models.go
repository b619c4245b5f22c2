package get_available_slots

import (
	"time"

	"github.com/m04kA/TennisCourt-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date  time.Time          // Дата, на которую запрашивались слоты
	Slots []types.TimeString // Времена начала свободных слотов, по возрастанию
}
