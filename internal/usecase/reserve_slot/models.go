package reserve_slot

import (
	"time"

	"github.com/m04kA/TennisCourt-BookingService/pkg/types"
)

// Request модель запроса на временное бронирование слота
type Request struct {
	Date      time.Time        // Дата слота
	StartTime types.TimeString // Время начала слота ("18:30")
	Name      string
	Phone     string
	Email     string
}

// Response модель ответа с созданным hold'ом
type Response struct {
	BookingID     int64
	ReservedUntil time.Time // момент истечения hold'а
}
