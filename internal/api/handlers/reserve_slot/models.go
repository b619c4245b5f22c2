package reserve_slot

import (
	"time"

	"github.com/m04kA/TennisCourt-BookingService/internal/domain"
	reserveSlot "github.com/m04kA/TennisCourt-BookingService/internal/usecase/reserve_slot"
	"github.com/m04kA/TennisCourt-BookingService/pkg/types"
)

// ReserveRequest HTTP request model
type ReserveRequest struct {
	Date  string `json:"date"` // "2026-05-10"
	Time  string `json:"time"` // "18:30"
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// ReserveResponse HTTP response model
type ReserveResponse struct {
	BookingID int64 `json:"booking_id"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReserveRequest) ToUseCaseRequest() (*reserveSlot.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &reserveSlot.Request{
		Date:      date,
		StartTime: startTime,
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
	}, nil
}
