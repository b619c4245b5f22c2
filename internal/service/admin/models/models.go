package models

import (
	"time"

	"github.com/m04kA/TennisCourt-BookingService/internal/domain"
)

// BookingRecord запись бронирования для админского списка.
// Контактные поля отдаются как есть: список доступен только за сессией.
type BookingRecord struct {
	ID            int64      `json:"id"`
	Date          string     `json:"date"`
	StartTime     string     `json:"time"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	Email         string     `json:"email"`
	Paid          bool       `json:"paid"`
	ReservedUntil *time.Time `json:"reservedUntil,omitempty"`
}

// FromDomainBooking конвертирует доменное бронирование в запись
func FromDomainBooking(b *domain.Booking) *BookingRecord {
	return &BookingRecord{
		ID:            b.ID,
		Date:          b.Date.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
		Name:          b.Name,
		Phone:         b.Phone,
		Email:         b.Email,
		Paid:          b.Paid,
		ReservedUntil: b.ReservedUntil,
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) []*BookingRecord {
	records := make([]*BookingRecord, len(bookings))
	for i, b := range bookings {
		records[i] = FromDomainBooking(b)
	}
	return records
}
