package admin_list_bookings

import (
	"context"

	"github.com/m04kA/TennisCourt-BookingService/internal/service/admin/models"
)

type AdminService interface {
	ListBookings(ctx context.Context) ([]*models.BookingRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
