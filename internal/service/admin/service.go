package admin

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/TennisCourt-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/TennisCourt-BookingService/internal/service/admin/models"
)

// Service админский сервис работы с бронированиями.
// Контроль доступа (сессия администратора) выполняется на уровне middleware.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр админского сервиса
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// ListBookings возвращает все бронирования, отсортированные по (дата, время)
func (s *Service) ListBookings(ctx context.Context) ([]*models.BookingRecord, error) {
	s.logger.Info("ListBookings: fetching all bookings")

	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBookings: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// DeleteBooking безусловно удаляет бронирование
func (s *Service) DeleteBooking(ctx context.Context, id int64) error {
	s.logger.Info("DeleteBooking: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("DeleteBooking: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("DeleteBooking: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteBooking - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBooking: booking id=%d deleted", id)
	return nil
}
