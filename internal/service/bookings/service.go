package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PetCareBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-PetCareBooking/internal/service/bookings/models"
)

// Service сервис для работы с созданными бронированиями
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет ожидающее или подтвержденное бронирование
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Cancel: booking id=%d not found", id)
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", id, booking.Status)
			return ErrCannotCancel
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, id, domain.StatusCancelled); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
		return nil
	})
}
