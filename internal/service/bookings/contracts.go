package bookings

import (
	"context"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
