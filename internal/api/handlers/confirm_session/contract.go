package confirm_session

import (
	"context"

	"github.com/m04kA/SMC-PetCareBooking/internal/service/bookings/models"
)

type SessionService interface {
	Confirm(ctx context.Context, id string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
