package wizard

import (
	"context"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
)

// RateTable чтение цен площадки
// false, если ID нет в каталоге
type RateTable interface {
	DaycareRate(serviceType string) (float64, bool)
	BoardingRate(serviceType string) (float64, bool)
	GroomingStyleRate(style string) (float64, bool)
	GroomingAddOnRate(addOn string) (float64, bool)
	TrainingProgram(id string) (domain.TrainingProgram, bool)
}

// ModuleConfig отключенные на площадке услуги
type ModuleConfig interface {
	IsDisabled(service domain.ServiceID) (bool, string)
}

// BookingCreator принимает собранную запись при подтверждении
type BookingCreator interface {
	CreateBooking(ctx context.Context, data *domain.BookingData) (*domain.Booking, error)
}
