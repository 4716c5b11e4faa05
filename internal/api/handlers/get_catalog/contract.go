package get_catalog

import (
	"context"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
)

type CatalogService interface {
	Rates() domain.RateCatalog
	Services(facilityID string) []domain.ServiceInfo
}

type ModuleLoader interface {
	EnsureLoaded(ctx context.Context, facilityID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
