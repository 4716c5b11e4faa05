package modules

import (
	"context"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
)

// ModuleRepository интерфейс репозитория настроек модулей
type ModuleRepository interface {
	Get(ctx context.Context, facilityID string, service domain.ServiceID) (*domain.ModuleSetting, error)
	ListByFacility(ctx context.Context, facilityID string) ([]*domain.ModuleSetting, error)
	Upsert(ctx context.Context, setting *domain.ModuleSetting) (*domain.ModuleSetting, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
