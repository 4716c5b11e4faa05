package get_module_config

import (
	"context"

	"github.com/m04kA/SMC-PetCareBooking/internal/service/modules/models"
)

type ModuleService interface {
	Get(ctx context.Context, facilityID string) (*models.ModulesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
