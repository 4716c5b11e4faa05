package previous_step

import (
	"github.com/m04kA/SMC-PetCareBooking/internal/service/sessions/models"
)

type SessionService interface {
	Previous(id string) (*models.SessionView, bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
