package update_session

import (
	"github.com/m04kA/SMC-PetCareBooking/internal/service/sessions/models"
)

type SessionService interface {
	Apply(id string, req *models.PatchRequest) (*models.SessionView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
