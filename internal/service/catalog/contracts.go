package catalog

import "github.com/m04kA/SMC-PetCareBooking/internal/domain"

// ModuleChecker источник настроек отключенных услуг
type ModuleChecker interface {
	IsDisabled(facilityID string, service domain.ServiceID) (bool, string)
}
