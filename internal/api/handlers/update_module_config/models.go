package update_module_config

import (
	"github.com/m04kA/SMC-PetCareBooking/internal/service/modules/models"
)

// UpdateModuleConfigRequest HTTP request model
type UpdateModuleConfigRequest struct {
	Modules []models.UpdateModuleRequest `json:"modules"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateModuleConfigRequest) ToServiceRequest(facilityID string) *models.UpdateModulesRequest {
	return &models.UpdateModulesRequest{
		FacilityID: facilityID,
		Modules:    r.Modules,
	}
}
