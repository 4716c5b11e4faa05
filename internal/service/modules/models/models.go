package models

import (
	"time"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
)

// Request модели

// UpdateModuleRequest изменение одной услуги
// Поля опциональны - обновляются только переданные значения
type UpdateModuleRequest struct {
	Service  domain.ServiceID `json:"service"`
	Disabled *bool            `json:"disabled,omitempty"`
	Reason   *string          `json:"reason,omitempty"`
}

// UpdateModulesRequest запрос на обновление настроек модулей площадки
type UpdateModulesRequest struct {
	FacilityID string                `json:"facilityId"`
	Modules    []UpdateModuleRequest `json:"modules"`
}

// Response модели

// ModuleResponse состояние одной услуги
type ModuleResponse struct {
	Service   domain.ServiceID `json:"service"`
	Disabled  bool             `json:"disabled"`
	Reason    string           `json:"reason,omitempty"`
	UpdatedAt *time.Time       `json:"updatedAt,omitempty"`
}

// ModulesResponse настройки всех услуг площадки
type ModulesResponse struct {
	FacilityID string           `json:"facilityId"`
	Modules    []ModuleResponse `json:"modules"`
}

// Методы конвертации

// ApplyToSetting применяет изменения к настройке
// Включение услуги сбрасывает причину отключения
func (r *UpdateModuleRequest) ApplyToSetting(setting *domain.ModuleSetting) {
	if r.Disabled != nil {
		setting.Disabled = *r.Disabled
	}
	if r.Reason != nil {
		setting.Reason = *r.Reason
	}
	if !setting.Disabled {
		setting.Reason = ""
	}
}

// FromSettings строит ответ по всем услугам каталога
// Услуги без сохраненной настройки считаются включенными
func FromSettings(facilityID string, settings map[domain.ServiceID]domain.ModuleSetting) *ModulesResponse {
	resp := &ModulesResponse{
		FacilityID: facilityID,
		Modules:    make([]ModuleResponse, 0, len(domain.AllServices)),
	}

	for _, service := range domain.AllServices {
		item := ModuleResponse{Service: service}
		if setting, ok := settings[service]; ok {
			item.Disabled = setting.Disabled
			item.Reason = setting.Reason
			if !setting.UpdatedAt.IsZero() {
				updatedAt := setting.UpdatedAt
				item.UpdatedAt = &updatedAt
			}
		}
		resp.Modules = append(resp.Modules, item)
	}

	return resp
}
