package domain

import "time"

// ModuleSetting доступность услуги на площадке
// Отключенная услуга видна в каталоге, но выбрать ее нельзя
type ModuleSetting struct {
	FacilityID string
	Service    ServiceID
	Disabled   bool
	Reason     string
	UpdatedAt  time.Time
}
