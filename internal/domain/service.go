package domain

// ServiceID категория бронирования
type ServiceID string

const (
	ServiceDaycare    ServiceID = "daycare"
	ServiceBoarding   ServiceID = "boarding"
	ServiceGrooming   ServiceID = "grooming"
	ServiceTraining   ServiceID = "training"
	ServiceEvaluation ServiceID = "evaluation"
)

// AllServices услуги в порядке каталога
var AllServices = []ServiceID{
	ServiceDaycare,
	ServiceBoarding,
	ServiceGrooming,
	ServiceTraining,
	ServiceEvaluation,
}

// IsValid true для известных категорий
func (s ServiceID) IsValid() bool {
	for _, known := range AllServices {
		if s == known {
			return true
		}
	}
	return false
}

// HasSubSteps true для услуг с подшагами
func (s ServiceID) HasSubSteps() bool {
	return s == ServiceDaycare || s == ServiceBoarding
}

// UsesSingleDate true для услуг на один день
func (s ServiceID) UsesSingleDate() bool {
	return s == ServiceGrooming || s == ServiceTraining || s == ServiceEvaluation
}

// ServiceInfo запись каталога для оператора
// Отключенная услуга остается в каталоге, но выбрать ее нельзя
type ServiceInfo struct {
	ID             ServiceID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Disabled       bool      `json:"disabled"`
	DisabledReason string    `json:"disabledReason,omitempty"`
}
