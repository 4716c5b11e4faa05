package wizard

import "github.com/m04kA/SMC-PetCareBooking/internal/domain"

// ServiceConfig подшаги и уточнение по умолчанию для услуги
type ServiceConfig struct {
	SubSteps           []domain.SubStep
	DefaultServiceType string
}

// HasSubSteps true, если шаг деталей разбит на подшаги
func (c ServiceConfig) HasSubSteps() bool {
	return len(c.SubSteps) > 0
}

// LastSubStep индекс последнего подшага, 0 без подшагов
func (c ServiceConfig) LastSubStep() int {
	if len(c.SubSteps) == 0 {
		return 0
	}
	return len(c.SubSteps) - 1
}

// ResolveService возвращает конфигурацию услуги
// Каждый вызов строит новое значение
func ResolveService(service domain.ServiceID) ServiceConfig {
	switch service {
	case domain.ServiceDaycare:
		return ServiceConfig{
			SubSteps: subSteps(
				"Dates", "Pick the daycare days",
				"Play Areas", "Assign a play area to each pet",
				"Care Instructions", "Feeding and medication directives",
				"Extras & Notifications", "Extra services, notes and notification preferences",
			),
			DefaultServiceType: domain.DefaultDaycareType,
		}
	case domain.ServiceBoarding:
		return ServiceConfig{
			SubSteps: subSteps(
				"Stay Dates", "Pick check-in and check-out dates",
				"Rooms", "Assign a room to each pet",
				"Care Instructions", "Feeding and medication directives",
				"Extras & Notifications", "Extra services, notes and notification preferences",
			),
			DefaultServiceType: domain.DefaultBoardingType,
		}
	default:
		return ServiceConfig{}
	}
}

// subSteps строит список из пар заголовок/описание
func subSteps(pairs ...string) []domain.SubStep {
	result := make([]domain.SubStep, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		result = append(result, domain.SubStep{
			Index:       i / 2,
			Title:       pairs[i],
			Description: pairs[i+1],
		})
	}
	return result
}
