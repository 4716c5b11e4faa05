package wizard

import "github.com/m04kA/SMC-PetCareBooking/internal/domain"

// Индексы подшагов дневного пребывания и передержки
const (
	subStepDates = iota
	subStepRooms
	subStepCare
	subStepExtras
)

// IsSubStepComplete заполнен ли подшаг шага деталей
// Для услуг без подшагов всегда true
func IsSubStepComplete(s *State, index int) bool {
	switch s.Service {
	case domain.ServiceDaycare:
		switch index {
		case subStepDates:
			days, ok := s.Schedule.(domain.MultiDate)
			return ok && len(days.Dates) > 0
		case subStepRooms:
			return len(s.RoomAssignments) == len(s.PetIDs)
		default:
			return true
		}
	case domain.ServiceBoarding:
		switch index {
		case subStepDates:
			stay, ok := s.Schedule.(domain.DateRange)
			return ok && stay.IsComplete()
		case subStepRooms:
			return len(s.RoomAssignments) == len(s.PetIDs)
		default:
			return true
		}
	default:
		return true
	}
}

// CanProceed разрешен ли переход вперед с текущей позиции
// modules может быть nil, если все услуги включены
func CanProceed(s *State, step domain.StepID, subStep int, modules ModuleConfig) bool {
	switch step {
	case domain.StepService:
		if !s.Service.IsValid() {
			return false
		}
		return !isDisabled(modules, s.Service)
	case domain.StepClientPet:
		return s.HasClientAndPet()
	case domain.StepDetails:
		return isDetailsComplete(s, subStep)
	case domain.StepConfirm:
		return true
	default:
		return false
	}
}

func isDetailsComplete(s *State, subStep int) bool {
	if s.Service.HasSubSteps() {
		return IsSubStepComplete(s, subStep)
	}

	appointment, ok := s.Schedule.(domain.SingleDate)
	if !ok || !appointment.IsSet() {
		return false
	}
	switch s.Service {
	case domain.ServiceGrooming:
		return s.GroomingStyle != ""
	case domain.ServiceTraining:
		return s.TrainingType != ""
	default:
		return true
	}
}

func isDisabled(modules ModuleConfig, service domain.ServiceID) bool {
	if modules == nil {
		return false
	}
	disabled, _ := modules.IsDisabled(service)
	return disabled
}
