package wizard

import (
	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
	"github.com/m04kA/SMC-PetCareBooking/pkg/types"
)

// State все значения, введенные за одну сессию мастера
type State struct {
	Service     domain.ServiceID
	ServiceType string

	ClientID string
	PetIDs   []string

	// Форма Schedule зависит от Service, nil пока услуга не выбрана
	Schedule domain.Schedule

	// Время заезда и выезда, оно же по умолчанию для новых дней
	CheckInTime  types.TimeString
	CheckOutTime types.TimeString

	RoomAssignments []domain.RoomAssignment
	ExtraServices   []domain.ExtraService
	FeedingSchedule []domain.FeedingScheduleItem
	Medications     []domain.MedicationItem

	GroomingStyle  string
	GroomingAddOns []string
	TrainingType   string
	PreferredStaff domain.StaffAssignment

	SpecialInstructions string
	NotifyByEmail       bool
	NotifyBySMS         bool
}

// NewState состояние со значениями по умолчанию
func NewState() *State {
	return &State{
		CheckInTime:   domain.DefaultCheckInTime,
		CheckOutTime:  domain.DefaultCheckOutTime,
		NotifyByEmail: true,
	}
}

// HasClientAndPet true, когда выбран клиент и хотя бы один питомец
func (s *State) HasClientAndPet() bool {
	return s.ClientID != "" && len(s.PetIDs) > 0
}

// HasPet true, если питомец выбран
func (s *State) HasPet(petID string) bool {
	for _, id := range s.PetIDs {
		if id == petID {
			return true
		}
	}
	return false
}

// Clone глубокая копия
func (s *State) Clone() *State {
	c := *s
	c.PetIDs = cloneSlice(s.PetIDs)
	if s.Schedule != nil {
		c.Schedule = s.Schedule.Clone()
	}
	c.RoomAssignments = cloneSlice(s.RoomAssignments)
	c.ExtraServices = cloneSlice(s.ExtraServices)
	c.FeedingSchedule = cloneSlice(s.FeedingSchedule)
	c.Medications = cloneSlice(s.Medications)
	c.GroomingAddOns = cloneSlice(s.GroomingAddOns)
	return &c
}

// selectService меняет услугу, форму расписания и уточнение по умолчанию
func (s *State) selectService(service domain.ServiceID) {
	if service == s.Service {
		return
	}
	s.Service = service
	s.ServiceType = ResolveService(service).DefaultServiceType
	s.Schedule = domain.NewScheduleFor(service)
}

// selectClient меняет клиента, сбрасывая питомцев и комнаты прежнего
func (s *State) selectClient(clientID string) {
	if clientID == s.ClientID {
		return
	}
	s.ClientID = clientID
	s.PetIDs = nil
	s.RoomAssignments = nil
}

// setPets заменяет набор питомцев в порядке первого появления
// Комнаты удаленных питомцев сбрасываются
func (s *State) setPets(petIDs []string) {
	seen := make(map[string]struct{}, len(petIDs))
	pets := make([]string, 0, len(petIDs))
	for _, id := range petIDs {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		pets = append(pets, id)
	}
	s.PetIDs = pets

	rooms := s.RoomAssignments[:0:0]
	for _, r := range s.RoomAssignments {
		if _, ok := seen[r.PetID]; ok {
			rooms = append(rooms, r)
		}
	}
	s.RoomAssignments = rooms
}

// assignRoom назначает комнату выбранному питомцу вместо прежней
func (s *State) assignRoom(a domain.RoomAssignment) {
	if !s.HasPet(a.PetID) {
		return
	}
	for i := range s.RoomAssignments {
		if s.RoomAssignments[i].PetID == a.PetID {
			if a.RoomID == "" {
				s.RoomAssignments = append(s.RoomAssignments[:i], s.RoomAssignments[i+1:]...)
				return
			}
			s.RoomAssignments[i].RoomID = a.RoomID
			return
		}
	}
	if a.RoomID != "" {
		s.RoomAssignments = append(s.RoomAssignments, a)
	}
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
