package wizard

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
	"github.com/m04kA/SMC-PetCareBooking/pkg/types"
)

// Patch частичное обновление состояния мастера
// nil-поля не меняются. Поля применяются в порядке объявления:
// услуга и даты в одном патче попадают уже в новую форму расписания
type Patch struct {
	Service     *domain.ServiceID
	ServiceType *string

	ClientID *string
	PetIDs   *[]string

	CheckInTime  *types.TimeString
	CheckOutTime *types.TimeString

	// Услуги с одной датой
	Date *time.Time

	// MultiDate: замена всего набора или переключение одного дня
	DaycareDates      *[]domain.DaySchedule
	ToggleDaycareDate *time.Time

	// DateRange: границы и время по дням
	RangeStart  *time.Time
	RangeEnd    *time.Time
	DayOverride *domain.DaySchedule

	RoomAssignment  *domain.RoomAssignment
	RoomAssignments *[]domain.RoomAssignment
	ExtraServices   *[]domain.ExtraService
	FeedingSchedule *[]domain.FeedingScheduleItem
	Medications     *[]domain.MedicationItem

	GroomingStyle  *string
	GroomingAddOns *[]string
	TrainingType   *string
	PreferredStaff *domain.StaffAssignment

	SpecialInstructions *string
	NotifyByEmail       *bool
	NotifyBySMS         *bool
}

// IsEmpty true, если патч ничего не меняет
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// ApplyTo изменяет состояние на месте
// Значения, не подходящие к текущему выбору, игнорируются без ошибки
func (p Patch) ApplyTo(s *State, roster domain.Roster) {
	if p.Service != nil && p.Service.IsValid() {
		s.selectService(*p.Service)
	}
	if p.ServiceType != nil && s.Service != "" {
		s.ServiceType = strings.TrimSpace(*p.ServiceType)
	}

	if p.ClientID != nil {
		s.selectClient(strings.TrimSpace(*p.ClientID))
	}
	if p.PetIDs != nil {
		s.setPets(ownPets(roster, s.ClientID, *p.PetIDs))
	}

	if p.CheckInTime != nil {
		s.CheckInTime = *p.CheckInTime
	}
	if p.CheckOutTime != nil {
		s.CheckOutTime = *p.CheckOutTime
	}

	p.applySchedule(s)

	if p.RoomAssignments != nil {
		s.RoomAssignments = nil
		for _, a := range *p.RoomAssignments {
			s.assignRoom(a)
		}
	}
	if p.RoomAssignment != nil {
		s.assignRoom(*p.RoomAssignment)
	}
	if p.ExtraServices != nil {
		s.ExtraServices = keepExtras(*p.ExtraServices)
	}
	if p.FeedingSchedule != nil {
		s.FeedingSchedule = cloneSlice(*p.FeedingSchedule)
	}
	if p.Medications != nil {
		s.Medications = cloneSlice(*p.Medications)
	}

	if p.GroomingStyle != nil {
		s.GroomingStyle = strings.TrimSpace(*p.GroomingStyle)
	}
	if p.GroomingAddOns != nil {
		s.GroomingAddOns = uniqueStrings(*p.GroomingAddOns)
	}
	if p.TrainingType != nil {
		s.TrainingType = strings.TrimSpace(*p.TrainingType)
	}
	if p.PreferredStaff != nil {
		s.PreferredStaff = *p.PreferredStaff
	}

	if p.SpecialInstructions != nil {
		s.SpecialInstructions = truncateRunes(*p.SpecialInstructions, domain.MaxSpecialInstructionLength)
	}
	if p.NotifyByEmail != nil {
		s.NotifyByEmail = *p.NotifyByEmail
	}
	if p.NotifyBySMS != nil {
		s.NotifyBySMS = *p.NotifyBySMS
	}
}

func (p Patch) applySchedule(s *State) {
	switch sched := s.Schedule.(type) {
	case domain.SingleDate:
		if p.Date != nil {
			sched.Date = domain.DateOnly(*p.Date)
		}
		if p.CheckInTime != nil || sched.CheckInTime.IsZero() {
			sched.CheckInTime = s.CheckInTime
		}
		if p.CheckOutTime != nil || sched.CheckOutTime.IsZero() {
			sched.CheckOutTime = s.CheckOutTime
		}
		s.Schedule = sched

	case domain.MultiDate:
		days := sched.Dates
		if p.DaycareDates != nil {
			days = withDefaultTimes(*p.DaycareDates, s.CheckInTime, s.CheckOutTime)
		}
		if p.ToggleDaycareDate != nil && !p.ToggleDaycareDate.IsZero() {
			days = toggleDay(days, domain.DateOnly(*p.ToggleDaycareDate), s.CheckInTime, s.CheckOutTime)
		}
		s.Schedule = domain.MultiDate{Dates: domain.NormalizeDays(days)}

	case domain.DateRange:
		if p.RangeStart != nil {
			sched.Start = domain.DateOnly(*p.RangeStart)
		}
		if p.RangeEnd != nil {
			sched.End = domain.DateOnly(*p.RangeEnd)
		}
		if p.DayOverride != nil {
			sched.PerDay = overrideDay(sched.PerDay, *p.DayOverride)
		}
		sched.PerDay = domain.BuildPerDay(sched.Start, sched.End, s.CheckInTime, s.CheckOutTime, sched.PerDay)
		s.Schedule = sched
	}
}

// ownPets оставляет только питомцев клиента, если клиент есть в ростере
func ownPets(roster domain.Roster, clientID string, petIDs []string) []string {
	client, ok := roster.Find(clientID)
	if !ok {
		return petIDs
	}
	result := make([]string, 0, len(petIDs))
	for _, id := range petIDs {
		if client.HasPet(id) {
			result = append(result, id)
		}
	}
	return result
}

func withDefaultTimes(days []domain.DaySchedule, checkIn, checkOut types.TimeString) []domain.DaySchedule {
	result := make([]domain.DaySchedule, len(days))
	for i, d := range days {
		if d.CheckInTime.IsZero() {
			d.CheckInTime = checkIn
		}
		if d.CheckOutTime.IsZero() {
			d.CheckOutTime = checkOut
		}
		result[i] = d
	}
	return result
}

func toggleDay(days []domain.DaySchedule, day time.Time, checkIn, checkOut types.TimeString) []domain.DaySchedule {
	result := make([]domain.DaySchedule, 0, len(days)+1)
	removed := false
	for _, d := range days {
		if domain.DateOnly(d.Date).Equal(day) {
			removed = true
			continue
		}
		result = append(result, d)
	}
	if !removed {
		result = append(result, domain.DaySchedule{Date: day, CheckInTime: checkIn, CheckOutTime: checkOut})
	}
	return result
}

func overrideDay(days []domain.DaySchedule, o domain.DaySchedule) []domain.DaySchedule {
	day := domain.DateOnly(o.Date)
	result := cloneSlice(days)
	for i := range result {
		if !result[i].Date.Equal(day) {
			continue
		}
		if !o.CheckInTime.IsZero() {
			result[i].CheckInTime = o.CheckInTime
		}
		if !o.CheckOutTime.IsZero() {
			result[i].CheckOutTime = o.CheckOutTime
		}
	}
	return result
}

func keepExtras(extras []domain.ExtraService) []domain.ExtraService {
	result := make([]domain.ExtraService, 0, len(extras))
	for _, e := range extras {
		if e.ServiceID == "" || e.Quantity <= 0 {
			continue
		}
		if e.Quantity > domain.MaxExtraServiceQuantity {
			e.Quantity = domain.MaxExtraServiceQuantity
		}
		result = append(result, e)
	}
	return result
}

func truncateRunes(v string, limit int) string {
	runes := []rune(v)
	if len(runes) <= limit {
		return v
	}
	return string(runes[:limit])
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	result := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
