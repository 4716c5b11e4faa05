package wizard

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
	"github.com/m04kA/SMC-PetCareBooking/pkg/types"
)

// Assemble собирает запись бронирования из состояния и расчета цены
// rates дает число занятий программы дрессировки, может быть nil
func Assemble(s *State, facilityID string, quote domain.PriceQuote, rates RateTable) (*domain.BookingData, error) {
	if !s.HasClientAndPet() {
		return nil, ErrMissingClientOrPet
	}

	data := &domain.BookingData{
		ClientID:      s.ClientID,
		PetID:         domain.PetRef(cloneSlice(s.PetIDs)),
		FacilityID:    facilityID,
		Service:       s.Service,
		ServiceType:   outputServiceType(s),
		CheckInTime:   s.CheckInTime,
		CheckOutTime:  s.CheckOutTime,
		Status:        domain.StatusPending,
		BasePrice:     quote.BasePrice,
		Discount:      0,
		TotalCost:     quote.Total,
		PaymentStatus: domain.PaymentPending,
		NotifyByEmail: s.NotifyByEmail,
		NotifyBySMS:   s.NotifyBySMS,
	}

	var start, end time.Time
	switch sched := s.Schedule.(type) {
	case domain.MultiDate:
		if first, ok := sched.First(); ok {
			start = first.Date
		}
		if len(sched.Dates) > 0 {
			data.DaycareDates = cloneSlice(sched.Dates)
		}
	case domain.DateRange:
		start, end = sched.Start, sched.End
		if len(sched.PerDay) > 0 {
			data.BoardingDays = cloneSlice(sched.PerDay)
			data.CheckInTime = sched.PerDay[0].CheckInTime
			data.CheckOutTime = sched.PerDay[len(sched.PerDay)-1].CheckOutTime
		}
	case domain.SingleDate:
		start = sched.Date
		data.CheckInTime = orDefault(sched.CheckInTime, s.CheckInTime)
		data.CheckOutTime = orDefault(sched.CheckOutTime, s.CheckOutTime)
	}
	if end.IsZero() {
		end = start
	}
	data.StartDate, data.EndDate = start, end

	if s.Service.HasSubSteps() && len(s.RoomAssignments) > 0 {
		data.RoomAssignments = cloneSlice(s.RoomAssignments)
	}
	if len(s.FeedingSchedule) > 0 {
		data.FeedingSchedule = cloneSlice(s.FeedingSchedule)
	}
	if len(s.Medications) > 0 {
		data.Medications = cloneSlice(s.Medications)
	}
	if len(s.ExtraServices) > 0 {
		data.ExtraServices = cloneSlice(s.ExtraServices)
	}

	switch s.Service {
	case domain.ServiceGrooming:
		data.GroomingStyle = s.GroomingStyle
		if len(s.GroomingAddOns) > 0 {
			data.GroomingAddOns = cloneSlice(s.GroomingAddOns)
		}
		data.AssignedStaffID = staffID(s.PreferredStaff)
	case domain.ServiceTraining:
		data.TrainingType = s.TrainingType
		if rates != nil {
			if program, ok := rates.TrainingProgram(s.TrainingType); ok {
				data.TrainingSessions = program.Sessions
			}
		}
		data.AssignedStaffID = staffID(s.PreferredStaff)
	}

	data.SpecialInstructions = strings.TrimSpace(s.SpecialInstructions)

	return data, nil
}

// outputServiceType подставляет стиль груминга или программу дрессировки,
// если уточнение услуги не выбрано
func outputServiceType(s *State) string {
	if s.ServiceType != "" {
		return s.ServiceType
	}
	switch s.Service {
	case domain.ServiceGrooming:
		return s.GroomingStyle
	case domain.ServiceTraining:
		return s.TrainingType
	default:
		return ""
	}
}

func staffID(a domain.StaffAssignment) string {
	id, _ := a.StaffID()
	return id
}

func orDefault(t, def types.TimeString) types.TimeString {
	if t.IsZero() {
		return def
	}
	return t
}
