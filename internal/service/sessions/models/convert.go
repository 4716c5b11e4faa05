package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
	"github.com/m04kA/SMC-PetCareBooking/internal/wizard"
)

// ToPatch конвертирует запрос в патч мастера
// Возвращает ошибку только для дат в неверном формате
func (r *PatchRequest) ToPatch() (wizard.Patch, error) {
	p := wizard.Patch{
		Service:             r.Service,
		ServiceType:         r.ServiceType,
		ClientID:            r.ClientID,
		PetIDs:              r.PetIDs,
		CheckInTime:         r.CheckInTime,
		CheckOutTime:        r.CheckOutTime,
		DaycareDates:        r.DaycareDates,
		DayOverride:         r.DayOverride,
		RoomAssignment:      r.RoomAssignment,
		RoomAssignments:     r.RoomAssignments,
		ExtraServices:       r.ExtraServices,
		FeedingSchedule:     r.FeedingSchedule,
		Medications:         r.Medications,
		GroomingStyle:       r.GroomingStyle,
		GroomingAddOns:      r.GroomingAddOns,
		TrainingType:        r.TrainingType,
		SpecialInstructions: r.SpecialInstructions,
		NotifyByEmail:       r.NotifyByEmail,
		NotifyBySMS:         r.NotifyBySMS,
	}

	dates := []struct {
		name string
		src  *string
		dst  **time.Time
	}{
		{"date", r.Date, &p.Date},
		{"toggleDaycareDate", r.ToggleDaycareDate, &p.ToggleDaycareDate},
		{"rangeStart", r.RangeStart, &p.RangeStart},
		{"rangeEnd", r.RangeEnd, &p.RangeEnd},
	}
	for _, d := range dates {
		if d.src == nil {
			continue
		}
		parsed, err := domain.ParseDate(*d.src)
		if err != nil {
			return wizard.Patch{}, fmt.Errorf("%s: expected YYYY-MM-DD, got %q", d.name, *d.src)
		}
		*d.dst = &parsed
	}

	if r.PreferredStaffID != nil {
		staff := domain.SpecificStaff(*r.PreferredStaffID)
		p.PreferredStaff = &staff
	}

	return p, nil
}

// FromSession строит представление сессии
func FromSession(id string, s *wizard.Session, degraded bool) *SessionView {
	subSteps := s.SubSteps()
	views := make([]SubStepView, 0, len(subSteps))
	for i, sub := range subSteps {
		views = append(views, SubStepView{SubStep: sub, Complete: s.IsSubStepComplete(i)})
	}

	roster := s.Roster()
	if roster == nil {
		roster = domain.Roster{}
	}

	return &SessionView{
		ID:               id,
		FacilityID:       s.FacilityID(),
		FacilityName:     s.FacilityName(),
		Steps:            s.DisplayedSteps(),
		CurrentStepIndex: s.CurrentStepIndex(),
		CurrentStep:      s.CurrentStep().ID,
		CurrentSubStep:   s.CurrentSubStep(),
		SubSteps:         views,
		CanProceed:       s.CanProceed(),
		Quote:            s.Quote(),
		State:            FromState(s.State()),
		Roster:           roster,
		RosterDegraded:   degraded,
	}
}

// FromState строит представление выбора
func FromState(st *wizard.State) StateView {
	return StateView{
		Service:             st.Service,
		ServiceType:         st.ServiceType,
		ClientID:            st.ClientID,
		PetIDs:              nonNil(st.PetIDs),
		Schedule:            fromSchedule(st.Schedule),
		CheckInTime:         st.CheckInTime,
		CheckOutTime:        st.CheckOutTime,
		RoomAssignments:     nonNil(st.RoomAssignments),
		ExtraServices:       nonNil(st.ExtraServices),
		FeedingSchedule:     nonNil(st.FeedingSchedule),
		Medications:         nonNil(st.Medications),
		GroomingStyle:       st.GroomingStyle,
		GroomingAddOns:      nonNil(st.GroomingAddOns),
		TrainingType:        st.TrainingType,
		PreferredStaff:      st.PreferredStaff,
		SpecialInstructions: st.SpecialInstructions,
		NotifyByEmail:       st.NotifyByEmail,
		NotifyBySMS:         st.NotifyBySMS,
	}
}

func fromSchedule(sched domain.Schedule) *ScheduleView {
	switch v := sched.(type) {
	case domain.SingleDate:
		return &ScheduleView{Kind: v.Kind(), Date: domain.FormatDate(v.Date)}
	case domain.MultiDate:
		return &ScheduleView{Kind: v.Kind(), Dates: v.Dates}
	case domain.DateRange:
		view := &ScheduleView{
			Kind:   v.Kind(),
			Start:  domain.FormatDate(v.Start),
			End:    domain.FormatDate(v.End),
			PerDay: v.PerDay,
		}
		if v.IsComplete() {
			view.Nights = v.Nights()
		}
		return view
	default:
		return nil
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
