package booking

import (
	"encoding/json"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
)

// details сервисные поля бронирования, хранящиеся в колонке jsonb
type details struct {
	DaycareDates        []domain.DaySchedule         `json:"daycareDates,omitempty"`
	BoardingDays        []domain.DaySchedule         `json:"boardingDays,omitempty"`
	RoomAssignments     []domain.RoomAssignment      `json:"roomAssignments,omitempty"`
	FeedingSchedule     []domain.FeedingScheduleItem `json:"feedingSchedule,omitempty"`
	Medications         []domain.MedicationItem      `json:"medications,omitempty"`
	ExtraServices       []domain.ExtraService        `json:"extraServices,omitempty"`
	GroomingStyle       string                       `json:"groomingStyle,omitempty"`
	GroomingAddOns      []string                     `json:"groomingAddOns,omitempty"`
	TrainingType        string                       `json:"trainingType,omitempty"`
	TrainingSessions    int                          `json:"trainingSessions,omitempty"`
	AssignedStaffID     string                       `json:"assignedStaffId,omitempty"`
	SpecialInstructions string                       `json:"specialInstructions,omitempty"`
}

func encodeDetails(b *domain.BookingData) ([]byte, error) {
	return json.Marshal(details{
		DaycareDates:        b.DaycareDates,
		BoardingDays:        b.BoardingDays,
		RoomAssignments:     b.RoomAssignments,
		FeedingSchedule:     b.FeedingSchedule,
		Medications:         b.Medications,
		ExtraServices:       b.ExtraServices,
		GroomingStyle:       b.GroomingStyle,
		GroomingAddOns:      b.GroomingAddOns,
		TrainingType:        b.TrainingType,
		TrainingSessions:    b.TrainingSessions,
		AssignedStaffID:     b.AssignedStaffID,
		SpecialInstructions: b.SpecialInstructions,
	})
}

func decodeDetails(raw []byte, b *domain.BookingData) error {
	if len(raw) == 0 {
		return nil
	}
	var d details
	if err := json.Unmarshal(raw, &d); err != nil {
		return err
	}
	b.DaycareDates = d.DaycareDates
	b.BoardingDays = d.BoardingDays
	b.RoomAssignments = d.RoomAssignments
	b.FeedingSchedule = d.FeedingSchedule
	b.Medications = d.Medications
	b.ExtraServices = d.ExtraServices
	b.GroomingStyle = d.GroomingStyle
	b.GroomingAddOns = d.GroomingAddOns
	b.TrainingType = d.TrainingType
	b.TrainingSessions = d.TrainingSessions
	b.AssignedStaffID = d.AssignedStaffID
	b.SpecialInstructions = d.SpecialInstructions
	return nil
}
