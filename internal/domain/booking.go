package domain

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/m04kA/SMC-PetCareBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// ErrInvalidPetRef petId не строка и не массив строк
var ErrInvalidPetRef = errors.New("domain: petId must be a string or an array of strings")

// PetRef ID питомцев бронирования
// Один питомец сериализуется строкой, иначе массивом
type PetRef []string

// IsScalar true, если питомец ровно один
func (p PetRef) IsScalar() bool {
	return len(p) == 1
}

// IDs копия ID питомцев
func (p PetRef) IDs() []string {
	return append([]string(nil), p...)
}

func (p PetRef) MarshalJSON() ([]byte, error) {
	if p.IsScalar() {
		return json.Marshal(p[0])
	}
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(p))
}

func (p *PetRef) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*p = PetRef{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return ErrInvalidPetRef
	}
	*p = PetRef(many)
	return nil
}

// PriceQuote цена текущего выбора
// Не кэшируется, пересчитывается при каждом чтении
type PriceQuote struct {
	BasePrice float64 `json:"basePrice"`
	Total     float64 `json:"total"`
}

// BookingData нормализованная запись для создания бронирования
// Необязательные поля услуги присутствуют только непустыми
type BookingData struct {
	ClientID      string
	PetID         PetRef
	FacilityID    string
	Service       ServiceID
	ServiceType   string
	StartDate     time.Time
	EndDate       time.Time
	CheckInTime   types.TimeString
	CheckOutTime  types.TimeString
	Status        BookingStatus
	BasePrice     float64
	Discount      float64
	TotalCost     float64
	PaymentStatus PaymentStatus

	DaycareDates        []DaySchedule
	BoardingDays        []DaySchedule
	RoomAssignments     []RoomAssignment
	FeedingSchedule     []FeedingScheduleItem
	Medications         []MedicationItem
	ExtraServices       []ExtraService
	GroomingStyle       string
	GroomingAddOns      []string
	TrainingType        string
	TrainingSessions    int
	AssignedStaffID     string
	SpecialInstructions string

	NotifyByEmail bool
	NotifyBySMS   bool
}

type bookingDataJSON struct {
	ClientID      string           `json:"clientId"`
	PetID         PetRef           `json:"petId"`
	FacilityID    string           `json:"facilityId"`
	Service       ServiceID        `json:"service"`
	ServiceType   string           `json:"serviceType"`
	StartDate     string           `json:"startDate"`
	EndDate       string           `json:"endDate"`
	CheckInTime   types.TimeString `json:"checkInTime"`
	CheckOutTime  types.TimeString `json:"checkOutTime"`
	Status        BookingStatus    `json:"status"`
	BasePrice     float64          `json:"basePrice"`
	Discount      float64          `json:"discount"`
	TotalCost     float64          `json:"totalCost"`
	PaymentStatus PaymentStatus    `json:"paymentStatus"`

	DaycareDates        []DaySchedule         `json:"daycareDates,omitempty"`
	BoardingDays        []DaySchedule         `json:"boardingDays,omitempty"`
	RoomAssignments     []RoomAssignment      `json:"roomAssignments,omitempty"`
	FeedingSchedule     []FeedingScheduleItem `json:"feedingSchedule,omitempty"`
	Medications         []MedicationItem      `json:"medications,omitempty"`
	ExtraServices       []ExtraService        `json:"extraServices,omitempty"`
	GroomingStyle       string                `json:"groomingStyle,omitempty"`
	GroomingAddOns      []string              `json:"groomingAddOns,omitempty"`
	TrainingType        string                `json:"trainingType,omitempty"`
	TrainingSessions    int                   `json:"trainingSessions,omitempty"`
	AssignedStaffID     string                `json:"assignedStaffId,omitempty"`
	SpecialInstructions string                `json:"specialInstructions,omitempty"`

	NotifyByEmail bool `json:"notifyByEmail"`
	NotifyBySMS   bool `json:"notifyBySms"`
}

// MarshalJSON даты в формате YYYY-MM-DD, пустые необязательные поля опускаются
func (b BookingData) MarshalJSON() ([]byte, error) {
	return json.Marshal(bookingDataJSON{
		ClientID:            b.ClientID,
		PetID:               b.PetID,
		FacilityID:          b.FacilityID,
		Service:             b.Service,
		ServiceType:         b.ServiceType,
		StartDate:           FormatDate(b.StartDate),
		EndDate:             FormatDate(b.EndDate),
		CheckInTime:         b.CheckInTime,
		CheckOutTime:        b.CheckOutTime,
		Status:              b.Status,
		BasePrice:           b.BasePrice,
		Discount:            b.Discount,
		TotalCost:           b.TotalCost,
		PaymentStatus:       b.PaymentStatus,
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
		NotifyByEmail:       b.NotifyByEmail,
		NotifyBySMS:         b.NotifyBySMS,
	})
}

// Booking сохраненное бронирование из хранилища
type Booking struct {
	ID int64
	BookingData
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanBeCancelled returns true while the booking is pending or confirmed
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}
