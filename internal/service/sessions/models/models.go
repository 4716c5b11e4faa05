package models

import (
	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
	"github.com/m04kA/SMC-PetCareBooking/pkg/types"
)

// Request модели

// OpenRequest запрос на открытие сессии мастера
// Все поля опциональны
type OpenRequest struct {
	FacilityID string           `json:"facilityId,omitempty"`
	ClientID   string           `json:"clientId,omitempty"`
	PetID      string           `json:"petId,omitempty"`
	Service    domain.ServiceID `json:"service,omitempty"`
	Roster     domain.Roster    `json:"roster,omitempty"`
}

// PatchRequest частичное изменение выбора
// Даты передаются в формате YYYY-MM-DD, отсутствующие поля не меняются
type PatchRequest struct {
	Service     *domain.ServiceID `json:"service,omitempty"`
	ServiceType *string           `json:"serviceType,omitempty"`

	ClientID *string   `json:"clientId,omitempty"`
	PetIDs   *[]string `json:"petIds,omitempty"`

	CheckInTime  *types.TimeString `json:"checkInTime,omitempty"`
	CheckOutTime *types.TimeString `json:"checkOutTime,omitempty"`

	Date              *string               `json:"date,omitempty"`
	DaycareDates      *[]domain.DaySchedule `json:"daycareDates,omitempty"`
	ToggleDaycareDate *string               `json:"toggleDaycareDate,omitempty"`
	RangeStart        *string               `json:"rangeStart,omitempty"`
	RangeEnd          *string               `json:"rangeEnd,omitempty"`
	DayOverride       *domain.DaySchedule   `json:"dayOverride,omitempty"`

	RoomAssignment  *domain.RoomAssignment        `json:"roomAssignment,omitempty"`
	RoomAssignments *[]domain.RoomAssignment      `json:"roomAssignments,omitempty"`
	ExtraServices   *[]domain.ExtraService        `json:"extraServices,omitempty"`
	FeedingSchedule *[]domain.FeedingScheduleItem `json:"feedingSchedule,omitempty"`
	Medications     *[]domain.MedicationItem      `json:"medications,omitempty"`

	GroomingStyle    *string   `json:"groomingStyle,omitempty"`
	GroomingAddOns   *[]string `json:"groomingAddOns,omitempty"`
	TrainingType     *string   `json:"trainingType,omitempty"`
	PreferredStaffID *string   `json:"preferredStaffId,omitempty"` // пустая строка - любой сотрудник

	SpecialInstructions *string `json:"specialInstructions,omitempty"`
	NotifyByEmail       *bool   `json:"notifyByEmail,omitempty"`
	NotifyBySMS         *bool   `json:"notifyBySms,omitempty"`
}

// Response модели

// SubStepView подшаг с признаком заполненности
type SubStepView struct {
	domain.SubStep
	Complete bool `json:"complete"`
}

// ScheduleView выбранные даты в форме, зависящей от услуги
type ScheduleView struct {
	Kind   domain.ScheduleKind  `json:"kind"`
	Date   string               `json:"date,omitempty"`
	Dates  []domain.DaySchedule `json:"dates,omitempty"`
	Start  string               `json:"start,omitempty"`
	End    string               `json:"end,omitempty"`
	PerDay []domain.DaySchedule `json:"perDay,omitempty"`
	Nights int                  `json:"nights,omitempty"`
}

// StateView текущий выбор сессии
type StateView struct {
	Service     domain.ServiceID `json:"service,omitempty"`
	ServiceType string           `json:"serviceType,omitempty"`
	ClientID    string           `json:"clientId,omitempty"`
	PetIDs      []string         `json:"petIds"`

	Schedule     *ScheduleView    `json:"schedule,omitempty"`
	CheckInTime  types.TimeString `json:"checkInTime"`
	CheckOutTime types.TimeString `json:"checkOutTime"`

	RoomAssignments []domain.RoomAssignment      `json:"roomAssignments"`
	ExtraServices   []domain.ExtraService        `json:"extraServices"`
	FeedingSchedule []domain.FeedingScheduleItem `json:"feedingSchedule"`
	Medications     []domain.MedicationItem      `json:"medications"`

	GroomingStyle  string                 `json:"groomingStyle,omitempty"`
	GroomingAddOns []string               `json:"groomingAddOns"`
	TrainingType   string                 `json:"trainingType,omitempty"`
	PreferredStaff domain.StaffAssignment `json:"preferredStaff"`

	SpecialInstructions string `json:"specialInstructions,omitempty"`
	NotifyByEmail       bool   `json:"notifyByEmail"`
	NotifyBySMS         bool   `json:"notifyBySms"`
}

// SessionView представление сессии мастера
type SessionView struct {
	ID           string `json:"id"`
	FacilityID   string `json:"facilityId"`
	FacilityName string `json:"facilityName,omitempty"`

	Steps            []domain.Step `json:"steps"`
	CurrentStepIndex int           `json:"currentStepIndex"`
	CurrentStep      domain.StepID `json:"currentStep"`
	CurrentSubStep   int           `json:"currentSubStep"`
	SubSteps         []SubStepView `json:"subSteps"`
	CanProceed       bool          `json:"canProceed"`

	Quote  domain.PriceQuote `json:"quote"`
	State  StateView         `json:"state"`
	Roster domain.Roster     `json:"roster"`

	// RosterDegraded выставляется, когда справочник клиентов был недоступен при открытии
	RosterDegraded bool `json:"rosterDegraded,omitempty"`
}
