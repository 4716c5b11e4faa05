package domain

import "github.com/m04kA/SMC-PetCareBooking/pkg/types"

// RoomAssignment комната (вольер, люкс, игровая зона) одного питомца
type RoomAssignment struct {
	PetID  string `json:"petId"`
	RoomID string `json:"roomId"`
}

// ExtraService дополнительная услуга питомцу на время пребывания
type ExtraService struct {
	ServiceID string `json:"serviceId"`
	Quantity  int    `json:"quantity"`
	PetID     string `json:"petId"`
}

// FeedingScheduleItem указание по кормлению питомца в свободной форме
type FeedingScheduleItem struct {
	PetID        string           `json:"petId"`
	Time         types.TimeString `json:"time"`
	FoodType     string           `json:"foodType"`
	Amount       string           `json:"amount"`
	Instructions string           `json:"instructions,omitempty"`
}

// MedicationItem указание по лекарствам питомца в свободной форме
type MedicationItem struct {
	PetID        string           `json:"petId"`
	Name         string           `json:"name"`
	Dosage       string           `json:"dosage"`
	Frequency    string           `json:"frequency"`
	Time         types.TimeString `json:"time"`
	Instructions string           `json:"instructions,omitempty"`
}
