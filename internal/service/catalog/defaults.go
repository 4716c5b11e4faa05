package catalog

import "github.com/m04kA/SMC-PetCareBooking/internal/domain"

// DefaultRates встроенный каталог цен
func DefaultRates() domain.RateCatalog {
	return domain.RateCatalog{
		DaycareTypes: []domain.RateOption{
			{ID: "half_day", Name: "Half Day", Price: 25},
			{ID: "full_day", Name: "Full Day", Price: 35},
			{ID: "extended_day", Name: "Extended Day", Price: 45},
		},
		BoardingRooms: []domain.RateOption{
			{ID: "standard", Name: "Standard Room", Price: 45},
			{ID: "deluxe", Name: "Deluxe Room", Price: 60},
			{ID: "luxury", Name: "Luxury Suite", Price: 75},
		},
		GroomingStyles: []domain.RateOption{
			{ID: "bath_brush", Name: "Bath & Brush", Price: 40},
			{ID: "full_groom", Name: "Full Groom", Price: 65},
			{ID: "puppy_groom", Name: "Puppy Groom", Price: 35},
			{ID: "hand_strip", Name: "Hand Strip", Price: 80},
		},
		GroomingAddOns: []domain.RateOption{
			{ID: "nail_trim", Name: "Nail Trim", Price: 15},
			{ID: "teeth_brush", Name: "Teeth Brushing", Price: 10},
			{ID: "ear_cleaning", Name: "Ear Cleaning", Price: 10},
			{ID: "de_shedding", Name: "De-shedding Treatment", Price: 20},
			{ID: "flea_treatment", Name: "Flea Treatment", Price: 25},
		},
		TrainingPrograms: []domain.TrainingProgram{
			{ID: "basic_obedience", Name: "Basic Obedience", Price: 85, Sessions: 6},
			{ID: "puppy_kindergarten", Name: "Puppy Kindergarten", Price: 75, Sessions: 4},
			{ID: "advanced_obedience", Name: "Advanced Obedience", Price: 120, Sessions: 8},
			{ID: "behavior_modification", Name: "Behavior Modification", Price: 150, Sessions: 6},
		},
	}
}

// serviceInfo названия и описания услуг каталога
var serviceInfo = map[domain.ServiceID]domain.ServiceInfo{
	domain.ServiceDaycare: {
		ID:          domain.ServiceDaycare,
		Name:        "Daycare",
		Description: "Supervised day stays on selected dates",
	},
	domain.ServiceBoarding: {
		ID:          domain.ServiceBoarding,
		Name:        "Boarding",
		Description: "Overnight stays with room assignment",
	},
	domain.ServiceGrooming: {
		ID:          domain.ServiceGrooming,
		Name:        "Grooming",
		Description: "Grooming appointment with optional add-ons",
	},
	domain.ServiceTraining: {
		ID:          domain.ServiceTraining,
		Name:        "Training",
		Description: "Training program with a trainer",
	},
	domain.ServiceEvaluation: {
		ID:          domain.ServiceEvaluation,
		Name:        "Evaluation",
		Description: "Temperament evaluation before the first stay",
	},
}
