package domain

import "github.com/m04kA/SMC-PetCareBooking/pkg/types"

// Цены по умолчанию, если в каталоге нет тарифа
const (
	DefaultDaycareRate  = 35.0
	DefaultBoardingRate = 45.0
	DefaultGroomingRate = 40.0
	DefaultTrainingRate = 85.0
)

// Уточнения услуг по умолчанию
const (
	DefaultDaycareType  = "full_day"
	DefaultBoardingType = "standard"
)

// Константы бизнес-валидации
const (
	MaxDisabledReasonLength     = 200
	MaxSpecialInstructionLength = 1000
	MaxExtraServiceQuantity     = 100
	SubStepsPerService          = 4
)

// Форматы времени и даты
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Время заезда и выезда по умолчанию для новой сессии
var (
	DefaultCheckInTime  = types.MustTimeString("08:00")
	DefaultCheckOutTime = types.MustTimeString("17:00")
)
