package wizard

import (
	"math"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
)

// PriceInput часть состояния, от которой зависит цена
type PriceInput struct {
	Service        domain.ServiceID
	ServiceType    string
	DayCount       int
	Stay           domain.DateRange
	GroomingStyle  string
	GroomingAddOns []string
	TrainingType   string
}

// PriceInputFrom извлекает входные данные цены из состояния
func PriceInputFrom(s *State) PriceInput {
	in := PriceInput{
		Service:        s.Service,
		ServiceType:    s.ServiceType,
		GroomingStyle:  s.GroomingStyle,
		GroomingAddOns: s.GroomingAddOns,
		TrainingType:   s.TrainingType,
	}
	switch sched := s.Schedule.(type) {
	case domain.MultiDate:
		in.DayCount = len(sched.Dates)
	case domain.DateRange:
		in.Stay = sched
	}
	return in
}

// CalculatePrice считает цену
// Для неизвестных ID берутся цены по умолчанию, rates может быть nil
func CalculatePrice(in PriceInput, rates RateTable) domain.PriceQuote {
	var base float64

	switch in.Service {
	case domain.ServiceDaycare:
		base = lookup(rates, RateTable.DaycareRate, in.ServiceType, domain.DefaultDaycareRate) * float64(in.DayCount)

	case domain.ServiceBoarding:
		rate := lookup(rates, RateTable.BoardingRate, in.ServiceType, domain.DefaultBoardingRate)
		if !in.Stay.IsComplete() {
			base = rate
			break
		}
		base = rate * float64(in.Stay.Nights())

	case domain.ServiceGrooming:
		base = lookup(rates, RateTable.GroomingStyleRate, in.GroomingStyle, domain.DefaultGroomingRate)
		for _, addOn := range in.GroomingAddOns {
			base += lookup(rates, RateTable.GroomingAddOnRate, addOn, 0)
		}

	case domain.ServiceTraining:
		base = domain.DefaultTrainingRate
		if rates != nil {
			if program, ok := rates.TrainingProgram(in.TrainingType); ok {
				base = program.Price
			}
		}
	}

	base = roundCents(base)
	return domain.PriceQuote{BasePrice: base, Total: base}
}

func lookup(rates RateTable, fn func(RateTable, string) (float64, bool), id string, def float64) float64 {
	if rates == nil {
		return def
	}
	if price, ok := fn(rates, id); ok {
		return price
	}
	return def
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
