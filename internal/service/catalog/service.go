package catalog

import (
	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
)

// Service каталог услуг и цен площадки
// Каталог неизменяем после создания, поэтому безопасен для конкурентного чтения
type Service struct {
	rates   domain.RateCatalog
	modules ModuleChecker

	daycare  map[string]float64
	boarding map[string]float64
	styles   map[string]float64
	addOns   map[string]float64
	training map[string]domain.TrainingProgram
}

// NewService создает каталог из встроенных цен, дополненных overrides
func NewService(overrides domain.RateCatalog, modules ModuleChecker) *Service {
	rates := Merge(DefaultRates(), overrides)

	s := &Service{
		rates:    rates,
		modules:  modules,
		daycare:  priceIndex(rates.DaycareTypes),
		boarding: priceIndex(rates.BoardingRooms),
		styles:   priceIndex(rates.GroomingStyles),
		addOns:   priceIndex(rates.GroomingAddOns),
		training: make(map[string]domain.TrainingProgram, len(rates.TrainingPrograms)),
	}
	for _, p := range rates.TrainingPrograms {
		s.training[p.ID] = p
	}
	return s
}

// Rates возвращает копию таблиц цен
func (s *Service) Rates() domain.RateCatalog {
	return Merge(s.rates, domain.RateCatalog{})
}

// Services возвращает услуги каталога с отметкой об отключении на площадке
func (s *Service) Services(facilityID string) []domain.ServiceInfo {
	result := make([]domain.ServiceInfo, 0, len(domain.AllServices))
	for _, id := range domain.AllServices {
		info := serviceInfo[id]
		if s.modules != nil {
			info.Disabled, info.DisabledReason = s.modules.IsDisabled(facilityID, id)
		}
		result = append(result, info)
	}
	return result
}

// DaycareRate цена дня по типу дневного пребывания
func (s *Service) DaycareRate(serviceType string) (float64, bool) {
	price, ok := s.daycare[serviceType]
	return price, ok
}

// BoardingRate цена ночи по типу комнаты
func (s *Service) BoardingRate(serviceType string) (float64, bool) {
	price, ok := s.boarding[serviceType]
	return price, ok
}

// GroomingStyleRate цена стиля груминга
func (s *Service) GroomingStyleRate(style string) (float64, bool) {
	price, ok := s.styles[style]
	return price, ok
}

// GroomingAddOnRate цена дополнительной опции груминга
func (s *Service) GroomingAddOnRate(addOn string) (float64, bool) {
	price, ok := s.addOns[addOn]
	return price, ok
}

// TrainingProgram программа дрессировки по ID
func (s *Service) TrainingProgram(id string) (domain.TrainingProgram, bool) {
	program, ok := s.training[id]
	return program, ok
}

// Merge накладывает extra на base: совпадающие ID заменяются, новые добавляются в конец
func Merge(base, extra domain.RateCatalog) domain.RateCatalog {
	return domain.RateCatalog{
		DaycareTypes:     mergeOptions(base.DaycareTypes, extra.DaycareTypes),
		BoardingRooms:    mergeOptions(base.BoardingRooms, extra.BoardingRooms),
		GroomingStyles:   mergeOptions(base.GroomingStyles, extra.GroomingStyles),
		GroomingAddOns:   mergeOptions(base.GroomingAddOns, extra.GroomingAddOns),
		TrainingPrograms: mergePrograms(base.TrainingPrograms, extra.TrainingPrograms),
	}
}

func mergeOptions(base, extra []domain.RateOption) []domain.RateOption {
	result := append([]domain.RateOption(nil), base...)
	for _, o := range extra {
		if o.ID == "" {
			continue
		}
		if i := indexOf(result, func(r domain.RateOption) bool { return r.ID == o.ID }); i >= 0 {
			result[i] = o
			continue
		}
		result = append(result, o)
	}
	return result
}

func mergePrograms(base, extra []domain.TrainingProgram) []domain.TrainingProgram {
	result := append([]domain.TrainingProgram(nil), base...)
	for _, p := range extra {
		if p.ID == "" {
			continue
		}
		if i := indexOf(result, func(r domain.TrainingProgram) bool { return r.ID == p.ID }); i >= 0 {
			result[i] = p
			continue
		}
		result = append(result, p)
	}
	return result
}

func indexOf[T any](items []T, match func(T) bool) int {
	for i, item := range items {
		if match(item) {
			return i
		}
	}
	return -1
}

func priceIndex(options []domain.RateOption) map[string]float64 {
	index := make(map[string]float64, len(options))
	for _, o := range options {
		index[o.ID] = o.Price
	}
	return index
}
