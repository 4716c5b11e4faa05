package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
	"github.com/m04kA/SMC-PetCareBooking/internal/wizard"
)

type stubModules map[domain.ServiceID]string

func (s stubModules) IsDisabled(_ string, service domain.ServiceID) (bool, string) {
	reason, ok := s[service]
	return ok, reason
}

var _ wizard.RateTable = (*Service)(nil)

func TestService_DefaultRates(t *testing.T) {
	svc := NewService(domain.RateCatalog{}, nil)

	price, ok := svc.DaycareRate(domain.DefaultDaycareType)
	assert.True(t, ok)
	assert.Equal(t, domain.DefaultDaycareRate, price)

	price, ok = svc.BoardingRate(domain.DefaultBoardingType)
	assert.True(t, ok)
	assert.Equal(t, domain.DefaultBoardingRate, price)

	price, ok = svc.GroomingAddOnRate("flea_treatment")
	assert.True(t, ok)
	assert.Equal(t, 25.0, price)

	program, ok := svc.TrainingProgram("advanced_obedience")
	require.True(t, ok)
	assert.Equal(t, 120.0, program.Price)
	assert.Equal(t, 8, program.Sessions)

	_, ok = svc.GroomingStyleRate("mohawk")
	assert.False(t, ok)
}

func TestService_OverridesReplaceAndExtend(t *testing.T) {
	svc := NewService(domain.RateCatalog{
		BoardingRooms: []domain.RateOption{
			{ID: "deluxe", Name: "Deluxe Room", Price: 70},
			{ID: "suite", Name: "Suite", Price: 95},
			{ID: "", Price: 1},
		},
	}, nil)

	price, _ := svc.BoardingRate("deluxe")
	assert.Equal(t, 70.0, price)
	price, ok := svc.BoardingRate("suite")
	assert.True(t, ok)
	assert.Equal(t, 95.0, price)

	rooms := svc.Rates().BoardingRooms
	require.Len(t, rooms, 4)
	assert.Equal(t, "standard", rooms[0].ID)
	assert.Equal(t, "suite", rooms[3].ID)
}

func TestService_RatesReturnsCopy(t *testing.T) {
	svc := NewService(domain.RateCatalog{}, nil)

	rates := svc.Rates()
	rates.DaycareTypes[0].Price = 1000

	assert.NotEqual(t, 1000.0, svc.Rates().DaycareTypes[0].Price)
}

func TestService_ServicesCarryDisabledFlags(t *testing.T) {
	svc := NewService(domain.RateCatalog{}, stubModules{domain.ServiceBoarding: "renovation"})

	services := svc.Services("f1")

	require.Len(t, services, len(domain.AllServices))
	for _, s := range services {
		assert.NotEmpty(t, s.Name)
		if s.ID == domain.ServiceBoarding {
			assert.True(t, s.Disabled)
			assert.Equal(t, "renovation", s.DisabledReason)
			continue
		}
		assert.False(t, s.Disabled)
	}
}

func TestService_PricesThroughWizard(t *testing.T) {
	svc := NewService(domain.RateCatalog{}, nil)

	quote := wizard.CalculatePrice(wizard.PriceInput{
		Service:        domain.ServiceGrooming,
		GroomingStyle:  "full_groom",
		GroomingAddOns: []string{"nail_trim", "teeth_brush"},
	}, svc)

	assert.Equal(t, 90.0, quote.Total)
}
