package wizard

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
	"github.com/m04kA/SMC-PetCareBooking/pkg/ptr"
)

type stubRates struct {
	daycare  map[string]float64
	boarding map[string]float64
	styles   map[string]float64
	addOns   map[string]float64
	programs map[string]domain.TrainingProgram
}

func newStubRates() *stubRates {
	return &stubRates{
		daycare:  map[string]float64{"half_day": 25, "full_day": 35, "extended_day": 45},
		boarding: map[string]float64{"standard": 45, "deluxe": 60, "luxury": 75},
		styles:   map[string]float64{"bath_brush": 40, "full_groom": 65, "puppy_groom": 35, "hand_strip": 80},
		addOns:   map[string]float64{"nail_trim": 15, "teeth_brush": 10, "ear_cleaning": 10, "de_shedding": 20, "flea_treatment": 25},
		programs: map[string]domain.TrainingProgram{
			"basic_obedience":    {ID: "basic_obedience", Price: 85, Sessions: 6},
			"puppy_kindergarten": {ID: "puppy_kindergarten", Price: 75, Sessions: 4},
		},
	}
}

func (r *stubRates) DaycareRate(id string) (float64, bool) {
	v, ok := r.daycare[id]
	return v, ok
}

func (r *stubRates) BoardingRate(id string) (float64, bool) {
	v, ok := r.boarding[id]
	return v, ok
}

func (r *stubRates) GroomingStyleRate(id string) (float64, bool) {
	v, ok := r.styles[id]
	return v, ok
}

func (r *stubRates) GroomingAddOnRate(id string) (float64, bool) {
	v, ok := r.addOns[id]
	return v, ok
}

func (r *stubRates) TrainingProgram(id string) (domain.TrainingProgram, bool) {
	p, ok := r.programs[id]
	return p, ok
}

type stubModules map[domain.ServiceID]string

func (m stubModules) IsDisabled(service domain.ServiceID) (bool, string) {
	reason, ok := m[service]
	return ok, reason
}

type mockCreator struct {
	mock.Mock
}

func (m *mockCreator) CreateBooking(ctx context.Context, data *domain.BookingData) (*domain.Booking, error) {
	args := m.Called(ctx, data)
	if b := args.Get(0); b != nil {
		return b.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func day(s string) time.Time {
	t, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func servicePatch(service domain.ServiceID) Patch {
	return Patch{Service: ptr.Ptr(service)}
}

func clientPatch(clientID string, pets ...string) Patch {
	return Patch{ClientID: ptr.Ptr(clientID), PetIDs: ptr.Ptr(pets)}
}

func testRoster() domain.Roster {
	return domain.Roster{
		{ID: "c1", Name: "Ann Lee", Pets: []domain.Pet{{ID: "p1", Name: "Rex"}, {ID: "p2", Name: "Milo"}}},
		{ID: "c2", Name: "Bo Chen", Pets: []domain.Pet{{ID: "p3", Name: "Luna"}}},
	}
}
