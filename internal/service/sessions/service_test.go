package sessions

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
	"github.com/m04kA/SMC-PetCareBooking/internal/integrations/clientdirectory"
	"github.com/m04kA/SMC-PetCareBooking/internal/service/catalog"
	"github.com/m04kA/SMC-PetCareBooking/internal/service/sessions/models"
	"github.com/m04kA/SMC-PetCareBooking/internal/wizard"
	"github.com/m04kA/SMC-PetCareBooking/pkg/logger"
	"github.com/m04kA/SMC-PetCareBooking/pkg/ptr"
)

type stubModules struct {
	disabled map[domain.ServiceID]string
	loadErr  error
}

func (m *stubModules) EnsureLoaded(context.Context, string) error { return m.loadErr }

func (m *stubModules) IsDisabled(_ string, service domain.ServiceID) (bool, string) {
	reason, ok := m.disabled[service]
	return ok, reason
}

type stubRoster struct {
	roster domain.Roster
	err    error
	calls  int
}

func (r *stubRoster) GetRosterWithGracefulDegradation(context.Context, string) (domain.Roster, error) {
	r.calls++
	return r.roster, r.err
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

type fakeRecorder struct {
	mu       sync.Mutex
	opened   int
	closed   map[string]int
	refused  map[string]int
	bookings int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{closed: map[string]int{}, refused: map[string]int{}}
}

func (r *fakeRecorder) SessionOpened() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opened++
}

func (r *fakeRecorder) SessionClosed(outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed[outcome]++
}

func (r *fakeRecorder) TransitionRefused(step string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refused[step]++
}

func (r *fakeRecorder) BookingCreated(string, float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings++
}

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

type fixture struct {
	svc      *Service
	modules  *stubModules
	roster   *stubRoster
	creator  *mockCreator
	recorder *fakeRecorder
	clock    *clock
}

func newFixture() *fixture {
	f := &fixture{
		modules:  &stubModules{disabled: map[domain.ServiceID]string{}},
		roster:   &stubRoster{roster: testRoster()},
		creator:  &mockCreator{},
		recorder: newFakeRecorder(),
		clock:    &clock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
	}
	f.svc = NewService(
		Config{FacilityID: "f1", FacilityName: "Happy Paws", IdleTimeout: 30 * time.Minute},
		catalog.NewService(domain.RateCatalog{}, nil),
		f.modules,
		f.roster,
		f.creator,
		f.recorder,
		logger.NewNop(),
	)
	f.svc.timeProvider = f.clock
	return f
}

func testRoster() domain.Roster {
	return domain.Roster{
		{ID: "c1", Name: "Anna", Pets: []domain.Pet{{ID: "p1", Name: "Rex"}, {ID: "p2", Name: "Bella"}}},
		{ID: "c2", Name: "Boris", Pets: []domain.Pet{{ID: "p3", Name: "Tom"}}},
	}
}

func TestService_OpenWithPreselection(t *testing.T) {
	f := newFixture()

	view, err := f.svc.Open(context.Background(), &models.OpenRequest{
		ClientID: "c1",
		PetID:    "p1",
		Service:  domain.ServiceGrooming,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, view.ID)
	assert.Equal(t, "f1", view.FacilityID)
	assert.Equal(t, "Happy Paws", view.FacilityName)
	assert.Len(t, view.Steps, 3)
	assert.Equal(t, domain.StepDetails, view.CurrentStep)
	assert.Equal(t, []string{"p1"}, view.State.PetIDs)
	assert.Len(t, view.Roster, 2)
	assert.Equal(t, 1, f.roster.calls)
	assert.Equal(t, 1, f.recorder.opened)
	assert.Equal(t, 1, f.svc.Count())
}

func TestService_OpenUsesSuppliedRoster(t *testing.T) {
	f := newFixture()

	view, err := f.svc.Open(context.Background(), &models.OpenRequest{
		Roster: domain.Roster{{ID: "c9", Pets: []domain.Pet{{ID: "p9"}}}},
	})

	require.NoError(t, err)
	assert.Zero(t, f.roster.calls)
	require.Len(t, view.Roster, 1)
	assert.Equal(t, "c9", view.Roster[0].ID)
	assert.Equal(t, domain.StepService, view.CurrentStep)
}

func TestService_OpenDegradedRoster(t *testing.T) {
	f := newFixture()
	f.roster.err = fmt.Errorf("%w: timeout", clientdirectory.ErrServiceDegraded)

	view, err := f.svc.Open(context.Background(), &models.OpenRequest{})

	require.NoError(t, err)
	assert.True(t, view.RosterDegraded)
	assert.Empty(t, view.Roster)
}

func TestService_OpenErrors(t *testing.T) {
	t.Run("unknown facility", func(t *testing.T) {
		f := newFixture()
		f.roster.err = clientdirectory.ErrFacilityNotFound

		_, err := f.svc.Open(context.Background(), &models.OpenRequest{FacilityID: "nope"})
		assert.ErrorIs(t, err, ErrFacilityNotFound)
	})

	t.Run("unknown service", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.Open(context.Background(), &models.OpenRequest{Service: "spa"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("module load failure is tolerated", func(t *testing.T) {
		f := newFixture()
		f.modules.loadErr = errors.New("db down")
		_, err := f.svc.Open(context.Background(), &models.OpenRequest{})
		assert.NoError(t, err)
	})
}

func TestService_DisabledServiceCannotBeSelected(t *testing.T) {
	f := newFixture()
	f.modules.disabled[domain.ServiceBoarding] = "renovation"

	view, err := f.svc.Open(context.Background(), &models.OpenRequest{})
	require.NoError(t, err)

	view, err = f.svc.Apply(view.ID, &models.PatchRequest{Service: ptr.Ptr(domain.ServiceBoarding)})
	require.NoError(t, err)
	assert.Empty(t, view.State.Service)
	assert.False(t, view.CanProceed)
}

func TestService_NavigationAndConfirm(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	view, err := f.svc.Open(ctx, &models.OpenRequest{})
	require.NoError(t, err)
	id := view.ID

	// пустой выбор: переход вперед запрещен
	view, moved, err := f.svc.Next(id)
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, 1, f.recorder.refused[string(domain.StepService)])

	_, err = f.svc.Apply(id, &models.PatchRequest{Service: ptr.Ptr(domain.ServiceGrooming)})
	require.NoError(t, err)
	_, moved, _ = f.svc.Next(id)
	require.True(t, moved)

	_, err = f.svc.Apply(id, &models.PatchRequest{ClientID: ptr.Ptr("c1"), PetIDs: &[]string{"p1", "p2"}})
	require.NoError(t, err)
	_, moved, _ = f.svc.Next(id)
	require.True(t, moved)

	view, err = f.svc.Apply(id, &models.PatchRequest{
		Date:             ptr.Ptr("2026-03-05"),
		GroomingStyle:    ptr.Ptr("full_groom"),
		GroomingAddOns:   &[]string{"nail_trim"},
		PreferredStaffID: ptr.Ptr("s7"),
	})
	require.NoError(t, err)
	assert.Equal(t, 80.0, view.Quote.Total)
	require.NotNil(t, view.State.Schedule)
	assert.Equal(t, "2026-03-05", view.State.Schedule.Date)

	view, moved, _ = f.svc.Next(id)
	require.True(t, moved)
	assert.Equal(t, domain.StepConfirm, view.CurrentStep)

	// на последнем шаге Next не двигается, но это не отказ
	_, moved, _ = f.svc.Next(id)
	assert.False(t, moved)
	assert.Len(t, f.recorder.refused, 1)

	f.creator.On("CreateBooking", mock.Anything, mock.MatchedBy(func(d *domain.BookingData) bool {
		return d.ClientID == "c1" && len(d.PetID) == 2 && d.AssignedStaffID == "s7" && d.TotalCost == 80
	})).Return(&domain.Booking{ID: 42, BookingData: domain.BookingData{Service: domain.ServiceGrooming, TotalCost: 80}}, nil)

	booking, err := f.svc.Confirm(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(42), booking.ID)
	assert.Equal(t, 1, f.recorder.closed[OutcomeConfirmed])
	assert.Equal(t, 1, f.recorder.bookings)

	_, err = f.svc.Get(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	f.creator.AssertExpectations(t)
}

func TestService_ConfirmErrorsKeepSession(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	view, err := f.svc.Open(ctx, &models.OpenRequest{ClientID: "c1", PetID: "p1", Service: domain.ServiceEvaluation})
	require.NoError(t, err)

	_, err = f.svc.Confirm(ctx, view.ID)
	assert.ErrorIs(t, err, wizard.ErrNotAtConfirmation)

	_, err = f.svc.Apply(view.ID, &models.PatchRequest{Date: ptr.Ptr("2026-03-05")})
	require.NoError(t, err)
	_, moved, _ := f.svc.Next(view.ID)
	require.True(t, moved)

	f.creator.On("CreateBooking", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

	_, err = f.svc.Confirm(ctx, view.ID)
	assert.ErrorIs(t, err, wizard.ErrCreateBooking)

	view, err = f.svc.Get(view.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepConfirm, view.CurrentStep)
	assert.Equal(t, "c1", view.State.ClientID)
}

func TestService_PreviousAndCancel(t *testing.T) {
	f := newFixture()

	view, err := f.svc.Open(context.Background(), &models.OpenRequest{Service: domain.ServiceTraining})
	require.NoError(t, err)
	assert.Equal(t, domain.StepClientPet, view.CurrentStep)

	view, moved, err := f.svc.Previous(view.ID)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, domain.StepService, view.CurrentStep)

	_, moved, _ = f.svc.Previous(view.ID)
	assert.False(t, moved)

	require.NoError(t, f.svc.Cancel(view.ID))
	assert.Equal(t, 1, f.recorder.closed[OutcomeCancelled])
	assert.ErrorIs(t, f.svc.Cancel(view.ID), ErrSessionNotFound)
}

func TestService_CancelAfterConcurrentClose(t *testing.T) {
	f := newFixture()
	view, err := f.svc.Open(context.Background(), &models.OpenRequest{Service: domain.ServiceGrooming})
	require.NoError(t, err)

	// сессия закрыта, но запись еще в реестре: Cancel дождался блокировки после Confirm
	e, err := f.svc.lookup(view.ID)
	require.NoError(t, err)
	e.mu.Lock()
	e.session.Cancel()
	e.mu.Unlock()

	assert.ErrorIs(t, f.svc.Cancel(view.ID), ErrSessionNotFound)
	assert.Zero(t, f.recorder.closed[OutcomeCancelled])
}

func TestService_ApplyRejectsMalformedDates(t *testing.T) {
	f := newFixture()
	view, err := f.svc.Open(context.Background(), &models.OpenRequest{})
	require.NoError(t, err)

	_, err = f.svc.Apply(view.ID, &models.PatchRequest{RangeStart: ptr.Ptr("03/05/2026")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.Apply("missing", &models.PatchRequest{})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_IdleSessionsExpireOnOpen(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	stale, err := f.svc.Open(ctx, &models.OpenRequest{})
	require.NoError(t, err)

	f.clock.now = f.clock.now.Add(20 * time.Minute)
	fresh, err := f.svc.Open(ctx, &models.OpenRequest{})
	require.NoError(t, err)

	f.clock.now = f.clock.now.Add(15 * time.Minute)
	_, err = f.svc.Get(fresh.ID)
	require.NoError(t, err)

	_, err = f.svc.Open(ctx, &models.OpenRequest{})
	require.NoError(t, err)

	_, err = f.svc.Get(stale.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = f.svc.Get(fresh.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, f.recorder.closed[OutcomeExpired])
	assert.Equal(t, 2, f.svc.Count())
}

func TestService_ConcurrentSessions(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			view, err := f.svc.Open(ctx, &models.OpenRequest{})
			if !assert.NoError(t, err) {
				return
			}
			_, err = f.svc.Apply(view.ID, &models.PatchRequest{Service: ptr.Ptr(domain.ServiceDaycare)})
			assert.NoError(t, err)
			_, _, err = f.svc.Next(view.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, f.svc.Count())
}
