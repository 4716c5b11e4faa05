package sessions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
	"github.com/m04kA/SMC-PetCareBooking/internal/integrations/clientdirectory"
	bookingModels "github.com/m04kA/SMC-PetCareBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-PetCareBooking/internal/service/sessions/models"
	"github.com/m04kA/SMC-PetCareBooking/internal/wizard"
)

// Исходы закрытия сессии для метрик
const (
	OutcomeConfirmed = "confirmed"
	OutcomeCancelled = "cancelled"
	OutcomeExpired   = "expired"
)

// Config параметры реестра сессий
type Config struct {
	FacilityID   string
	FacilityName string
	IdleTimeout  time.Duration
}

type entry struct {
	mu       sync.Mutex
	session  *wizard.Session
	degraded bool
	lastSeen time.Time // под Service.mu
}

// Service реестр открытых сессий мастера бронирования
// Вызовы одной сессии сериализуются, разные сессии независимы
type Service struct {
	cfg      Config
	rates    wizard.RateTable
	modules  ModuleSource
	roster   RosterSource
	creator  wizard.BookingCreator
	recorder Recorder

	timeProvider TimeProvider
	logger       Logger

	mu       sync.Mutex
	sessions map[string]*entry
}

// NewService создает новый реестр сессий
// roster может быть nil: тогда ростер передается только в запросе на открытие
func NewService(
	cfg Config,
	rates wizard.RateTable,
	modules ModuleSource,
	roster RosterSource,
	creator wizard.BookingCreator,
	recorder Recorder,
	logger Logger,
) *Service {
	return &Service{
		cfg:          cfg,
		rates:        rates,
		modules:      modules,
		roster:       roster,
		creator:      creator,
		recorder:     recorder,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		sessions:     make(map[string]*entry),
	}
}

// Open открывает новую сессию
func (s *Service) Open(ctx context.Context, req *models.OpenRequest) (*models.SessionView, error) {
	s.evictIdle()

	facilityID := strings.TrimSpace(req.FacilityID)
	if facilityID == "" {
		facilityID = s.cfg.FacilityID
	}
	if facilityID == "" {
		return nil, fmt.Errorf("%w: facilityId is required", ErrInvalidInput)
	}

	if req.Service != "" && !req.Service.IsValid() {
		return nil, fmt.Errorf("%w: unknown service %q", ErrInvalidInput, req.Service)
	}

	s.logger.Info("Open: facility=%s, client=%s, pet=%s, service=%s", facilityID, req.ClientID, req.PetID, req.Service)

	if err := s.modules.EnsureLoaded(ctx, facilityID); err != nil {
		// В снимке остаются значения из конфигурации
		s.logger.Warn("Open: module settings unavailable for facility=%s: %v", facilityID, err)
	}

	roster, degraded, err := s.loadRoster(ctx, facilityID, req.Roster)
	if err != nil {
		return nil, err
	}

	facilityName := ""
	if facilityID == s.cfg.FacilityID {
		facilityName = s.cfg.FacilityName
	}

	session := wizard.NewSession(wizard.Options{
		FacilityID:   facilityID,
		FacilityName: facilityName,
		Preselection: wizard.PreselectionContext{
			ClientID: req.ClientID,
			PetID:    req.PetID,
			Service:  req.Service,
		},
		Roster:  roster,
		Rates:   s.rates,
		Modules: facilityModules{source: s.modules, facilityID: facilityID},
		Creator: s.creator,
	})

	id := uuid.NewString()
	e := &entry{session: session, degraded: degraded, lastSeen: s.timeProvider.Now()}

	s.mu.Lock()
	s.sessions[id] = e
	s.mu.Unlock()

	s.recorder.SessionOpened()
	s.logger.Info("Open: opened session id=%s at step=%s", id, session.CurrentStep().ID)

	return models.FromSession(id, session, degraded), nil
}

// Get возвращает текущее представление сессии
func (s *Service) Get(id string) (*models.SessionView, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return models.FromSession(id, e.session, e.degraded), nil
}

// Apply применяет изменения выбора
func (s *Service) Apply(id string, req *models.PatchRequest) (*models.SessionView, error) {
	patch, err := req.ToPatch()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.session.Apply(patch); err != nil {
		if errors.Is(err, wizard.ErrSessionClosed) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: Apply: %v", ErrInternal, err)
	}

	return models.FromSession(id, e.session, e.degraded), nil
}

// Next переходит вперед
// moved=false, если текущий шаг не заполнен или это последний шаг
func (s *Service) Next(id string) (view *models.SessionView, moved bool, err error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, false, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	step := e.session.CurrentStep().ID
	moved = e.session.Next()
	if !moved && !e.session.CanProceed() {
		s.recorder.TransitionRefused(string(step))
		s.logger.Info("Next: refused at step=%s sub-step=%d for session id=%s", step, e.session.CurrentSubStep(), id)
	}

	return models.FromSession(id, e.session, e.degraded), moved, nil
}

// Previous переходит назад
func (s *Service) Previous(id string) (view *models.SessionView, moved bool, err error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, false, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	moved = e.session.Previous()
	return models.FromSession(id, e.session, e.degraded), moved, nil
}

// Confirm собирает и создает бронирование, затем закрывает сессию
// При ошибке создания сессия остается открытой для повтора
func (s *Service) Confirm(ctx context.Context, id string) (*bookingModels.BookingResponse, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	booking, err := e.session.Confirm(ctx)
	if err != nil {
		if errors.Is(err, wizard.ErrSessionClosed) {
			return nil, ErrSessionNotFound
		}
		s.logger.Warn("Confirm: session id=%s not confirmed: %v", id, err)
		return nil, err
	}

	s.remove(id)
	s.recorder.SessionClosed(OutcomeConfirmed)
	s.recorder.BookingCreated(string(booking.Service), booking.TotalCost)
	s.logger.Info("Confirm: session id=%s created booking id=%d", id, booking.ID)

	return bookingModels.FromDomainBooking(booking), nil
}

// Cancel отменяет сессию без создания бронирования
func (s *Service) Cancel(id string) error {
	e, err := s.lookup(id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	if e.session.IsClosed() {
		// сессию уже закрыл параллельный Confirm
		e.mu.Unlock()
		return ErrSessionNotFound
	}
	e.session.Cancel()
	e.mu.Unlock()

	s.remove(id)
	s.recorder.SessionClosed(OutcomeCancelled)
	s.logger.Info("Cancel: session id=%s cancelled", id)
	return nil
}

// Count количество открытых сессий
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Service) loadRoster(ctx context.Context, facilityID string, supplied domain.Roster) (domain.Roster, bool, error) {
	if len(supplied) > 0 || s.roster == nil {
		return supplied, false, nil
	}

	roster, err := s.roster.GetRosterWithGracefulDegradation(ctx, facilityID)
	if err == nil {
		return roster, false, nil
	}
	if errors.Is(err, clientdirectory.ErrServiceDegraded) {
		s.logger.Warn("Open: opening facility=%s with an empty roster: %v", facilityID, err)
		return nil, true, nil
	}
	if errors.Is(err, clientdirectory.ErrFacilityNotFound) {
		return nil, false, fmt.Errorf("%w: %s", ErrFacilityNotFound, facilityID)
	}
	return nil, false, fmt.Errorf("%w: Open - roster: %v", ErrInternal, err)
}

func (s *Service) lookup(id string) (*entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	e.lastSeen = s.timeProvider.Now()
	return e, nil
}

func (s *Service) remove(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// evictIdle удаляет сессии без обращений дольше IdleTimeout
func (s *Service) evictIdle() {
	if s.cfg.IdleTimeout <= 0 {
		return
	}

	now := s.timeProvider.Now()
	expired := 0

	s.mu.Lock()
	for id, e := range s.sessions {
		if now.Sub(e.lastSeen) > s.cfg.IdleTimeout {
			delete(s.sessions, id)
			expired++
		}
	}
	s.mu.Unlock()

	for i := 0; i < expired; i++ {
		s.recorder.SessionClosed(OutcomeExpired)
	}
	if expired > 0 {
		s.logger.Info("evictIdle: expired %d idle sessions", expired)
	}
}

// facilityModules привязывает настройки модулей к площадке сессии
type facilityModules struct {
	source     ModuleSource
	facilityID string
}

func (f facilityModules) IsDisabled(service domain.ServiceID) (bool, string) {
	return f.source.IsDisabled(f.facilityID, service)
}
