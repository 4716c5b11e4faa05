package wizard

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
)

// Options зависимости и начальные значения новой сессии
type Options struct {
	FacilityID   string
	FacilityName string
	Preselection PreselectionContext
	Roster       domain.Roster

	Rates   RateTable
	Modules ModuleConfig
	Creator BookingCreator
}

// Session один проход мастера бронирования
// Сессия не потокобезопасна: доступ из нескольких горутин сериализует вызывающий
type Session struct {
	facilityID   string
	facilityName string
	roster       domain.Roster

	rates   RateTable
	modules ModuleConfig
	creator BookingCreator

	steps  []domain.Step
	pos    position
	state  *State
	closed bool
}

// NewSession открывает сессию с учетом предвыбора
// Сессия хранит собственную копию ростера
func NewSession(opts Options) *Session {
	s := &Session{
		facilityID:   opts.FacilityID,
		facilityName: opts.FacilityName,
		roster:       opts.Roster.Clone(),
		rates:        opts.Rates,
		modules:      opts.Modules,
		creator:      opts.Creator,
		steps:        DisplayedSteps(opts.Preselection),
		state:        NewState(),
	}

	pre := opts.Preselection
	if isDisabled(opts.Modules, pre.Service) {
		pre.Service = ""
	}
	if pre.Service.IsValid() {
		s.state.selectService(pre.Service)
	}
	if pre.ClientID != "" {
		s.state.selectClient(pre.ClientID)
		if pre.PetID != "" {
			s.state.setPets([]string{pre.PetID})
		}
	}
	s.pos.step = InitialStepIndex(s.steps, pre)

	return s
}

// FacilityID площадка, для которой создается бронирование
func (s *Session) FacilityID() string { return s.facilityID }

// FacilityName название площадки
func (s *Session) FacilityName() string { return s.facilityName }

// Roster копия клиентов, доступных сессии
func (s *Session) Roster() domain.Roster { return s.roster.Clone() }

// IsClosed true после подтверждения или отмены
func (s *Session) IsClosed() bool { return s.closed }

// State копия текущего выбора
func (s *Session) State() *State { return s.state.Clone() }

// DisplayedSteps шаги, зафиксированные при открытии
func (s *Session) DisplayedSteps() []domain.Step {
	return cloneSlice(s.steps)
}

// CurrentStepIndex индекс в DisplayedSteps
func (s *Session) CurrentStepIndex() int { return s.pos.step }

// CurrentStep текущий шаг
func (s *Session) CurrentStep() domain.Step { return s.steps[s.pos.step] }

// CurrentSubStep подшаг внутри деталей, 0 на остальных шагах
func (s *Session) CurrentSubStep() int { return s.pos.subStep }

// SubSteps подшаги выбранной услуги
func (s *Session) SubSteps() []domain.SubStep {
	return ResolveService(s.state.Service).SubSteps
}

// IsSubStepComplete заполнен ли подшаг выбранной услуги
func (s *Session) IsSubStepComplete(index int) bool {
	return IsSubStepComplete(s.state, index)
}

// CanProceed true, если Next сдвинет вперед
func (s *Session) CanProceed() bool {
	return CanProceed(s.state, s.CurrentStep().ID, s.pos.subStep, s.modules)
}

// Quote цена текущего выбора
func (s *Session) Quote() domain.PriceQuote {
	return CalculatePrice(PriceInputFrom(s.state), s.rates)
}

// Apply изменяет выбор
// Смена услуги возвращает на первый подшаг
func (s *Session) Apply(p Patch) error {
	if s.closed {
		return ErrSessionClosed
	}

	before := s.state.Service
	if p.Service != nil && p.Service.IsValid() && isDisabled(s.modules, *p.Service) {
		p.Service = nil
	}
	p.ApplyTo(s.state, s.roster)

	cfg := ResolveService(s.state.Service)
	if s.state.Service != before {
		s.pos.subStep = 0
	}
	s.pos.clamp(s.steps, cfg)
	return nil
}

// Next переходит вперед
// false, если позиция не заполнена, шаг последний или сессия закрыта
func (s *Session) Next() bool {
	if s.closed || !s.CanProceed() {
		return false
	}
	return s.pos.advance(s.steps, ResolveService(s.state.Service))
}

// Previous переходит назад
// false на первом шаге или в закрытой сессии
func (s *Session) Previous() bool {
	if s.closed {
		return false
	}
	return s.pos.retreat(s.steps, ResolveService(s.state.Service))
}

// Assemble собирает запись, которую Confirm передаст в создание
func (s *Session) Assemble() (*domain.BookingData, error) {
	return Assemble(s.state, s.facilityID, s.Quote(), s.rates)
}

// Confirm передает собранную запись в создание, затем сбрасывает и закрывает сессию
// При ошибке создания состояние сохраняется для повтора
func (s *Session) Confirm(ctx context.Context) (*domain.Booking, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	if s.CurrentStep().ID != domain.StepConfirm {
		return nil, ErrNotAtConfirmation
	}

	data, err := s.Assemble()
	if err != nil {
		return nil, err
	}

	if s.creator == nil {
		return nil, fmt.Errorf("%w: no booking creator configured", ErrCreateBooking)
	}
	booking, err := s.creator.CreateBooking(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateBooking, err)
	}

	s.reset()
	return booking, nil
}

// Cancel сбрасывает выбор и закрывает сессию
func (s *Session) Cancel() {
	s.reset()
}

func (s *Session) reset() {
	s.state = NewState()
	s.pos = position{}
	s.closed = true
}
