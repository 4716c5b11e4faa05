package wizard

import "github.com/m04kA/SMC-PetCareBooking/internal/domain"

// PreselectionContext значения, переданные при открытии сессии
type PreselectionContext struct {
	ClientID string
	PetID    string
	Service  domain.ServiceID
}

// HasClientAndPet true, если заранее выбраны и клиент, и питомец
func (p PreselectionContext) HasClientAndPet() bool {
	return p.ClientID != "" && p.PetID != ""
}

// DisplayedSteps последовательность шагов для предвыбора
// Шаг клиента и питомца пропускается, когда оба выбраны заранее
func DisplayedSteps(p PreselectionContext) []domain.Step {
	steps := make([]domain.Step, 0, len(domain.StepCatalog))
	for _, step := range domain.StepCatalog {
		if step.ID == domain.StepClientPet && p.HasClientAndPet() {
			continue
		}
		steps = append(steps, step)
	}
	return steps
}

// InitialStepIndex позиция первого показываемого шага
func InitialStepIndex(steps []domain.Step, p PreselectionContext) int {
	if !p.Service.IsValid() {
		return 0
	}
	target := domain.StepClientPet
	if p.HasClientAndPet() {
		target = domain.StepDetails
	}
	if i := indexOf(steps, target); i >= 0 {
		return i
	}
	return 0
}

// position текущие шаг и подшаг сессии
type position struct {
	step    int
	subStep int
}

// advance сдвигает на подшаг или шаг вперед
// false на последнем шаге
func (p *position) advance(steps []domain.Step, cfg ServiceConfig) bool {
	if steps[p.step].ID == domain.StepDetails && p.subStep < cfg.LastSubStep() {
		p.subStep++
		return true
	}
	if p.step >= len(steps)-1 {
		return false
	}
	p.step++
	p.subStep = 0
	return true
}

// retreat сдвигает на подшаг или шаг назад
// При возврате на детали позиция встает на последний подшаг
func (p *position) retreat(steps []domain.Step, cfg ServiceConfig) bool {
	if steps[p.step].ID == domain.StepDetails && p.subStep > 0 {
		p.subStep--
		return true
	}
	if p.step == 0 {
		return false
	}
	p.step--
	p.subStep = 0
	if steps[p.step].ID == domain.StepDetails {
		p.subStep = cfg.LastSubStep()
	}
	return true
}

// clamp держит подшаг в границах списка подшагов услуги
func (p *position) clamp(steps []domain.Step, cfg ServiceConfig) {
	if steps[p.step].ID != domain.StepDetails || p.subStep < 0 {
		p.subStep = 0
		return
	}
	if p.subStep > cfg.LastSubStep() {
		p.subStep = cfg.LastSubStep()
	}
}

func indexOf(steps []domain.Step, id domain.StepID) int {
	for i, s := range steps {
		if s.ID == id {
			return i
		}
	}
	return -1
}
