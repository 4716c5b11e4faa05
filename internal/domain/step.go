package domain

// StepID идентификатор шага мастера
type StepID string

const (
	StepService   StepID = "service"
	StepClientPet StepID = "client-pet"
	StepDetails   StepID = "details"
	StepConfirm   StepID = "confirm"
)

// Step шаг мастера
type Step struct {
	ID          StepID `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SubStep подшаг внутри шага деталей
type SubStep struct {
	Index       int    `json:"index"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// StepCatalog порядок шагов до учета предвыбора
var StepCatalog = []Step{
	{ID: StepService, Title: "Service", Description: "Choose the type of service"},
	{ID: StepClientPet, Title: "Client & Pets", Description: "Select the client and the pets to book"},
	{ID: StepDetails, Title: "Details", Description: "Configure dates and service options"},
	{ID: StepConfirm, Title: "Confirm", Description: "Review the booking and confirm"},
}
