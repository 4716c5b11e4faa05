package domain

// RateOption платное уточнение услуги: тип дня, категория комнаты, стиль или опция груминга
type RateOption struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// TrainingProgram платная программа дрессировки
// Sessions информационное поле, на цену не влияет
type TrainingProgram struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Sessions int     `json:"sessions"`
}

// RateCatalog все таблицы цен площадки
type RateCatalog struct {
	DaycareTypes     []RateOption      `json:"daycareTypes"`
	BoardingRooms    []RateOption      `json:"boardingRooms"`
	GroomingStyles   []RateOption      `json:"groomingStyles"`
	GroomingAddOns   []RateOption      `json:"groomingAddOns"`
	TrainingPrograms []TrainingProgram `json:"trainingPrograms"`
}
