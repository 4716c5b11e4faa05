package clientdirectory

import (
	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
	"github.com/m04kA/SMC-PetCareBooking/pkg/ptr"
)

// Owner модель клиента из справочника
type Owner struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Pets  []Pet   `json:"pets"`
}

// Pet модель питомца из справочника
type Pet struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Breed   *string `json:"breed"` // null для беспородных
}

// ErrorResponse модель ошибки от справочника
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToRoster конвертирует ответ справочника в доменный ростер
func ToRoster(owners []Owner) domain.Roster {
	roster := make(domain.Roster, 0, len(owners))
	for _, c := range owners {
		client := domain.Client{
			ID:    c.ID,
			Name:  c.Name,
			Email: ptr.Deref(c.Email, ""),
			Phone: ptr.Deref(c.Phone, ""),
			Pets:  make([]domain.Pet, 0, len(c.Pets)),
		}
		for _, p := range c.Pets {
			client.Pets = append(client.Pets, domain.Pet{
				ID:      p.ID,
				Name:    p.Name,
				Species: p.Species,
				Breed:   ptr.Deref(p.Breed, ""),
			})
		}
		roster = append(roster, client)
	}
	return roster
}
