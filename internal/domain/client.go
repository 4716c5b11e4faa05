package domain

// Client владелец питомцев из ростера площадки
type Client struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Pets  []Pet  `json:"pets"`
}

// Pet принадлежит ровно одному клиенту
type Pet struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species,omitempty"`
	Breed   string `json:"breed,omitempty"`
}

// HasPet true, если питомец принадлежит клиенту
func (c *Client) HasPet(petID string) bool {
	for _, p := range c.Pets {
		if p.ID == petID {
			return true
		}
	}
	return false
}

// Roster клиенты, доступные сессии мастера
type Roster []Client

// Find клиент по ID
func (r Roster) Find(clientID string) (*Client, bool) {
	for i := range r {
		if r[i].ID == clientID {
			return &r[i], true
		}
	}
	return nil, false
}

// Clone глубокая копия ростера
func (r Roster) Clone() Roster {
	if r == nil {
		return nil
	}
	out := make(Roster, len(r))
	for i, c := range r {
		c.Pets = append([]Pet(nil), c.Pets...)
		out[i] = c
	}
	return out
}
