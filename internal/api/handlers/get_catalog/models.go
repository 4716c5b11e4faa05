package get_catalog

import "github.com/m04kA/SMC-PetCareBooking/internal/domain"

// CatalogResponse HTTP response model
type CatalogResponse struct {
	FacilityID string               `json:"facilityId"`
	Services   []domain.ServiceInfo `json:"services"`
	Rates      domain.RateCatalog   `json:"rates"`
}
