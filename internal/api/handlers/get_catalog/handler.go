package get_catalog

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-PetCareBooking/internal/api/handlers"
)

const (
	msgMissingFacilityID = "не указан ID площадки"
)

type Handler struct {
	service         CatalogService
	modules         ModuleLoader
	defaultFacility string
	logger          Logger
}

func NewHandler(service CatalogService, modules ModuleLoader, defaultFacility string, logger Logger) *Handler {
	return &Handler{
		service:         service,
		modules:         modules,
		defaultFacility: defaultFacility,
		logger:          logger,
	}
}

// Handle GET /api/v1/catalog
// Query params: facilityId (опционально, по умолчанию площадка из конфигурации)
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID := strings.TrimSpace(r.URL.Query().Get("facilityId"))
	if facilityID == "" {
		facilityID = h.defaultFacility
	}
	if facilityID == "" {
		h.logger.Warn("GET /catalog - Missing facility ID")
		handlers.RespondBadRequest(w, msgMissingFacilityID)
		return
	}

	// Недоступность БД не мешает отдать каталог со значениями из конфигурации
	if err := h.modules.EnsureLoaded(r.Context(), facilityID); err != nil {
		h.logger.Warn("GET /catalog - Module settings unavailable: facility_id=%s, error=%v", facilityID, err)
	}

	response := CatalogResponse{
		FacilityID: facilityID,
		Services:   h.service.Services(facilityID),
		Rates:      h.service.Rates(),
	}

	h.logger.Info("GET /catalog - Catalog retrieved successfully: facility_id=%s", facilityID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
