package get_module_config

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PetCareBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PetCareBooking/internal/service/modules"
)

const (
	msgInvalidFacilityID = "некорректный ID площадки"
)

type Handler struct {
	service ModuleService
	logger  Logger
}

func NewHandler(service ModuleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/modules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID := mux.Vars(r)["facilityId"]

	result, err := h.service.Get(r.Context(), facilityID)
	if err != nil {
		if errors.Is(err, modules.ErrInvalidInput) {
			h.logger.Warn("GET /facilities/{id}/modules - Invalid facility ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFacilityID)
			return
		}

		h.logger.Error("GET /facilities/{id}/modules - Failed to get modules: facility_id=%s, error=%v",
			facilityID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /facilities/{id}/modules - Modules retrieved successfully: facility_id=%s", facilityID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
