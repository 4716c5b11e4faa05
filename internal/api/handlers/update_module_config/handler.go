package update_module_config

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PetCareBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PetCareBooking/internal/api/middleware"
	"github.com/m04kA/SMC-PetCareBooking/internal/service/modules"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidData        = "некорректные данные настроек услуг"
	msgUnknownService     = "неизвестная услуга"
	msgReasonTooLong      = "причина отключения слишком длинная"
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

// Handle PUT /api/v1/facilities/{facilityId}/modules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID := mux.Vars(r)["facilityId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /facilities/{id}/modules - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateModuleConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /facilities/{id}/modules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(facilityID))
	if err != nil {
		switch {
		case errors.Is(err, modules.ErrUnknownService):
			h.logger.Warn("PUT /facilities/{id}/modules - Unknown service: facility_id=%s, error=%v", facilityID, err)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, modules.ErrReasonTooLong):
			h.logger.Warn("PUT /facilities/{id}/modules - Reason too long: facility_id=%s", facilityID)
			handlers.RespondBadRequest(w, msgReasonTooLong)

		case errors.Is(err, modules.ErrInvalidInput):
			h.logger.Warn("PUT /facilities/{id}/modules - Invalid data: facility_id=%s, error=%v", facilityID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /facilities/{id}/modules - Failed to update modules: facility_id=%s, error=%v",
				facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /facilities/{id}/modules - Modules updated successfully: facility_id=%s, user_id=%s",
		facilityID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
