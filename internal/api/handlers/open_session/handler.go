package open_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PetCareBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PetCareBooking/internal/service/sessions"
	"github.com/m04kA/SMC-PetCareBooking/internal/service/sessions/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные параметры сессии"
	msgFacilityNotFound   = "площадка не найдена"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard/sessions
// Тело опционально: предварительный выбор и список клиентов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.OpenRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.service.Open(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("POST /wizard/sessions - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, sessions.ErrFacilityNotFound):
			h.logger.Warn("POST /wizard/sessions - Facility not found: facility_id=%s", req.FacilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		default:
			h.logger.Error("POST /wizard/sessions - Failed to open session: facility_id=%s, error=%v",
				req.FacilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/sessions - Session opened successfully: session_id=%s, step=%s",
		view.ID, view.CurrentStep)
	handlers.RespondJSON(w, http.StatusCreated, view)
}
