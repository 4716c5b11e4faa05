package update_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PetCareBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PetCareBooking/internal/service/sessions"
	"github.com/m04kA/SMC-PetCareBooking/internal/service/sessions/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound           = "сессия не найдена"
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

// Handle PATCH /api/v1/wizard/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req models.PatchRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /wizard/sessions/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.service.Apply(sessionID, &req)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PATCH /wizard/sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("PATCH /wizard/sessions/{id} - Invalid data: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("PATCH /wizard/sessions/{id} - Failed to apply patch: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /wizard/sessions/{id} - Session updated: session_id=%s, can_proceed=%t",
		sessionID, view.CanProceed)
	handlers.RespondJSON(w, http.StatusOK, view)
}
