package next_step

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PetCareBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PetCareBooking/internal/service/sessions"
)

const (
	msgNotFound = "сессия не найдена"
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

// Handle POST /api/v1/wizard/sessions/{sessionId}/next
// Если переход невозможен, возвращается 422 с неизмененным представлением
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	view, moved, err := h.service.Next(sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("POST /wizard/sessions/{id}/next - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("POST /wizard/sessions/{id}/next - Failed to move: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	if !moved {
		h.logger.Info("POST /wizard/sessions/{id}/next - Transition refused: session_id=%s, step=%s, sub_step=%d",
			sessionID, view.CurrentStep, view.CurrentSubStep)
		handlers.RespondJSON(w, http.StatusUnprocessableEntity, view)
		return
	}

	h.logger.Info("POST /wizard/sessions/{id}/next - Moved: session_id=%s, step=%s, sub_step=%d",
		sessionID, view.CurrentStep, view.CurrentSubStep)
	handlers.RespondJSON(w, http.StatusOK, view)
}
