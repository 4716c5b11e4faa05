package previous_step

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

// Handle POST /api/v1/wizard/sessions/{sessionId}/previous
// На первом шаге ничего не меняется, ответ 200
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	view, moved, err := h.service.Previous(sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("POST /wizard/sessions/{id}/previous - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("POST /wizard/sessions/{id}/previous - Failed to move: session_id=%s, error=%v",
			sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /wizard/sessions/{id}/previous - session_id=%s, moved=%t, step=%s",
		sessionID, moved, view.CurrentStep)
	handlers.RespondJSON(w, http.StatusOK, view)
}
