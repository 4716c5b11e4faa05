package cancel_session

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

// Handle DELETE /api/v1/wizard/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	if err := h.service.Cancel(sessionID); err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("DELETE /wizard/sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("DELETE /wizard/sessions/{id} - Failed to cancel session: session_id=%s, error=%v",
			sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /wizard/sessions/{id} - Session cancelled: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
