package get_session

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

// Handle GET /api/v1/wizard/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	view, err := h.service.Get(sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("GET /wizard/sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("GET /wizard/sessions/{id} - Failed to get session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}
