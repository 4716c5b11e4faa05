package confirm_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PetCareBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PetCareBooking/internal/service/sessions"
	createBooking "github.com/m04kA/SMC-PetCareBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-PetCareBooking/internal/wizard"
)

const (
	msgNotFound           = "сессия не найдена"
	msgNotAtConfirmation  = "сессия еще не дошла до шага подтверждения"
	msgMissingClientOrPet = "необходимо выбрать клиента и хотя бы одного питомца"
	msgServiceDisabled    = "услуга отключена на этой площадке"
	msgInvalidBookingDate = "некорректные даты бронирования"
	msgInvalidData        = "некорректные данные бронирования"
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

// Handle POST /api/v1/wizard/sessions/{sessionId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.service.Confirm(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/sessions/{id}/confirm - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, wizard.ErrNotAtConfirmation):
			h.logger.Warn("POST /wizard/sessions/{id}/confirm - Not at confirmation: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgNotAtConfirmation)

		case errors.Is(err, wizard.ErrMissingClientOrPet):
			h.logger.Warn("POST /wizard/sessions/{id}/confirm - Missing client or pet: session_id=%s", sessionID)
			handlers.RespondUnprocessable(w, msgMissingClientOrPet)

		case errors.Is(err, createBooking.ErrServiceDisabled):
			h.logger.Warn("POST /wizard/sessions/{id}/confirm - Service disabled: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgServiceDisabled)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /wizard/sessions/{id}/confirm - Invalid booking date: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondUnprocessable(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /wizard/sessions/{id}/confirm - Invalid booking data: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondUnprocessable(w, msgInvalidData)

		default:
			h.logger.Error("POST /wizard/sessions/{id}/confirm - Failed to create booking: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/sessions/{id}/confirm - Booking created successfully: session_id=%s, booking_id=%d",
		sessionID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
