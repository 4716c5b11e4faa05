package confirm_session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
	"github.com/m04kA/SMC-PetCareBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-PetCareBooking/internal/service/sessions"
	createBooking "github.com/m04kA/SMC-PetCareBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-PetCareBooking/internal/wizard"
	"github.com/m04kA/SMC-PetCareBooking/pkg/logger"
)

type stubService struct {
	resp *models.BookingResponse
	err  error
}

func (s stubService) Confirm(context.Context, string) (*models.BookingResponse, error) {
	return s.resp, s.err
}

func post(h *Handler) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/wizard/sessions/{sessionId}/confirm", h.Handle).Methods(http.MethodPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/wizard/sessions/s-1/confirm", nil))
	return w
}

func TestHandle_Created(t *testing.T) {
	resp := &models.BookingResponse{ID: 42, Booking: domain.BookingData{
		ClientID: "c1",
		PetID:    domain.PetRef{"p1"},
		Service:  domain.ServiceGrooming,
		Status:   domain.StatusPending,
	}}
	w := post(NewHandler(stubService{resp: resp}, logger.NewNop()))

	require.Equal(t, http.StatusCreated, w.Code)
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.JSONEq(t, `42`, string(body["id"]))
	assert.Contains(t, string(body["booking"]), `"petId":"p1"`)
}

func TestHandle_Errors(t *testing.T) {
	wrapCreate := func(err error) error {
		return fmt.Errorf("%w: %w", wizard.ErrCreateBooking, err)
	}

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"session missing", sessions.ErrSessionNotFound, http.StatusNotFound},
		{"not at confirmation", wizard.ErrNotAtConfirmation, http.StatusConflict},
		{"missing client or pet", wizard.ErrMissingClientOrPet, http.StatusUnprocessableEntity},
		{"service disabled", wrapCreate(createBooking.ErrServiceDisabled), http.StatusConflict},
		{"invalid date", wrapCreate(createBooking.ErrInvalidDate), http.StatusUnprocessableEntity},
		{"invalid data", wrapCreate(createBooking.ErrInvalidInput), http.StatusUnprocessableEntity},
		{"storage failure", wrapCreate(errors.New("connection reset")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(NewHandler(stubService{err: tt.err}, logger.NewNop()))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
