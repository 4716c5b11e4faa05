package next_step

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
	"github.com/m04kA/SMC-PetCareBooking/internal/service/sessions"
	"github.com/m04kA/SMC-PetCareBooking/internal/service/sessions/models"
	"github.com/m04kA/SMC-PetCareBooking/pkg/logger"
)

type stubService struct {
	view  *models.SessionView
	moved bool
	err   error
}

func (s stubService) Next(string) (*models.SessionView, bool, error) {
	return s.view, s.moved, s.err
}

func post(h *Handler) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/wizard/sessions/{sessionId}/next", h.Handle).Methods(http.MethodPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/wizard/sessions/s-1/next", nil))
	return w
}

func TestHandle_Moved(t *testing.T) {
	view := &models.SessionView{ID: "s-1", CurrentStep: domain.StepClientPet, CurrentStepIndex: 1}
	w := post(NewHandler(stubService{view: view, moved: true}, logger.NewNop()))

	require.Equal(t, http.StatusOK, w.Code)
	var got models.SessionView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, domain.StepClientPet, got.CurrentStep)
}

func TestHandle_RefusedReturnsView(t *testing.T) {
	view := &models.SessionView{ID: "s-1", CurrentStep: domain.StepService, CanProceed: false}
	w := post(NewHandler(stubService{view: view}, logger.NewNop()))

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var got models.SessionView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, domain.StepService, got.CurrentStep)
	assert.False(t, got.CanProceed)
}

func TestHandle_NotFound(t *testing.T) {
	w := post(NewHandler(stubService{err: sessions.ErrSessionNotFound}, logger.NewNop()))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
