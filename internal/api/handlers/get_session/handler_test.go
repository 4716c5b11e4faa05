package get_session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-PetCareBooking/internal/service/sessions"
	"github.com/m04kA/SMC-PetCareBooking/internal/service/sessions/models"
	"github.com/m04kA/SMC-PetCareBooking/pkg/logger"
)

type stubService map[string]*models.SessionView

func (s stubService) Get(id string) (*models.SessionView, error) {
	view, ok := s[id]
	if !ok {
		return nil, sessions.ErrSessionNotFound
	}
	return view, nil
}

func get(h *Handler, id string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/wizard/sessions/{sessionId}", h.Handle).Methods(http.MethodGet)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/wizard/sessions/"+id, nil))
	return w
}

func TestHandle(t *testing.T) {
	h := NewHandler(stubService{"s-1": {ID: "s-1", CanProceed: true}}, logger.NewNop())

	w := get(h, "s-1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"canProceed":true`)

	w = get(h, "s-2")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"сессия не найдена"}`, w.Body.String())
}
