package cancel_session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-PetCareBooking/internal/service/sessions"
	"github.com/m04kA/SMC-PetCareBooking/pkg/logger"
)

type stubService map[string]bool

func (s stubService) Cancel(id string) error {
	if !s[id] {
		return sessions.ErrSessionNotFound
	}
	delete(s, id)
	return nil
}

func del(h *Handler, id string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/wizard/sessions/{sessionId}", h.Handle).Methods(http.MethodDelete)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/wizard/sessions/"+id, nil))
	return w
}

func TestHandle(t *testing.T) {
	h := NewHandler(stubService{"s-1": true}, logger.NewNop())

	assert.Equal(t, http.StatusNoContent, del(h, "s-1").Code)
	assert.Equal(t, http.StatusNotFound, del(h, "s-1").Code, "a cancelled session is gone")
}
