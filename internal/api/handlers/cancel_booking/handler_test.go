package cancel_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-PetCareBooking/internal/api/middleware"
	"github.com/m04kA/SMC-PetCareBooking/internal/service/bookings"
	"github.com/m04kA/SMC-PetCareBooking/pkg/logger"
)

type stubService struct {
	err error
}

func (s stubService) Cancel(context.Context, int64) error { return s.err }

func patch(h *Handler, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.Handle("/api/v1/bookings/{bookingId}/cancel", middleware.Auth(http.HandlerFunc(h.Handle))).
		Methods(http.MethodPatch)

	r := httptest.NewRequest(http.MethodPatch, path, nil)
	r.Header.Set(middleware.UserIDHeader, "op-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		err        error
		wantStatus int
	}{
		{"cancelled", "/api/v1/bookings/1/cancel", nil, http.StatusOK},
		{"not found", "/api/v1/bookings/1/cancel", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"already cancelled", "/api/v1/bookings/1/cancel", bookings.ErrCannotCancel, http.StatusBadRequest},
		{"storage failure", "/api/v1/bookings/1/cancel", errors.New("deadlock"), http.StatusInternalServerError},
		{"bad id", "/api/v1/bookings/x/cancel", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := patch(NewHandler(stubService{err: tt.err}, logger.NewNop()), tt.path)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
