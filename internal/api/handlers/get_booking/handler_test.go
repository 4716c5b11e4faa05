package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-PetCareBooking/internal/api/middleware"
	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
	"github.com/m04kA/SMC-PetCareBooking/internal/service/bookings"
	"github.com/m04kA/SMC-PetCareBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-PetCareBooking/pkg/logger"
)

type stubService map[int64]*models.BookingResponse

func (s stubService) GetByID(_ context.Context, id int64) (*models.BookingResponse, error) {
	if b, ok := s[id]; ok {
		return b, nil
	}
	return nil, bookings.ErrBookingNotFound
}

func get(h *Handler, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.Handle("/api/v1/bookings/{bookingId}", middleware.Auth(http.HandlerFunc(h.Handle))).Methods(http.MethodGet)

	r := httptest.NewRequest(http.MethodGet, path, nil)
	r.Header.Set(middleware.UserIDHeader, "op-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandle(t *testing.T) {
	h := NewHandler(stubService{
		7: {ID: 7, Booking: domain.BookingData{Service: domain.ServiceTraining, Status: domain.StatusPending}},
	}, logger.NewNop())

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"found", "/api/v1/bookings/7", http.StatusOK},
		{"not found", "/api/v1/bookings/8", http.StatusNotFound},
		{"not a number", "/api/v1/bookings/abc", http.StatusBadRequest},
		{"zero", "/api/v1/bookings/0", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(h, tt.path)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
