package clientdirectory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetCareBooking/pkg/logger"
)

func TestClient_GetRoster(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/facilities/f1/clients", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"c1","name":"Anna","email":"anna@example.com","phone":"+100","pets":[{"id":"p1","name":"Rex","species":"dog"}]}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, logger.NewNop())
	roster, err := client.GetRoster(context.Background(), "f1")

	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "Anna", roster[0].Name)
	assert.True(t, roster[0].HasPet("p1"))
	assert.Equal(t, "dog", roster[0].Pets[0].Species)
}

func TestClient_GetRoster_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, logger.NewNop())

	_, err := client.GetRoster(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrFacilityNotFound)

	_, err = client.GetRosterWithGracefulDegradation(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrFacilityNotFound)
	assert.NotErrorIs(t, err, ErrServiceDegraded)
}

func TestClient_GracefulDegradation(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"id":`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(server.URL, time.Second, logger.NewNop())
			roster, err := client.GetRosterWithGracefulDegradation(context.Background(), "f1")

			assert.Nil(t, roster)
			assert.ErrorIs(t, err, ErrServiceDegraded)
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, 200*time.Millisecond, logger.NewNop())
	_, err := client.GetRosterWithGracefulDegradation(context.Background(), "f1")

	assert.ErrorIs(t, err, ErrServiceDegraded)
}
