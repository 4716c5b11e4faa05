package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-PetCareBooking/internal/api/handlers"
)

// UserIDHeader заголовок с ID оператора
const UserIDHeader = "X-User-ID"

const msgMissingUserID = "отсутствует заголовок X-User-ID"

type userIDKey struct{}

// Auth требует заголовок X-User-ID и кладет его значение в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(UserIDHeader))
		if userID == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID оператора из контекста
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey{}).(string)
	return userID, ok && userID != ""
}
