package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// HTTPObserver получатель HTTP метрик (*metrics.Metrics)
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, duration time.Duration)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Metrics собирает метрики запросов с шаблоном маршрута mux в качестве метки
func Metrics(observer HTTPObserver) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			observer.ObserveHTTP(r.Method, routeTemplate(r), rec.status, time.Since(start))
		})
	}
}

// routeTemplate шаблон маршрута, чтобы ID не раздували кардинальность меток
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
