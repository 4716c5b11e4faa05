package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	sessionsOpened    prometheus.Counter
	sessionsClosed    *prometheus.CounterVec
	refusedTransition *prometheus.CounterVec
	bookingsCreated   *prometheus.CounterVec
	bookingTotal      *prometheus.HistogramVec
}

// New создает метрики и регистрирует их в глобальном registry
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном registry
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		sessionsOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "wizard_sessions_opened_total",
			Help:        "Booking wizard sessions opened",
			ConstLabels: constLabels,
		}),
		sessionsClosed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "wizard_sessions_closed_total",
			Help:        "Booking wizard sessions closed, by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		refusedTransition: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "wizard_refused_transitions_total",
			Help:        "Forward navigation attempts refused by completion rules",
			ConstLabels: constLabels,
		}, []string{"step"}),
		bookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Bookings handed to storage",
			ConstLabels: constLabels,
		}, []string{"pet_service"}),
		bookingTotal: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "booking_total_cost",
			Help:        "Total cost of created bookings",
			ConstLabels: constLabels,
			Buckets:     []float64{0, 25, 50, 100, 200, 400, 800, 1600},
		}, []string{"pet_service"}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.sessionsOpened,
		m.sessionsClosed,
		m.refusedTransition,
		m.bookingsCreated,
		m.bookingTotal,
	)

	return m
}

// ObserveHTTP фиксирует выполненный HTTP запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// SessionOpened фиксирует открытие сессии мастера
func (m *Metrics) SessionOpened() {
	m.sessionsOpened.Inc()
}

// SessionClosed фиксирует закрытие сессии (confirmed, cancelled, expired)
func (m *Metrics) SessionClosed(outcome string) {
	m.sessionsClosed.WithLabelValues(outcome).Inc()
}

// TransitionRefused фиксирует отказ в переходе вперед
func (m *Metrics) TransitionRefused(step string) {
	m.refusedTransition.WithLabelValues(step).Inc()
}

// BookingCreated фиксирует созданное бронирование и его стоимость
func (m *Metrics) BookingCreated(service string, total float64) {
	m.bookingsCreated.WithLabelValues(service).Inc()
	m.bookingTotal.WithLabelValues(service).Observe(total)
}
