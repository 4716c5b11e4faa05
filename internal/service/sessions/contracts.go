package sessions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
)

// ModuleSource настройки отключенных услуг площадок
type ModuleSource interface {
	EnsureLoaded(ctx context.Context, facilityID string) error
	IsDisabled(facilityID string, service domain.ServiceID) (bool, string)
}

// RosterSource справочник клиентов площадки
type RosterSource interface {
	GetRosterWithGracefulDegradation(ctx context.Context, facilityID string) (domain.Roster, error)
}

// Recorder метрики жизненного цикла сессий
type Recorder interface {
	SessionOpened()
	SessionClosed(outcome string)
	TransitionRefused(step string)
	BookingCreated(service string, total float64)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
