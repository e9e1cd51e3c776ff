package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
)

// SalonGateway интерфейс клиента API салона
type SalonGateway interface {
	FetchTimeSlots(ctx context.Context, sess *domain.SessionContext, salonID string, date time.Time) ([]domain.TimeSlot, error)
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
