package select_slot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/bookingsession"
)

// SalonGateway интерфейс клиента API салона
type SalonGateway interface {
	FetchTimeSlots(ctx context.Context, sess *domain.SessionContext, salonID string, date time.Time) ([]domain.TimeSlot, error)
}

// BookingSessions интерфейс хранилища незавершенных записей
type BookingSessions interface {
	Snapshot(sessionID string) bookingsession.State
	SelectSlot(sessionID string, date time.Time, slot domain.TimeSlot) (bookingsession.State, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
