package confirm_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
	"github.com/m04kA/SMC-SalonDashboard/internal/integrations/salonapi"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/bookingsession"
)

// SalonGateway интерфейс клиента API салона
type SalonGateway interface {
	CheckAvailability(ctx context.Context, sess *domain.SessionContext, salonID string, date time.Time, totalMinutes int) (*domain.AvailabilityResult, error)
	CreateAppointment(ctx context.Context, sess *domain.SessionContext, salonID string, payload salonapi.CreateAppointmentPayload) (*domain.ServerAppointment, error)
}

// BookingSessions интерфейс хранилища незавершенных записей
type BookingSessions interface {
	Snapshot(sessionID string) bookingsession.State
	ClearIfUnchanged(sessionID string, version uint64) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
