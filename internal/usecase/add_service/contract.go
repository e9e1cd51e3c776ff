package add_service

import (
	"context"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/bookingsession"
)

// ServiceCatalog источник каталога услуг (кэш поверх API салона)
type ServiceCatalog interface {
	FetchSalonServices(ctx context.Context, sess *domain.SessionContext) ([]domain.ServiceOffering, error)
}

// BookingSessions интерфейс хранилища незавершенных записей
type BookingSessions interface {
	AddService(sessionID string, service domain.ServiceOffering) (bookingsession.State, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
