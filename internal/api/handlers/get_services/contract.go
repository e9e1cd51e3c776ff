package get_services

import (
	"context"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
)

// ServiceCatalog каталог услуг салона (кэш поверх API)
type ServiceCatalog interface {
	FetchSalonServices(ctx context.Context, sess *domain.SessionContext) ([]domain.ServiceOffering, error)
	Invalidate(ctx context.Context, salonID string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
