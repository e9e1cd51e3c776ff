package generate_bill

import (
	"context"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/billstatus"
)

// SalonGateway интерфейс клиента API салона
type SalonGateway interface {
	GenerateBill(ctx context.Context, sess *domain.SessionContext, appointmentID string) (domain.BillResult, error)
}

// StatusTracker состояние генерации счета по записям салона
type StatusTracker interface {
	Begin(salonID, appointmentID string) error
	Succeed(salonID, appointmentID, message string)
	Fail(salonID, appointmentID, message string)
	Get(salonID, appointmentID string) billstatus.Entry
}

// ResultObserver получает итог каждого запроса счета (метрики)
type ResultObserver interface {
	ObserveBillResult(success bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopObserver struct{}

func (noopObserver) ObserveBillResult(bool) {}
