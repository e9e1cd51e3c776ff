package get_public_bill

import (
	"context"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
)

type BillGateway interface {
	FetchPublicBill(ctx context.Context, ulid string) (*domain.Bill, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
