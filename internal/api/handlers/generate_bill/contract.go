package generate_bill

import (
	"context"

	generateBill "github.com/m04kA/SMC-SalonDashboard/internal/usecase/generate_bill"
)

type GenerateBillUseCase interface {
	Execute(ctx context.Context, req *generateBill.Request) (*generateBill.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
