package add_service

import (
	"context"

	addService "github.com/m04kA/SMC-SalonDashboard/internal/usecase/add_service"
)

type AddServiceUseCase interface {
	Execute(ctx context.Context, req *addService.Request) (*addService.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
