package verify

import (
	"context"

	"github.com/m04kA/SMC-SalonDashboard/internal/usecase/login"
)

type LoginUseCase interface {
	Execute(ctx context.Context, req *login.Request) (*login.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
