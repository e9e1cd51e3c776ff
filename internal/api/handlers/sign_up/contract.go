package sign_up

import (
	"context"

	"github.com/m04kA/SMC-SalonDashboard/internal/integrations/salonapi"
)

type AuthGateway interface {
	SignUp(ctx context.Context, req salonapi.SignUpRequest) (*salonapi.SignUpResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
