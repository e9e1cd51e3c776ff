package get_appointments

import (
	"context"

	listAppointments "github.com/m04kA/SMC-SalonDashboard/internal/usecase/list_appointments"
)

type ListAppointmentsUseCase interface {
	Execute(ctx context.Context, req *listAppointments.Request) (*listAppointments.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
