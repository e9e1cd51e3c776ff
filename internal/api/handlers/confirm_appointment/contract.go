package confirm_appointment

import (
	"context"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
)

type AppointmentGateway interface {
	ConfirmAppointment(ctx context.Context, sess *domain.SessionContext, appointmentID string) (*domain.ServerAppointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
