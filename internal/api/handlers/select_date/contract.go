package select_date

import (
	"time"

	"github.com/m04kA/SMC-SalonDashboard/internal/service/bookingsession"
)

type BookingSessions interface {
	SelectDate(sessionID string, date time.Time) (bookingsession.State, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
