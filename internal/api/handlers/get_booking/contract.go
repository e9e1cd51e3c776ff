package get_booking

import "github.com/m04kA/SMC-SalonDashboard/internal/service/bookingsession"

type BookingSessions interface {
	Snapshot(sessionID string) bookingsession.State
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
