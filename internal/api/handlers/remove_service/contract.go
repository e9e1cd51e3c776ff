package remove_service

import "github.com/m04kA/SMC-SalonDashboard/internal/service/bookingsession"

type BookingSessions interface {
	RemoveService(sessionID, segmentID string) (bookingsession.State, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
