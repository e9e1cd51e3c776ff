package get_bill_status

import "github.com/m04kA/SMC-SalonDashboard/internal/service/billstatus"

type StatusTracker interface {
	Snapshot(salonID string) map[string]billstatus.Entry
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
