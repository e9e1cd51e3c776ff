package billstatus

import "errors"

var (
	// ErrBillInProgress возвращается, если счет по записи уже генерируется
	ErrBillInProgress = errors.New("bill generation already in progress")

	// ErrEmptyAppointmentID возвращается для пустого идентификатора записи
	ErrEmptyAppointmentID = errors.New("appointment id is required")
)
