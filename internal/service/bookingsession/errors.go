package bookingsession

import "errors"

var (
	// ErrNoDateSelected возвращается при выборе слота до выбора даты
	ErrNoDateSelected = errors.New("bookingsession: no date selected")

	// ErrDateChanged возвращается, если слот получен для даты, отличной от выбранной
	ErrDateChanged = errors.New("bookingsession: selected date has changed")

	// ErrSlotUnavailable возвращается при выборе занятого слота
	ErrSlotUnavailable = errors.New("bookingsession: slot is not available")

	// ErrEmptySessionID возвращается для пустого идентификатора сессии
	ErrEmptySessionID = errors.New("bookingsession: empty session id")
)
