package generate_bill

import "errors"

var (
	// ErrInvalidInput возвращается при пустом идентификаторе записи
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBillInProgress возвращается, если счет по записи уже генерируется
	ErrBillInProgress = errors.New("bill generation already in progress")

	// ErrUnauthenticated возвращается, если сессия не содержит токена
	ErrUnauthenticated = errors.New("unauthenticated")
)
