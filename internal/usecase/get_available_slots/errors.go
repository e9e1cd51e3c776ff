package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается для даты в прошлом
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrUnauthenticated возвращается, если сессия не содержит токена
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrMissingSalonIdentity возвращается, если токен не содержит салон
	ErrMissingSalonIdentity = errors.New("missing salon identity")

	// ErrFetchFailed возвращается при ошибке получения слотов
	ErrFetchFailed = errors.New("failed to fetch time slots")
)
