package add_service

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrServiceNotFound возвращается, если услуги нет в каталоге салона
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceNotBookable возвращается для услуги без длительности
	ErrServiceNotBookable = errors.New("service cannot be booked")

	// ErrNoSlotSelected возвращается при добавлении услуги до выбора слота
	ErrNoSlotSelected = errors.New("no slot selected")

	// ErrUnauthenticated возвращается, если сессия не содержит токена
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrMissingSalonIdentity возвращается, если токен не содержит салон
	ErrMissingSalonIdentity = errors.New("missing salon identity")

	// ErrFetchFailed возвращается при ошибке получения каталога
	ErrFetchFailed = errors.New("failed to fetch services")
)
