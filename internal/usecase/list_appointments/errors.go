package list_appointments

import "errors"

var (
	// ErrUnauthenticated возвращается, если сессия не содержит токена
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrMissingSalonIdentity возвращается, если токен не содержит салон
	ErrMissingSalonIdentity = errors.New("missing salon identity")

	// ErrFetchFailed возвращается при ошибке получения записей; запрос можно повторить
	ErrFetchFailed = errors.New("failed to fetch appointments")
)
