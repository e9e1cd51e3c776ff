package logout

import "errors"

var (
	// ErrInvalidInput возвращается при пустом идентификаторе сессии
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
