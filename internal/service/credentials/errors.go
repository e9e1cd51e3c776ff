package credentials

import "errors"

var (
	// ErrMalformedToken возвращается, когда payload токена невозможно декодировать
	ErrMalformedToken = errors.New("credentials: malformed token")

	// ErrEmptyToken возвращается для пустого токена
	ErrEmptyToken = errors.New("credentials: empty token")
)
