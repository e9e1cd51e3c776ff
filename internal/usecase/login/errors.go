package login

import "errors"

var (
	// ErrInvalidInput возвращается при пустом телефоне или коде
	ErrInvalidInput = errors.New("invalid input data")

	// ErrVerifyFailed возвращается при неверном коде подтверждения.
	// Сообщение сервера доступно через salonapi.MessageOf.
	ErrVerifyFailed = errors.New("verification failed")

	// ErrInvalidToken возвращается, если выданный токен не удалось разобрать
	ErrInvalidToken = errors.New("invalid token issued")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
