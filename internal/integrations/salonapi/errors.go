package salonapi

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated возвращается, если в сессии нет bearer токена (до сетевого вызова)
	ErrUnauthenticated = errors.New("salonapi: unauthenticated")

	// ErrMissingSalonIdentity возвращается, если токен не содержит идентификатор салона
	ErrMissingSalonIdentity = errors.New("salonapi: missing salon identity")

	// ErrFetchFailed возвращается при любой транспортной ошибке или некорректном ответе на чтение
	ErrFetchFailed = errors.New("salonapi: fetch failed")

	// ErrBookingFailed возвращается, когда API отклонил создание записи
	ErrBookingFailed = errors.New("salonapi: booking failed")

	// ErrConfirmFailed возвращается, когда API отклонил подтверждение записи
	ErrConfirmFailed = errors.New("salonapi: confirm failed")

	// ErrSignUpFailed возвращается, когда API отклонил регистрацию
	ErrSignUpFailed = errors.New("salonapi: sign up failed")

	// ErrVerifyFailed возвращается при неверном коде или ответе без токена
	ErrVerifyFailed = errors.New("salonapi: verification failed")

	// ErrBillNotFound возвращается, когда счет с указанным ULID не найден
	ErrBillNotFound = errors.New("salonapi: bill not found")

	// ErrInvalidInput возвращается при некорректных аргументах вызова
	ErrInvalidInput = errors.New("salonapi: invalid input")
)

// Сообщения по умолчанию, если API не прислал свое
const (
	msgBookingFailed = "Failed to create appointment. Please try again."
	msgConfirmFailed = "Failed to confirm appointment. Please try again."
	msgSignUpFailed  = "Failed to sign up. Please try again."
	msgVerifyFailed  = "Invalid verification code."
	msgBillFailed    = "Failed to send bill. Please try again."
	msgBillSent      = "Bill sent successfully."
)

// APIError ошибка записи, отклоненной сервером.
// Message показывается пользователю без изменений.
type APIError struct {
	Kind       error
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%v (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Kind
}

// newAPIError создает APIError, подставляя сообщение по умолчанию при пустом серверном
func newAPIError(kind error, status int, serverMessage, fallback string) *APIError {
	msg := serverMessage
	if msg == "" {
		msg = fallback
	}
	return &APIError{Kind: kind, StatusCode: status, Message: msg}
}

// MessageOf извлекает пользовательское сообщение из ошибки шлюза
func MessageOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
