package confirm_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrNoSlotSelected возвращается, если стартовый слот не выбран
	ErrNoSlotSelected = errors.New("no slot selected")

	// ErrEmptyChain возвращается, если в цепочке нет ни одной услуги
	ErrEmptyChain = errors.New("no services selected")

	// ErrValidationFailed возвращается при некорректных контактных данных
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnauthenticated возвращается, если сессия не содержит токена
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrMissingSalonIdentity возвращается, если токен не содержит салон
	ErrMissingSalonIdentity = errors.New("missing salon identity")

	// ErrBookingFailed возвращается, когда салон отклонил запись.
	// Сообщение сервера доступно через salonapi.MessageOf.
	ErrBookingFailed = errors.New("booking failed")
)
