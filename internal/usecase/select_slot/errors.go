package select_slot

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrNoDateSelected возвращается, если дата записи еще не выбрана
	ErrNoDateSelected = errors.New("no date selected")

	// ErrDateChanged возвращается, если дата записи изменилась во время выбора слота
	ErrDateChanged = errors.New("selected date has changed")

	// ErrSlotNotFound возвращается, если слот не предлагается салоном на выбранную дату
	ErrSlotNotFound = errors.New("slot not found")

	// ErrSlotNotAvailable возвращается для занятого слота
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrUnauthenticated возвращается, если сессия не содержит токена
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrMissingSalonIdentity возвращается, если токен не содержит салон
	ErrMissingSalonIdentity = errors.New("missing salon identity")

	// ErrFetchFailed возвращается при ошибке получения слотов
	ErrFetchFailed = errors.New("failed to fetch time slots")
)
