package classifier

import "errors"

var (
	// ErrUnknownPeriod возвращается для неизвестного названия периода
	ErrUnknownPeriod = errors.New("unknown period")

	// ErrUnknownTab возвращается для неизвестной вкладки
	ErrUnknownTab = errors.New("unknown tab")

	// ErrInvalidRange возвращается для некорректного пользовательского диапазона
	ErrInvalidRange = errors.New("invalid custom range")
)
