package slotchain

import "errors"

var (
	// ErrNoSlotSelected возвращается при попытке добавить услугу до выбора слота
	ErrNoSlotSelected = errors.New("no slot selected")

	// ErrSegmentNotFound возвращается, когда сегмент с указанным ID отсутствует в цепочке
	ErrSegmentNotFound = errors.New("segment not found in chain")

	// ErrInvalidDuration возвращается для услуги с неположительной длительностью
	ErrInvalidDuration = errors.New("service duration must be positive")

	// ErrBrokenChain возвращается, когда цепочка нарушает непрерывность
	ErrBrokenChain = errors.New("chain is not contiguous")
)
