// Package slotchain строит непрерывную цепочку интервалов записи
// из выбранного стартового слота и упорядоченного списка услуг.
package slotchain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
)

// Chain упорядоченная цепочка сегментов, привязанная к одному слоту.
// Функции пакета не изменяют переданный срез и всегда возвращают новый.
type Chain []domain.PendingSegment

// IDGenerator генерирует локальные идентификаторы сегментов
type IDGenerator func() string

// Builder строит цепочки с заданным генератором идентификаторов
type Builder struct {
	newID IDGenerator
}

// NewBuilder создает Builder; nil генератор заменяется на uuid
func NewBuilder(newID IDGenerator) *Builder {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Builder{newID: newID}
}

// AddService добавляет услугу в конец цепочки.
// Первый сегмент начинается в anchor.Start, каждый следующий - в конце предыдущего.
func (b *Builder) AddService(chain Chain, service domain.ServiceOffering, anchor *domain.SelectedSlot) (Chain, error) {
	if anchor == nil {
		return chain, ErrNoSlotSelected
	}
	if service.DurationMinutes <= 0 {
		return chain, fmt.Errorf("%w: service %s has duration %d", ErrInvalidDuration, service.ID, service.DurationMinutes)
	}

	start := anchor.Start
	if len(chain) > 0 {
		start = chain[len(chain)-1].End
	}

	segment := domain.PendingSegment{
		ID:    b.newID(),
		Start: start,
		End:   start.Add(time.Duration(service.DurationMinutes) * time.Minute),
		Metadata: domain.SegmentMetadata{
			ServiceID:       service.ID,
			Name:            service.Name,
			Price:           service.Price,
			DurationMinutes: service.DurationMinutes,
			Category:        service.Category,
			Gender:          service.Gender,
		},
	}

	result := make(Chain, 0, len(chain)+1)
	result = append(result, chain...)
	return append(result, segment), nil
}

// RemoveService удаляет сегмент и пересчитывает все последующие сегменты по порядку.
// Сегменты до точки удаления не меняются.
func (b *Builder) RemoveService(chain Chain, segmentID string, anchor *domain.SelectedSlot) (Chain, error) {
	idx := chain.indexOf(segmentID)
	if idx < 0 {
		return chain, fmt.Errorf("%w: id=%s", ErrSegmentNotFound, segmentID)
	}

	// Начало первого пересчитываемого сегмента
	var cursor time.Time
	switch {
	case idx > 0:
		cursor = chain[idx-1].End
	case anchor != nil:
		cursor = anchor.Start
	default:
		cursor = chain[0].Start
	}

	result := make(Chain, 0, len(chain)-1)
	result = append(result, chain[:idx]...)
	for _, segment := range chain[idx+1:] {
		segment.Start = cursor
		segment.End = cursor.Add(segment.Duration())
		cursor = segment.End
		result = append(result, segment)
	}

	return result, nil
}

// Reset возвращает пустую цепочку (смена даты или слота, успешное подтверждение)
func Reset() Chain {
	return Chain{}
}

// TotalDuration суммирует длительности всех сегментов в минутах.
// Пересчитывается каждый раз по текущему состоянию цепочки.
func TotalDuration(chain Chain) int {
	total := 0
	for _, segment := range chain {
		total += segment.Metadata.DurationMinutes
	}
	return total
}

// TotalPrice суммирует цены всех сегментов
func TotalPrice(chain Chain) float64 {
	total := 0.0
	for _, segment := range chain {
		total += segment.Metadata.Price
	}
	return total
}

// ServiceIDs возвращает идентификаторы услуг в порядке цепочки
func ServiceIDs(chain Chain) []string {
	ids := make([]string, 0, len(chain))
	for _, segment := range chain {
		ids = append(ids, segment.Metadata.ServiceID)
	}
	return ids
}

// Validate проверяет непрерывность цепочки относительно anchor:
// segment[0].Start == anchor.Start, segment[i].Start == segment[i-1].End,
// segment[i].End == segment[i].Start + duration.
func Validate(chain Chain, anchor *domain.SelectedSlot) error {
	if len(chain) == 0 {
		return nil
	}
	if anchor == nil {
		return ErrNoSlotSelected
	}

	expected := anchor.Start
	for i, segment := range chain {
		if !segment.Start.Equal(expected) {
			return fmt.Errorf("%w: segment %d starts at %s, expected %s",
				ErrBrokenChain, i, segment.Start.Format(domain.TimeFormat), expected.Format(domain.TimeFormat))
		}
		if !segment.End.Equal(segment.Start.Add(segment.Duration())) {
			return fmt.Errorf("%w: segment %d ends at %s, expected %s",
				ErrBrokenChain, i, segment.End.Format(domain.TimeFormat),
				segment.Start.Add(segment.Duration()).Format(domain.TimeFormat))
		}
		expected = segment.End
	}

	return nil
}

func (c Chain) indexOf(segmentID string) int {
	for i, segment := range c {
		if segment.ID == segmentID {
			return i
		}
	}
	return -1
}
