package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
	"github.com/m04kA/SMC-SalonDashboard/internal/integrations/salonapi"
)

// UseCase use case для получения слотов салона на дату
type UseCase struct {
	gateway      SalonGateway
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(gateway SalonGateway, logger Logger) *UseCase {
	return &UseCase{
		gateway:      gateway,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now().In(req.Date.Location())
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	salonID := ""
	if req.Session != nil {
		salonID = req.Session.SalonID
	}

	// 2. Получаем слоты салона
	slots, err := uc.gateway.FetchTimeSlots(ctx, req.Session, salonID, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, salonapi.ErrUnauthenticated):
			return nil, ErrUnauthenticated
		case errors.Is(err, salonapi.ErrMissingSalonIdentity):
			return nil, ErrMissingSalonIdentity
		default:
			uc.logger.Error("GetAvailableSlots: salon=%s, date=%s: %v", salonID, req.Date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
		}
	}

	// 3. Слоты сегодняшнего дня, время которых уже прошло, недоступны
	result := make([]domain.TimeSlot, 0, len(slots))
	available := 0
	for _, slot := range slots {
		if slot.Available && isSlotStarted(req.Date, slot, now) {
			slot.Available = false
		}
		if slot.Available {
			available++
		}
		result = append(result, slot)
	}

	uc.logger.Info("GetAvailableSlots: salon=%s, date=%s, slots=%d, available=%d",
		salonID, req.Date.Format(domain.DateFormat), len(result), available)

	return &Response{
		Date:           req.Date,
		Slots:          result,
		AvailableCount: available,
	}, nil
}

// isDateInPast проверяет, что дата раньше текущего дня
func isDateInPast(date, now time.Time) bool {
	return domain.StartOfDay(date).Before(domain.StartOfDay(now))
}

// isSlotStarted проверяет, что слот на дату уже начался.
// Слот с нераспознанным временем считается неначавшимся.
func isSlotStarted(date time.Time, slot domain.TimeSlot, now time.Time) bool {
	anchor, err := domain.NewSelectedSlot(date, slot)
	if err != nil {
		return false
	}
	return !anchor.Start.After(now)
}
