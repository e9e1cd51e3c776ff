package select_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
	"github.com/m04kA/SMC-SalonDashboard/internal/integrations/salonapi"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/bookingsession"
)

// UseCase use case выбора стартового слота цепочки.
// Слот проверяется по актуальному ответу салона на выбранную дату.
type UseCase struct {
	gateway  SalonGateway
	sessions BookingSessions
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(gateway SalonGateway, sessions BookingSessions, logger Logger) *UseCase {
	return &UseCase{
		gateway:  gateway,
		sessions: sessions,
		logger:   logger,
	}
}

// Execute выполняет use case выбора слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.SessionID == "" || req.SlotID == "" {
		return nil, fmt.Errorf("%w: session and slot are required", ErrInvalidInput)
	}

	state := uc.sessions.Snapshot(req.SessionID)
	if !state.HasDate() {
		return nil, ErrNoDateSelected
	}

	salonID := ""
	if req.Session != nil {
		salonID = req.Session.SalonID
	}

	slots, err := uc.gateway.FetchTimeSlots(ctx, req.Session, salonID, state.Date)
	if err != nil {
		switch {
		case errors.Is(err, salonapi.ErrUnauthenticated):
			return nil, ErrUnauthenticated
		case errors.Is(err, salonapi.ErrMissingSalonIdentity):
			return nil, ErrMissingSalonIdentity
		default:
			uc.logger.Error("SelectSlot: failed to fetch slots for salon=%s: %v", salonID, err)
			return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
		}
	}

	slot, ok := findSlot(slots, req.SlotID)
	if !ok {
		uc.logger.Warn("SelectSlot: slot=%s not offered on %s", req.SlotID, state.Date.Format(domain.DateFormat))
		return nil, ErrSlotNotFound
	}

	state, err = uc.sessions.SelectSlot(req.SessionID, state.Date, slot)
	if err != nil {
		switch {
		case errors.Is(err, bookingsession.ErrSlotUnavailable):
			return nil, ErrSlotNotAvailable
		case errors.Is(err, bookingsession.ErrNoDateSelected):
			return nil, ErrNoDateSelected
		case errors.Is(err, bookingsession.ErrDateChanged):
			uc.logger.Warn("SelectSlot: session=%s changed date while selecting slot=%s", req.SessionID, req.SlotID)
			return nil, ErrDateChanged
		default:
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	uc.logger.Info("SelectSlot: session=%s, slot=%s, start=%s", req.SessionID, slot.ID, state.Slot.DisplayTime)
	return &Response{State: state}, nil
}

func findSlot(slots []domain.TimeSlot, id string) (domain.TimeSlot, bool) {
	for _, s := range slots {
		if s.ID == id {
			return s, true
		}
	}
	return domain.TimeSlot{}, false
}
