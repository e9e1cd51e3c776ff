package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
	"github.com/m04kA/SMC-SalonDashboard/internal/integrations/salonapi"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/slotchain"
)

// UseCase use case подтверждения собранной цепочки услуг
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

// Execute выполняет use case подтверждения записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: session is required", ErrInvalidInput)
	}

	// 1. Предусловия: слот выбран, цепочка не пуста и непрерывна
	state := uc.sessions.Snapshot(req.SessionID)
	if state.Slot == nil {
		return nil, ErrNoSlotSelected
	}
	if len(state.Chain) == 0 {
		return nil, ErrEmptyChain
	}
	if err := slotchain.Validate(state.Chain, state.Slot); err != nil {
		uc.logger.Error("ConfirmBooking: session=%s has inconsistent chain: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Проверка контактов
	contact := normalizeContact(req.Contact)
	if err := validateContact(contact); err != nil {
		uc.logger.Warn("ConfirmBooking: session=%s: %v", req.SessionID, err)
		return nil, err
	}

	salonID := ""
	if req.Session != nil {
		salonID = req.Session.SalonID
	}
	totalMinutes := slotchain.TotalDuration(state.Chain)

	// 3. Проверка вместимости: только предупреждение, запись не блокируется
	warning := uc.checkAvailability(ctx, req, salonID, state.Date, totalMinutes)

	// 4. Создание записи
	payload := salonapi.CreateAppointmentPayload{
		SlotID:     state.Slot.SlotID,
		Date:       state.Date.Format(domain.APIDateFormat),
		ServiceIDs: slotchain.ServiceIDs(state.Chain),
		Name:       contact.Name,
		Mobile:     contact.Mobile,
		Email:      contact.Email,
		Notes:      contact.Notes,
	}

	created, err := uc.gateway.CreateAppointment(ctx, req.Session, salonID, payload)
	if err != nil {
		switch {
		case errors.Is(err, salonapi.ErrUnauthenticated):
			return nil, ErrUnauthenticated
		case errors.Is(err, salonapi.ErrMissingSalonIdentity):
			return nil, ErrMissingSalonIdentity
		default:
			uc.logger.Warn("ConfirmBooking: salon=%s rejected appointment: %v", salonID, err)
			return nil, fmt.Errorf("%w: %w", ErrBookingFailed, err)
		}
	}

	// 5. Очищается только подтвержденная цепочка; изменения, сделанные во время запроса, сохраняются
	if !uc.sessions.ClearIfUnchanged(req.SessionID, state.Version) {
		uc.logger.Info("ConfirmBooking: session=%s changed booking during confirmation, keeping new chain", req.SessionID)
	}

	names := make([]string, 0, len(state.Chain))
	for _, segment := range state.Chain {
		names = append(names, segment.Metadata.Name)
	}

	uc.logger.Info("ConfirmBooking: appointment=%s created, salon=%s, start=%s, services=%d, duration=%d",
		created.ID, salonID, state.Slot.DisplayTime, len(state.Chain), totalMinutes)

	return &Response{
		Appointment:   created,
		Start:         state.Chain[0].Start,
		End:           state.Chain[len(state.Chain)-1].End,
		TotalDuration: totalMinutes,
		TotalPrice:    slotchain.TotalPrice(state.Chain),
		ServiceNames:  names,
		Warning:       warning,
	}, nil
}

// checkAvailability возвращает предупреждение, если салон явно сообщил о нехватке времени.
// Ошибка проверки только логируется.
func (uc *UseCase) checkAvailability(ctx context.Context, req *Request, salonID string, date time.Time, totalMinutes int) string {
	result, err := uc.gateway.CheckAvailability(ctx, req.Session, salonID, date, totalMinutes)
	if err != nil {
		uc.logger.Warn("ConfirmBooking: availability check failed for salon=%s: %v", salonID, err)
		return ""
	}
	if result == nil || result.Available {
		return ""
	}
	if result.Message != "" {
		return result.Message
	}
	return fmt.Sprintf("Salon may not have %d free minutes on %s", totalMinutes, date.Format(domain.DateFormat))
}
