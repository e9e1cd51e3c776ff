package generate_bill

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonDashboard/internal/integrations/salonapi"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/billstatus"
)

// UseCase use case отправки счета по записи.
// Неудача отправки не является ошибкой: она отражается в Result и состоянии строки.
type UseCase struct {
	gateway  SalonGateway
	tracker  StatusTracker
	observer ResultObserver
	logger   Logger
}

// NewUseCase создает новый экземпляр use case; observer может быть nil
func NewUseCase(gateway SalonGateway, tracker StatusTracker, observer ResultObserver, logger Logger) *UseCase {
	if observer == nil {
		observer = noopObserver{}
	}
	return &UseCase{
		gateway:  gateway,
		tracker:  tracker,
		observer: observer,
		logger:   logger,
	}
}

// Execute выполняет use case отправки счета
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	id := strings.TrimSpace(req.AppointmentID)
	if id == "" {
		return nil, fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}

	var salonID string
	if req.Session != nil {
		salonID = req.Session.SalonID
	}

	if err := uc.tracker.Begin(salonID, id); err != nil {
		if errors.Is(err, billstatus.ErrBillInProgress) {
			uc.logger.Warn("GenerateBill: appointment=%s already in progress", id)
			return nil, ErrBillInProgress
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	result, err := uc.gateway.GenerateBill(ctx, req.Session, id)
	if err != nil {
		// Строка не должна остаться в loading
		uc.tracker.Fail(salonID, id, "")
		if errors.Is(err, salonapi.ErrUnauthenticated) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if result.Success {
		uc.tracker.Succeed(salonID, id, result.Message)
		uc.logger.Info("GenerateBill: bill sent for appointment=%s", id)
	} else {
		uc.tracker.Fail(salonID, id, result.Message)
		uc.logger.Warn("GenerateBill: bill failed for appointment=%s: %s", id, result.Message)
	}
	uc.observer.ObserveBillResult(result.Success)

	return &Response{
		AppointmentID: id,
		Result:        result,
		Status:        uc.tracker.Get(salonID, id),
	}, nil
}
