package list_appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
	"github.com/m04kA/SMC-SalonDashboard/internal/integrations/salonapi"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/classifier"
)

// UseCase use case получения и классификации записей салона
type UseCase struct {
	gateway      SalonGateway
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(gateway SalonGateway, timeProvider TimeProvider, logger Logger) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		gateway:      gateway,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case.
// При ErrFetchFailed вместе с ошибкой возвращается пустой ответ с Retryable=true.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()

	records, err := uc.gateway.FetchAppointments(ctx, req.Session, salonapi.AppointmentFilters{
		Username: req.Username,
		Mobile:   req.Mobile,
	})
	if err != nil {
		switch {
		case errors.Is(err, salonapi.ErrUnauthenticated):
			return nil, ErrUnauthenticated
		case errors.Is(err, salonapi.ErrMissingSalonIdentity):
			return nil, ErrMissingSalonIdentity
		default:
			uc.logger.Error("ListAppointments: %v", err)
			return &Response{
				Records:   []domain.AppointmentRecord{},
				Reference: now,
				Retryable: true,
			}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
		}
	}

	stats := classifier.Classify(records)
	filtered := classifier.Apply(records, req.View, now)

	uc.logger.Info("ListAppointments: fetched=%d, shown=%d, tab=%s, period=%s",
		len(records), len(filtered), req.View.Tab, req.View.Period.Kind)

	return &Response{
		Stats:     stats,
		Summary:   classifier.Summarize(filtered),
		Records:   filtered,
		Reference: now,
	}, nil
}
