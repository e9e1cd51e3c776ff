package add_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
	"github.com/m04kA/SMC-SalonDashboard/internal/integrations/salonapi"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/slotchain"
)

// UseCase use case добавления услуги каталога в цепочку записи
type UseCase struct {
	catalog  ServiceCatalog
	sessions BookingSessions
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog ServiceCatalog, sessions BookingSessions, logger Logger) *UseCase {
	return &UseCase{
		catalog:  catalog,
		sessions: sessions,
		logger:   logger,
	}
}

// Execute выполняет use case добавления услуги
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.SessionID == "" || req.ServiceID == "" {
		return nil, fmt.Errorf("%w: session and service are required", ErrInvalidInput)
	}

	services, err := uc.catalog.FetchSalonServices(ctx, req.Session)
	if err != nil {
		switch {
		case errors.Is(err, salonapi.ErrUnauthenticated):
			return nil, ErrUnauthenticated
		case errors.Is(err, salonapi.ErrMissingSalonIdentity):
			return nil, ErrMissingSalonIdentity
		default:
			uc.logger.Error("AddService: failed to fetch catalog: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
		}
	}

	service, ok := findService(services, req.ServiceID)
	if !ok {
		uc.logger.Warn("AddService: service=%s not in catalog", req.ServiceID)
		return nil, ErrServiceNotFound
	}
	if !service.IsBookable() {
		return nil, fmt.Errorf("%w: service=%s", ErrServiceNotBookable, service.ID)
	}

	state, err := uc.sessions.AddService(req.SessionID, service)
	if err != nil {
		switch {
		case errors.Is(err, slotchain.ErrNoSlotSelected):
			return nil, ErrNoSlotSelected
		case errors.Is(err, slotchain.ErrInvalidDuration):
			return nil, fmt.Errorf("%w: %v", ErrServiceNotBookable, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	uc.logger.Info("AddService: session=%s, service=%s, chain length=%d, total=%d min",
		req.SessionID, service.ID, len(state.Chain), state.TotalDuration())
	return &Response{State: state}, nil
}

func findService(services []domain.ServiceOffering, id string) (domain.ServiceOffering, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return domain.ServiceOffering{}, false
}
