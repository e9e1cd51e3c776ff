package get_appointments

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-SalonDashboard/internal/api/middleware"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/classifier"
	listAppointments "github.com/m04kA/SMC-SalonDashboard/internal/usecase/list_appointments"
)

const (
	msgInvalidTab      = "unknown tab, expected all, upcoming or previous"
	msgInvalidPeriod   = "unknown period, expected all, daily, weekly, monthly, yearly or custom"
	msgInvalidRange    = "custom period needs start and end as YYYY-MM-DD, start not after end"
	msgInvalidParams   = "invalid query parameters"
	msgUnauthenticated = "authentication required"
	msgNoSalon         = "session is not linked to a salon"
	msgFetchFailed     = "failed to load appointments, please retry"
)

type Handler struct {
	useCase  ListAppointmentsUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase ListAppointmentsUseCase, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.Local
	}
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: tab, q, period, start, end (для period=custom), username, mobile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRequest(middleware.GetSession(r.Context()), r.URL.Query(), h.location)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid parameters: %v", err)
		switch {
		case errors.Is(err, classifier.ErrUnknownTab):
			handlers.RespondBadRequest(w, msgInvalidTab)
		case errors.Is(err, classifier.ErrUnknownPeriod):
			handlers.RespondBadRequest(w, msgInvalidPeriod)
		case errors.Is(err, classifier.ErrInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidRange)
		default:
			handlers.RespondBadRequest(w, msgInvalidParams)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, listAppointments.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		case errors.Is(err, listAppointments.ErrMissingSalonIdentity):
			h.logger.Warn("GET /appointments - Session without salon identity")
			handlers.RespondForbidden(w, msgNoSalon)

		case errors.Is(err, listAppointments.ErrFetchFailed) && result != nil:
			// Пустой список с признаком повтора, UI показывает кнопку Retry
			h.logger.Error("GET /appointments - Failed to fetch appointments: %v", err)
			response := FromUseCaseResponse(result)
			response.Error = msgFetchFailed
			handlers.RespondJSON(w, http.StatusBadGateway, response)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved: total=%d, shown=%d", result.Stats.Total, len(result.Records))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
