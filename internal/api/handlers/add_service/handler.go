package add_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-SalonDashboard/internal/api/middleware"
	addService "github.com/m04kA/SMC-SalonDashboard/internal/usecase/add_service"
)

const (
	msgMissingSession     = "missing session"
	msgInvalidRequestBody = "invalid request body"
	msgMissingServiceID   = "serviceId is required"
	msgNoSlotSelected     = "select a time slot first"
	msgServiceNotFound    = "service not found"
	msgNotBookable        = "service cannot be booked"
	msgUnauthenticated    = "authentication required"
	msgNoSalon            = "session is not linked to a salon"
	msgFetchFailed        = "failed to load salon services, please retry"
)

type Handler struct {
	useCase AddServiceUseCase
	logger  Logger
}

func NewHandler(useCase AddServiceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking/services
// Услуга добавляется в конец цепочки и начинается сразу после предыдущей
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req AddServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &addService.Request{
		SessionID: sessionID,
		Session:   middleware.GetSession(r.Context()),
		ServiceID: req.ServiceID,
	})
	if err != nil {
		switch {
		case errors.Is(err, addService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingServiceID)

		case errors.Is(err, addService.ErrNoSlotSelected):
			handlers.RespondBadRequest(w, msgNoSlotSelected)

		case errors.Is(err, addService.ErrServiceNotFound):
			h.logger.Warn("POST /booking/services - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, addService.ErrServiceNotBookable):
			h.logger.Warn("POST /booking/services - Service not bookable: service_id=%s", req.ServiceID)
			handlers.RespondBadRequest(w, msgNotBookable)

		case errors.Is(err, addService.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		case errors.Is(err, addService.ErrMissingSalonIdentity):
			handlers.RespondForbidden(w, msgNoSalon)

		case errors.Is(err, addService.ErrFetchFailed):
			h.logger.Error("POST /booking/services - Failed to fetch catalog: error=%v", err)
			handlers.RespondBadGateway(w, msgFetchFailed)

		default:
			h.logger.Error("POST /booking/services - Failed to add service: service_id=%s, error=%v", req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking/services - Service added: service_id=%s, chain_length=%d",
		req.ServiceID, len(result.State.Chain))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromBookingState(result.State))
}
