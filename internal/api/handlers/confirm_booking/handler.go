package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-SalonDashboard/internal/api/middleware"
	"github.com/m04kA/SMC-SalonDashboard/internal/integrations/salonapi"
	confirmBooking "github.com/m04kA/SMC-SalonDashboard/internal/usecase/confirm_booking"
)

const (
	msgMissingSession     = "missing session"
	msgInvalidRequestBody = "invalid request body"
	msgNoSlotSelected     = "select a time slot first"
	msgEmptyChain         = "add at least one service"
	msgInvalidContact     = "invalid contact details"
	msgInvalidBooking     = "booking is inconsistent, please rebuild it"
	msgUnauthenticated    = "authentication required"
	msgNoSalon            = "session is not linked to a salon"
	msgBookingFailed      = "failed to create appointment"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req ConfirmBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID, middleware.GetSession(r.Context())))
	if err != nil {
		var validationErr *confirmBooking.ValidationError
		switch {
		case errors.As(err, &validationErr):
			handlers.RespondValidationError(w, msgInvalidContact, validationErr.Fields)

		case errors.Is(err, confirmBooking.ErrValidationFailed):
			handlers.RespondBadRequest(w, msgInvalidContact)

		case errors.Is(err, confirmBooking.ErrNoSlotSelected):
			handlers.RespondBadRequest(w, msgNoSlotSelected)

		case errors.Is(err, confirmBooking.ErrEmptyChain):
			handlers.RespondBadRequest(w, msgEmptyChain)

		case errors.Is(err, confirmBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBooking)

		case errors.Is(err, confirmBooking.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		case errors.Is(err, confirmBooking.ErrMissingSalonIdentity):
			handlers.RespondForbidden(w, msgNoSalon)

		case errors.Is(err, confirmBooking.ErrBookingFailed):
			// Сообщение сервера показывается пользователю без изменений
			msg := salonapi.MessageOf(err)
			if msg == "" {
				msg = msgBookingFailed
			}
			h.logger.Warn("POST /booking/confirm - Booking rejected: %v", err)
			handlers.RespondUnprocessable(w, msg)

		default:
			h.logger.Error("POST /booking/confirm - Failed to confirm booking: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /booking/confirm - Appointment created: appointment_id=%s, services=%d",
		response.AppointmentID, len(response.Services))
	handlers.RespondJSON(w, http.StatusCreated, response)
}
