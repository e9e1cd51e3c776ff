package confirm_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-SalonDashboard/internal/api/middleware"
	"github.com/m04kA/SMC-SalonDashboard/internal/integrations/salonapi"
)

const (
	msgMissingID       = "appointment id is required"
	msgUnauthenticated = "authentication required"
	msgConfirmFailed   = "failed to confirm appointment"
)

type Handler struct {
	gateway AppointmentGateway
	logger  Logger
}

func NewHandler(gateway AppointmentGateway, logger Logger) *Handler {
	return &Handler{
		gateway: gateway,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments/{id}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["id"]
	if appointmentID == "" {
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	confirmed, err := h.gateway.ConfirmAppointment(r.Context(), middleware.GetSession(r.Context()), appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, salonapi.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		case errors.Is(err, salonapi.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingID)

		case errors.Is(err, salonapi.ErrConfirmFailed):
			h.logger.Warn("PUT /appointments/{id}/confirm - Rejected: id=%s, error=%v", appointmentID, err)
			msg := salonapi.MessageOf(err)
			if msg == "" {
				msg = msgConfirmFailed
			}
			handlers.RespondUnprocessable(w, msg)

		default:
			h.logger.Error("PUT /appointments/{id}/confirm - Failed to confirm: id=%s, error=%v", appointmentID, err)
			handlers.RespondBadGateway(w, msgConfirmFailed)
		}
		return
	}

	h.logger.Info("PUT /appointments/{id}/confirm - Appointment confirmed: id=%s, status=%s", confirmed.ID, confirmed.Status)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(confirmed))
}
