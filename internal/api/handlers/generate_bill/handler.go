package generate_bill

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-SalonDashboard/internal/api/middleware"
	generateBill "github.com/m04kA/SMC-SalonDashboard/internal/usecase/generate_bill"
)

const (
	msgMissingID       = "appointment id is required"
	msgInProgress      = "bill is already being generated for this appointment"
	msgUnauthenticated = "authentication required"
)

type Handler struct {
	useCase GenerateBillUseCase
	logger  Logger
}

func NewHandler(useCase GenerateBillUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{id}/bill
// Неудачная отправка счета возвращается с 200 и success=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["id"]

	result, err := h.useCase.Execute(r.Context(), &generateBill.Request{
		Session:       middleware.GetSession(r.Context()),
		AppointmentID: appointmentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, generateBill.ErrInvalidInput):
			h.logger.Warn("POST /appointments/{id}/bill - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingID)

		case errors.Is(err, generateBill.ErrBillInProgress):
			handlers.RespondConflict(w, msgInProgress)

		case errors.Is(err, generateBill.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		default:
			h.logger.Error("POST /appointments/{id}/bill - Failed to generate bill: id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/bill - Bill requested: id=%s, success=%t", appointmentID, result.Result.Success)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
