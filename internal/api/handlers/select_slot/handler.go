package select_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-SalonDashboard/internal/api/middleware"
	selectSlot "github.com/m04kA/SMC-SalonDashboard/internal/usecase/select_slot"
)

const (
	msgMissingSession     = "missing session"
	msgInvalidRequestBody = "invalid request body"
	msgMissingSlotID      = "slotId is required"
	msgNoDateSelected     = "select a date first"
	msgDateChanged        = "booking date has changed, please pick a slot again"
	msgSlotNotFound       = "time slot not found"
	msgSlotNotAvailable   = "selected time slot is not available"
	msgUnauthenticated    = "authentication required"
	msgNoSalon            = "session is not linked to a salon"
	msgFetchFailed        = "failed to load time slots, please retry"
)

type Handler struct {
	useCase SelectSlotUseCase
	logger  Logger
}

func NewHandler(useCase SelectSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/booking/slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /booking/slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &selectSlot.Request{
		SessionID: sessionID,
		Session:   middleware.GetSession(r.Context()),
		SlotID:    req.SlotID,
	})
	if err != nil {
		switch {
		case errors.Is(err, selectSlot.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingSlotID)

		case errors.Is(err, selectSlot.ErrNoDateSelected):
			handlers.RespondBadRequest(w, msgNoDateSelected)

		case errors.Is(err, selectSlot.ErrDateChanged):
			handlers.RespondConflict(w, msgDateChanged)

		case errors.Is(err, selectSlot.ErrSlotNotFound):
			h.logger.Warn("PUT /booking/slot - Slot not found: slot_id=%s", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, selectSlot.ErrSlotNotAvailable):
			h.logger.Warn("PUT /booking/slot - Slot not available: slot_id=%s", req.SlotID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, selectSlot.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		case errors.Is(err, selectSlot.ErrMissingSalonIdentity):
			handlers.RespondForbidden(w, msgNoSalon)

		case errors.Is(err, selectSlot.ErrFetchFailed):
			h.logger.Error("PUT /booking/slot - Failed to fetch slots: error=%v", err)
			handlers.RespondBadGateway(w, msgFetchFailed)

		default:
			h.logger.Error("PUT /booking/slot - Failed to select slot: slot_id=%s, error=%v", req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /booking/slot - Slot selected: slot_id=%s", req.SlotID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromBookingState(result.State))
}
