package remove_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-SalonDashboard/internal/api/middleware"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/slotchain"
)

const (
	msgMissingSession  = "missing session"
	msgSegmentNotFound = "service is not in the booking"
)

type Handler struct {
	sessions BookingSessions
	logger   Logger
}

func NewHandler(sessions BookingSessions, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle DELETE /api/v1/booking/services/{segmentId}
// Следующие за удаленной услуги сдвигаются к ее началу
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	segmentID := mux.Vars(r)["segmentId"]

	state, err := h.sessions.RemoveService(sessionID, segmentID)
	if err != nil {
		if errors.Is(err, slotchain.ErrSegmentNotFound) {
			h.logger.Warn("DELETE /booking/services/{id} - Segment not found: segment_id=%s", segmentID)
			handlers.RespondNotFound(w, msgSegmentNotFound)
			return
		}
		h.logger.Error("DELETE /booking/services/{id} - Failed to remove service: segment_id=%s, error=%v", segmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /booking/services/{id} - Service removed: segment_id=%s, chain_length=%d", segmentID, len(state.Chain))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromBookingState(state))
}
