package get_booking

import (
	"net/http"

	"github.com/m04kA/SMC-SalonDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-SalonDashboard/internal/api/middleware"
)

const msgMissingSession = "missing session"

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

// Handle GET /api/v1/booking
// Текущая незавершенная запись сессии: дата, слот, цепочка услуг и итоги
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromBookingState(h.sessions.Snapshot(sessionID)))
}
