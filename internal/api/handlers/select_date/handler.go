package select_date

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-SalonDashboard/internal/api/middleware"
	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
)

const (
	msgMissingSession     = "missing session"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
)

type Handler struct {
	sessions BookingSessions
	location *time.Location
	logger   Logger
}

func NewHandler(sessions BookingSessions, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.Local
	}
	return &Handler{
		sessions: sessions,
		location: location,
		logger:   logger,
	}
}

// Handle PUT /api/v1/booking/date
// Выбор даты сбрасывает слот и цепочку услуг
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /booking/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.ParseInLocation(domain.DateFormat, req.Date, h.location)
	if err != nil {
		h.logger.Warn("PUT /booking/date - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	state, err := h.sessions.SelectDate(sessionID, date)
	if err != nil {
		h.logger.Error("PUT /booking/date - Failed to select date: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /booking/date - Date selected: date=%s", req.Date)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromBookingState(state))
}
