package get_bill_status

import (
	"net/http"
	"sort"

	"github.com/m04kA/SMC-SalonDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-SalonDashboard/internal/api/middleware"
	generateBill "github.com/m04kA/SMC-SalonDashboard/internal/api/handlers/generate_bill"
)

const msgNoSalon = "session is not linked to a salon"

// BillStatusesResponse HTTP response model
type BillStatusesResponse struct {
	Statuses []generateBill.BillStatusResponse `json:"statuses"`
}

type Handler struct {
	tracker StatusTracker
	logger  Logger
}

func NewHandler(tracker StatusTracker, logger Logger) *Handler {
	return &Handler{
		tracker: tracker,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/bill-status
// Возвращаются только записи салона текущей сессии, idle не возвращаются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if !sess.HasSalon() {
		h.logger.Warn("GET /appointments/bill-status - Session without salon identity")
		handlers.RespondForbidden(w, msgNoSalon)
		return
	}

	entries := h.tracker.Snapshot(sess.SalonID)

	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	resp := BillStatusesResponse{Statuses: make([]generateBill.BillStatusResponse, 0, len(ids))}
	for _, id := range ids {
		resp.Statuses = append(resp.Statuses, generateBill.FromEntry(id, entries[id]))
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
