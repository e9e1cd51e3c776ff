package get_public_bill

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-SalonDashboard/internal/integrations/salonapi"
)

const (
	msgMissingULID  = "bill id is required"
	msgBillNotFound = "bill not found"
	msgFetchFailed  = "failed to load bill, please retry"
)

type Handler struct {
	gateway BillGateway
	logger  Logger
}

func NewHandler(gateway BillGateway, logger Logger) *Handler {
	return &Handler{
		gateway: gateway,
		logger:  logger,
	}
}

// Handle GET /api/v1/bills/{ulid}
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ulid := mux.Vars(r)["ulid"]
	if ulid == "" {
		handlers.RespondBadRequest(w, msgMissingULID)
		return
	}

	bill, err := h.gateway.FetchPublicBill(r.Context(), ulid)
	if err != nil {
		switch {
		case errors.Is(err, salonapi.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingULID)

		case errors.Is(err, salonapi.ErrBillNotFound):
			h.logger.Warn("GET /bills/{ulid} - Bill not found: ulid=%s", ulid)
			handlers.RespondNotFound(w, msgBillNotFound)

		default:
			h.logger.Error("GET /bills/{ulid} - Failed to fetch bill: ulid=%s, error=%v", ulid, err)
			handlers.RespondBadGateway(w, msgFetchFailed)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(bill))
}
