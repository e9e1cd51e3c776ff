package get_services

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-SalonDashboard/internal/api/middleware"
	"github.com/m04kA/SMC-SalonDashboard/internal/integrations/salonapi"
)

const (
	msgUnauthenticated = "authentication required"
	msgNoSalon         = "session is not linked to a salon"
	msgFetchFailed     = "failed to load salon services, please retry"
)

type Handler struct {
	catalog ServiceCatalog
	logger  Logger
}

func NewHandler(catalog ServiceCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
// Query params: refresh=true сбрасывает кэш каталога перед запросом
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	if r.URL.Query().Get("refresh") == "true" && sess.HasSalon() {
		h.catalog.Invalidate(r.Context(), sess.SalonID)
	}

	services, err := h.catalog.FetchSalonServices(r.Context(), sess)
	if err != nil {
		switch {
		case errors.Is(err, salonapi.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		case errors.Is(err, salonapi.ErrMissingSalonIdentity):
			h.logger.Warn("GET /services - Session without salon identity")
			handlers.RespondForbidden(w, msgNoSalon)

		default:
			h.logger.Error("GET /services - Failed to fetch services: salon=%s, error=%v", sess.SalonID, err)
			handlers.RespondBadGateway(w, msgFetchFailed)
		}
		return
	}

	h.logger.Info("GET /services - Services retrieved successfully: salon=%s, count=%d", sess.SalonID, len(services))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(services))
}
