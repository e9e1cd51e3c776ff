package logout

import (
	"net/http"

	"github.com/m04kA/SMC-SalonDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-SalonDashboard/internal/api/middleware"
)

const msgMissingSession = "missing session"

type Handler struct {
	useCase LogoutUseCase
	logger  Logger
}

func NewHandler(useCase LogoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/auth/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	if err := h.useCase.Execute(r.Context(), sessionID); err != nil {
		h.logger.Error("DELETE /auth/session - Failed to logout: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /auth/session - Session closed")
	handlers.NoContent(w)
}
