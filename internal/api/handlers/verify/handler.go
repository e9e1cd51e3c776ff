package verify

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-SalonDashboard/internal/integrations/salonapi"
	"github.com/m04kA/SMC-SalonDashboard/internal/usecase/login"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingFields      = "mobile and code are required"
	msgVerifyFailed       = "invalid verification code"
	msgInvalidToken       = "salon api issued an unreadable token"
)

type Handler struct {
	useCase LoginUseCase
	logger  Logger
}

func NewHandler(useCase LoginUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/verify
// Публичный endpoint - обменивает код на сессию дашборда
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/verify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, login.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, login.ErrVerifyFailed):
			msg := salonapi.MessageOf(err)
			if msg == "" {
				msg = msgVerifyFailed
			}
			handlers.RespondUnauthorized(w, msg)

		case errors.Is(err, login.ErrInvalidToken):
			h.logger.Error("POST /auth/verify - Invalid token issued: mobile=%s", req.Mobile)
			handlers.RespondBadGateway(w, msgInvalidToken)

		default:
			h.logger.Error("POST /auth/verify - Failed to create session: mobile=%s, error=%v", req.Mobile, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/verify - Session created: mobile=%s, has_salon=%t", result.Session.Mobile, result.HasSalon)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
