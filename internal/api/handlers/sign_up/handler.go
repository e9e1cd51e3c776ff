package sign_up

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-SalonDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-SalonDashboard/internal/integrations/salonapi"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidMobile      = "mobile must be exactly 10 digits"
	msgSignUpFailed       = "failed to sign up, please retry"
	msgCodeSent           = "verification code sent"
)

type Handler struct {
	gateway  AuthGateway
	validate *validator.Validate
	logger   Logger
}

func NewHandler(gateway AuthGateway, logger Logger) *Handler {
	return &Handler{
		gateway:  gateway,
		validate: validator.New(),
		logger:   logger,
	}
}

// Handle POST /api/v1/auth/sign-up
// Публичный endpoint - отправляет одноразовый код на телефон
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/sign-up - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req.Mobile = strings.TrimSpace(req.Mobile)
	if err := h.validate.Struct(&req); err != nil {
		h.logger.Warn("POST /auth/sign-up - Invalid mobile: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMobile)
		return
	}

	result, err := h.gateway.SignUp(r.Context(), req.ToGatewayRequest())
	if err != nil {
		switch {
		case errors.Is(err, salonapi.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidMobile)

		case errors.Is(err, salonapi.ErrSignUpFailed):
			h.logger.Warn("POST /auth/sign-up - Rejected: mobile=%s, error=%v", req.Mobile, err)
			msg := salonapi.MessageOf(err)
			if msg == "" {
				msg = msgSignUpFailed
			}
			handlers.RespondUnprocessable(w, msg)

		default:
			h.logger.Error("POST /auth/sign-up - Failed to sign up: mobile=%s, error=%v", req.Mobile, err)
			handlers.RespondBadGateway(w, msgSignUpFailed)
		}
		return
	}

	message := result.Message
	if message == "" {
		message = msgCodeSent
	}

	h.logger.Info("POST /auth/sign-up - Code requested: mobile=%s", req.Mobile)
	handlers.RespondJSON(w, http.StatusOK, SignUpResponse{Message: message})
}
