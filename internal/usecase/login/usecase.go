package login

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonDashboard/internal/integrations/salonapi"
	"github.com/m04kA/SMC-SalonDashboard/internal/service/credentials"
)

// UseCase use case входа: код подтверждения -> токен -> серверная сессия
type UseCase struct {
	gateway      AuthGateway
	sessions     SessionRepository
	sessionTTL   time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// sessionTTL ограничивает сессию, если токен не содержит exp.
func NewUseCase(gateway AuthGateway, sessions SessionRepository, sessionTTL time.Duration, logger Logger) *UseCase {
	return &UseCase{
		gateway:      gateway,
		sessions:     sessions,
		sessionTTL:   sessionTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case входа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	mobile := strings.TrimSpace(req.Mobile)
	code := strings.TrimSpace(req.Code)
	if mobile == "" || code == "" {
		return nil, fmt.Errorf("%w: mobile and code are required", ErrInvalidInput)
	}

	verified, err := uc.gateway.Verify(ctx, mobile, code)
	if err != nil {
		if errors.Is(err, salonapi.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Warn("Login: verification failed for mobile=%s: %v", mobile, err)
		return nil, fmt.Errorf("%w: %w", ErrVerifyFailed, err)
	}

	now := uc.timeProvider.Now()
	session, err := credentials.NewSession(uuid.NewString(), verified.Token, mobile, verified.Name, now)
	if err != nil {
		uc.logger.Error("Login: failed to decode token for mobile=%s: %v", mobile, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if session.ExpiresAt == nil && uc.sessionTTL > 0 {
		expires := now.Add(uc.sessionTTL)
		session.ExpiresAt = &expires
	}

	session, err = uc.sessions.Create(ctx, session)
	if err != nil {
		uc.logger.Error("Login: failed to store session for mobile=%s: %v", mobile, err)
		return nil, fmt.Errorf("%w: failed to store session: %v", ErrInternal, err)
	}

	if session.SalonID == "" {
		uc.logger.Warn("Login: token for mobile=%s carries no %s claim", mobile, credentials.SalonClaim)
	}
	uc.logger.Info("Login: session created for mobile=%s, salon=%s", mobile, session.SalonID)

	return &Response{
		Session:  session,
		HasSalon: session.SalonID != "",
	}, nil
}
