package logout

import (
	"context"
	"errors"
	"fmt"

	sessionRepo "github.com/m04kA/SMC-SalonDashboard/internal/infra/storage/session"
)

// UseCase use case выхода: удаляет серверную сессию и незавершенную запись
type UseCase struct {
	sessions SessionRepository
	bookings BookingSessions
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionRepository, bookings BookingSessions, logger Logger) *UseCase {
	return &UseCase{
		sessions: sessions,
		bookings: bookings,
		logger:   logger,
	}
}

// Execute выполняет выход. Повторный выход не является ошибкой.
func (uc *UseCase) Execute(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrInvalidInput
	}

	uc.bookings.Forget(sessionID)

	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil
		}
		uc.logger.Error("Logout: failed to delete session=%s: %v", sessionID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("Logout: session=%s closed", sessionID)
	return nil
}
