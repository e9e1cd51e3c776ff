package cleanup_sessions

import (
	"context"
	"fmt"
	"time"
)

// UseCase use case очистки: удаляет просроченные сессии и их незавершенные записи
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

// Execute удаляет сессии, истекшие к моменту now, и возвращает их количество
func (uc *UseCase) Execute(ctx context.Context, now time.Time) (int, error) {
	removed, err := uc.sessions.DeleteExpired(ctx, now)
	if err != nil {
		uc.logger.Error("CleanupSessions: failed to delete expired sessions: %v", err)
		return 0, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	for _, id := range removed {
		uc.bookings.Forget(id)
	}

	if len(removed) > 0 {
		uc.logger.Info("CleanupSessions: deleted %d expired sessions", len(removed))
	}
	return len(removed), nil
}
