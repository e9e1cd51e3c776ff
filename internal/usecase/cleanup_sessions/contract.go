package cleanup_sessions

import (
	"context"
	"time"
)

// SessionRepository интерфейс хранилища сессий
type SessionRepository interface {
	DeleteExpired(ctx context.Context, now time.Time) ([]string, error)
}

// BookingSessions интерфейс хранилища незавершенных записей
type BookingSessions interface {
	Forget(sessionID string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
