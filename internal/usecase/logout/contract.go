package logout

import "context"

// SessionRepository интерфейс хранилища сессий
type SessionRepository interface {
	Delete(ctx context.Context, id string) error
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
