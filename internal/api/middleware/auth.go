package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
	sessionRepo "github.com/m04kA/SMC-SalonDashboard/internal/infra/storage/session"
)

// SessionHeader заголовок с идентификатором сессии дашборда
const SessionHeader = "X-Session-ID"

const (
	msgMissingSession = "missing session"
	msgInvalidSession = "session not found or expired"
)

type contextKey string

const (
	sessionIDKey contextKey = "session_id"
	sessionKey   contextKey = "session"
)

// SessionStore источник сессий для middleware
type SessionStore interface {
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// BookingStates хранилище незавершенных записей, привязанных к сессии
type BookingStates interface {
	Forget(sessionID string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет X-Session-ID и кладет сессию в контекст запроса.
// Просроченная сессия удаляется вместе с незавершенной записью и отклоняется с 401.
func Auth(store SessionStore, states BookingStates, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(SessionHeader))
			if id == "" {
				handlers.RespondUnauthorized(w, msgMissingSession)
				return
			}

			session, err := store.GetByID(r.Context(), id)
			if err != nil {
				if errors.Is(err, sessionRepo.ErrSessionNotFound) {
					states.Forget(id)
					handlers.RespondUnauthorized(w, msgInvalidSession)
					return
				}
				log.Error("Auth: failed to load session: %v", err)
				handlers.RespondInternalError(w)
				return
			}

			if session.IsExpired(time.Now()) {
				if err := store.Delete(r.Context(), id); err != nil && !errors.Is(err, sessionRepo.ErrSessionNotFound) {
					log.Warn("Auth: failed to delete expired session: %v", err)
				}
				states.Forget(id)
				handlers.RespondUnauthorized(w, msgInvalidSession)
				return
			}

			ctx := context.WithValue(r.Context(), sessionIDKey, session.ID)
			ctx = context.WithValue(ctx, sessionKey, session.Context())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionID извлекает идентификатор сессии из контекста
func GetSessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey).(string)
	return id, ok && id != ""
}

// GetSession извлекает контекст авторизации из контекста запроса.
// Без сессии возвращается пустой SessionContext: шлюз ответит Unauthenticated.
func GetSession(ctx context.Context) *domain.SessionContext {
	if s, ok := ctx.Value(sessionKey).(*domain.SessionContext); ok {
		return s
	}
	return &domain.SessionContext{}
}

// WithSession кладет сессию в контекст (используется в тестах обработчиков)
func WithSession(ctx context.Context, sessionID string, sess *domain.SessionContext) context.Context {
	ctx = context.WithValue(ctx, sessionIDKey, sessionID)
	return context.WithValue(ctx, sessionKey, sess)
}
