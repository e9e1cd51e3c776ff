package catalog

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
)

// Store подмножество команд Redis, используемое кэшем (*redis.Client реализует его)
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// ServicesFetcher источник каталога услуг (удаленный API)
type ServicesFetcher interface {
	FetchSalonServices(ctx context.Context, sess *domain.SessionContext) ([]domain.ServiceOffering, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
