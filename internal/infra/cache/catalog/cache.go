package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
)

const keyPrefix = "catalog:salon:"

// Cache read-through кэш каталога услуг салона.
// Без Store (nil) все запросы идут напрямую в API.
// Ошибки Redis не прерывают запрос: кэш пропускается.
type Cache struct {
	store   Store
	fetcher ServicesFetcher
	ttl     time.Duration
	log     Logger
}

// NewCache создает кэш каталога
func NewCache(store Store, fetcher ServicesFetcher, ttl time.Duration, log Logger) *Cache {
	return &Cache{
		store:   store,
		fetcher: fetcher,
		ttl:     ttl,
		log:     log,
	}
}

func key(salonID string) string {
	return keyPrefix + salonID
}

// FetchSalonServices возвращает каталог из кэша или из API
func (c *Cache) FetchSalonServices(ctx context.Context, sess *domain.SessionContext) ([]domain.ServiceOffering, error) {
	// Авторизацию и идентичность салона проверяет сам шлюз
	if c.store == nil || !sess.IsAuthenticated() || !sess.HasSalon() {
		return c.fetcher.FetchSalonServices(ctx, sess)
	}

	cached, err := c.store.Get(ctx, key(sess.SalonID)).Result()
	switch {
	case err == nil:
		var services []domain.ServiceOffering
		if jsonErr := json.Unmarshal([]byte(cached), &services); jsonErr == nil {
			return services, nil
		}
		c.log.Warn("Catalog cache: corrupted entry for salon=%s, refetching", sess.SalonID)
	case errors.Is(err, redis.Nil):
	default:
		c.log.Warn("Catalog cache: get failed for salon=%s: %v", sess.SalonID, err)
	}

	services, err := c.fetcher.FetchSalonServices(ctx, sess)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(services)
	if err != nil {
		c.log.Error("Catalog cache: failed to encode services for salon=%s: %v", sess.SalonID, err)
		return services, nil
	}
	if err := c.store.Set(ctx, key(sess.SalonID), data, c.ttl).Err(); err != nil {
		c.log.Warn("Catalog cache: set failed for salon=%s: %v", sess.SalonID, err)
	}

	return services, nil
}

// Invalidate удаляет закэшированный каталог салона
func (c *Cache) Invalidate(ctx context.Context, salonID string) {
	if c.store == nil || salonID == "" {
		return
	}
	if err := c.store.Del(ctx, key(salonID)).Err(); err != nil {
		c.log.Warn("Catalog cache: invalidate failed for salon=%s: %v", salonID, err)
	}
}
