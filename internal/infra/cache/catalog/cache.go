package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/salonmagico/SM-ReservationService/internal/domain"
	"github.com/salonmagico/SM-ReservationService/internal/integrations/catalogservice"
)

const cacheKey = "catalog:snapshot"

var (
	// ErrCacheMiss возвращается, когда снимка каталога нет в кэше
	ErrCacheMiss = errors.New("catalog.cache: snapshot not found")

	// ErrCacheUnavailable возвращается при ошибках Redis
	ErrCacheUnavailable = errors.New("catalog.cache: cache unavailable")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CatalogClient интерфейс клиента каталог-сервиса
type CatalogClient interface {
	GetCatalogWithGracefulDegradation(ctx context.Context) (*domain.Catalog, error)
}

// Cache кэш снимка каталога в Redis с TTL
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCache создает кэш каталога поверх Redis
func NewCache(addr, password string, db int, ttl time.Duration) *Cache {
	return &Cache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		ttl: ttl,
	}
}

// Ping проверяет соединение с Redis
func (c *Cache) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}
	return nil
}

// Get возвращает кэшированный снимок каталога
func (c *Cache) Get(ctx context.Context) (*domain.Catalog, error) {
	data, err := c.rdb.Get(ctx, cacheKey).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}

	var catalog domain.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("%w: corrupted snapshot: %v", ErrCacheUnavailable, err)
	}

	return &catalog, nil
}

// Set сохраняет снимок каталога с TTL
func (c *Cache) Set(ctx context.Context, catalog *domain.Catalog) error {
	data, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal snapshot: %v", ErrCacheUnavailable, err)
	}

	if err := c.rdb.Set(ctx, cacheKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}

	return nil
}

// Close закрывает соединение с Redis
func (c *Cache) Close() error {
	return c.rdb.Close()
}

// Provider cache-aside провайдер каталога: сперва кэш, затем каталог-сервис
// При недоступности каталог-сервиса отдаёт устаревший снимок из кэша
// (режим degraded), чтобы формы бронирования продолжали работать
type Provider struct {
	client CatalogClient
	cache  *Cache
	log    Logger
}

// NewProvider создает провайдер каталога
// cache может быть nil - тогда каждый запрос идёт в каталог-сервис напрямую
func NewProvider(client CatalogClient, cache *Cache, log Logger) *Provider {
	return &Provider{
		client: client,
		cache:  cache,
		log:    log,
	}
}

// GetCatalog возвращает снимок каталога
func (p *Provider) GetCatalog(ctx context.Context) (*domain.Catalog, error) {
	// 1. Пробуем кэш
	if p.cache != nil {
		catalog, err := p.cache.Get(ctx)
		if err == nil {
			return catalog, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			p.log.Warn("Catalog cache read failed: %v", err)
		}
	}

	// 2. Идём в каталог-сервис
	catalog, err := p.client.GetCatalogWithGracefulDegradation(ctx)
	if err == nil {
		if p.cache != nil {
			if cacheErr := p.cache.Set(ctx, catalog); cacheErr != nil {
				p.log.Warn("Failed to cache catalog snapshot: %v", cacheErr)
			}
		}
		return catalog, nil
	}

	// 3. Сервис недоступен - пробуем отдать устаревший снимок
	if errors.Is(err, catalogservice.ErrServiceDegraded) && p.cache != nil {
		if stale, cacheErr := p.cache.Get(ctx); cacheErr == nil {
			p.log.Warn("Serving stale catalog snapshot (catalog service degraded)")
			return stale, nil
		}
	}

	return nil, err
}
