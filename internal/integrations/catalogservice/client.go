package catalogservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/salonmagico/SM-ReservationService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с каталог-сервисом
// Каталог (пакеты, питание, тематики, мампары, услуги) принадлежит
// внешнему сервису и потребляется строго read-only
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента каталог-сервиса
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetCatalog получает полный снимок каталога площадки
func (c *Client) GetCatalog(ctx context.Context) (*domain.Catalog, error) {
	url := fmt.Sprintf("%s/internal/catalog", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrCatalogNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var catalog CatalogResponse
	if err := json.NewDecoder(resp.Body).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return catalog.ToDomain(), nil
}

// GetCatalogWithGracefulDegradation получает каталог с graceful degradation
// При недоступности каталог-сервиса возвращает ErrServiceDegraded,
// что позволяет вызывающему коду переключиться на кэшированный снимок
func (c *Client) GetCatalogWithGracefulDegradation(ctx context.Context) (*domain.Catalog, error) {
	catalog, err := c.GetCatalog(ctx)
	if err != nil {
		// Отсутствие каталога - бизнес-ошибка, пробрасываем её дальше
		if err == ErrCatalogNotFound {
			c.log.Warn("Catalog not found in catalog service")
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки
		// парсинга) применяем graceful degradation
		c.log.Error("CatalogService unavailable, applying graceful degradation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}

	c.log.Info("Successfully fetched catalog: %d packages, %d themes, %d extras",
		len(catalog.Packages), len(catalog.Themes), len(catalog.Extras))
	return catalog, nil
}
