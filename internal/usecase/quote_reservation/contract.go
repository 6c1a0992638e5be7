package quote_reservation

import (
	"context"

	"github.com/salonmagico/SM-ReservationService/internal/domain"
)

// CatalogProvider интерфейс провайдера снимка каталога
type CatalogProvider interface {
	GetCatalog(ctx context.Context) (*domain.Catalog, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
