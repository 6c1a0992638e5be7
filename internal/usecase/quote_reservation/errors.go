package quote_reservation

import "errors"

var (
	// ErrCatalogUnavailable возвращается, когда каталог недоступен
	ErrCatalogUnavailable = errors.New("quote_reservation: catalog unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_reservation: invalid input data")
)
