package catalogservice

import "errors"

var (
	// ErrCatalogNotFound возвращается, когда каталог-сервис не знает площадку
	ErrCatalogNotFound = errors.New("catalog not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что каталог-сервис недоступен и следует использовать кэшированный снимок
	ErrServiceDegraded = errors.New("catalogservice unavailable: graceful degradation applied")
)
