package catalogservice

import "github.com/salonmagico/SM-ReservationService/internal/domain"

// CatalogResponse снимок каталога от каталог-сервиса
type CatalogResponse struct {
	Packages    []domain.Package    `json:"packages"`
	FoodOptions []domain.FoodOption `json:"food_options"`
	Themes      []domain.Theme      `json:"themes"`
	Mamparas    []domain.Mampara    `json:"mamparas"`
	Extras      []domain.Extra      `json:"extras"`
}

// ToDomain конвертирует ответ сервиса в доменный снимок каталога
func (r *CatalogResponse) ToDomain() *domain.Catalog {
	return &domain.Catalog{
		Packages:    r.Packages,
		FoodOptions: r.FoodOptions,
		Themes:      r.Themes,
		Mamparas:    r.Mamparas,
		Extras:      r.Extras,
	}
}

// ErrorResponse модель ошибки от каталог-сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
