package quote_reservation

import "time"

// ExtraRequest выбранная дополнительная услуга
type ExtraRequest struct {
	ID       int64 // ID услуги в каталоге
	Quantity int   // Количество
}

// Request модель запроса расчёта стоимости
// Форма может быть заполнена частично: отсутствующие выборы дают
// нулевой вклад, расчёт не возвращает ошибку валидации выбора
type Request struct {
	PackageID    *int64         // ID пакета (опционально)
	FoodOptionID *int64         // ID варианта меню (опционально)
	MamparaID    *int64         // ID мампары (опционально)
	Date         time.Time      // Дата праздника (нулевая - пакет без вклада)
	Extras       []ExtraRequest // Дополнительные услуги
}

// Response модель ответа с разбивкой стоимости
type Response struct {
	PackagePrice     float64 // Цена пакета на дату
	FoodOptionPrice  float64 // Доплата за меню
	MamparaPrice     float64 // Цена мампары
	ExtrasTotal      float64 // Сумма дополнительных услуг
	TuesdaySurcharge float64 // Применённая наценка за вторник (0, если не вторник)
	Total            float64 // Итоговая сумма, округлённая до 2 знаков
}
