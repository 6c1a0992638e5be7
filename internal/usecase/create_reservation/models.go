package create_reservation

import (
	"time"

	"github.com/salonmagico/SM-ReservationService/internal/domain"
	"github.com/salonmagico/SM-ReservationService/pkg/types"
)

// ExtraRequest выбранная дополнительная услуга
type ExtraRequest struct {
	ID       int64 // ID услуги в каталоге
	Quantity int   // Количество (>= 1)
}

// Request модель запроса на создание бронирования
type Request struct {
	UserID       int64          // ID пользователя
	PackageID    int64          // ID пакета праздника
	FoodOptionID *int64         // ID варианта меню (опционально)
	ThemeID      *int64         // ID тематики (опционально)
	MamparaID    *int64         // ID мампары (опционально, требует тематику)
	Date         time.Time      // Дата праздника (без времени)
	Slot         string         // Слот: "morning" или "afternoon"
	Extras       []ExtraRequest // Дополнительные услуги

	CelebrantName string  // Имя именинника
	CelebrantAge  int     // Возраст именинника
	Comments      *string // Комментарии (опционально)

	// TotalOverride ручная сумма вместо расчётной (только для сотрудников)
	TotalOverride *float64
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64            // ID созданного бронирования
	UserID       int64            // ID пользователя
	PackageID    int64            // ID пакета
	FoodOptionID *int64           // ID варианта меню
	ThemeID      *int64           // ID тематики
	MamparaID    *int64           // ID мампары
	EventDate    time.Time        // Дата праздника
	StartTime    types.TimeString // Начало слота
	EndTime      types.TimeString // Конец слота
	Slot         string           // Метка слота
	Status       string           // Статус бронирования

	Extras []domain.ExtraLine // Строки услуг с зафиксированными ценами

	CelebrantName string  // Имя именинника
	CelebrantAge  int     // Возраст именинника
	Comments      *string // Комментарии

	// Денормализованные данные каталога
	PackageName     string  // Название пакета
	PackagePrice    float64 // Цена пакета на дату праздника
	FoodOptionName  *string // Название варианта меню
	FoodOptionPrice float64 // Доплата за меню
	MamparaPrice    float64 // Цена мампары

	Total           float64 // Итоговая сумма
	TotalOverridden bool    // Признак ручного override

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
