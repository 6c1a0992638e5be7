package get_calendar

import (
	"time"

	"github.com/salonmagico/SM-ReservationService/internal/availability"
)

// Request модель запроса на получение календаря доступности
type Request struct {
	UserID int64      // ID пользователя (влияет на окно минимального срока)
	Year   int        // Год календаря
	Month  time.Month // Месяц календаря
}

// Response модель ответа с календарём на месяц
type Response struct {
	Year  int        // Год календаря
	Month time.Month // Месяц календаря
	Days  []Day      // Классификация каждого дня месяца по порядку
}

// Day классификация одного дня месяца
type Day struct {
	Date  string                 // Дата в формате YYYY-MM-DD
	Class availability.DateClass // Класс доступности
}
