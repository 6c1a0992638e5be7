package get_availability

import (
	"time"

	"github.com/salonmagico/SM-ReservationService/internal/availability"
	"github.com/salonmagico/SM-ReservationService/pkg/types"
)

// Request модель запроса на получение доступности даты
type Request struct {
	UserID int64     // ID пользователя (для логирования, не влияет на результат)
	Date   time.Time // Дата для проверки (без времени)
}

// Response модель ответа с доступностью слотов на дату
type Response struct {
	Date  time.Time              // Дата, на которую запрашивалась доступность
	Class availability.DateClass // Класс даты для календаря
	Slots []Slot                 // Оба дневных слота с признаком занятости
}

// Slot модель дневного слота
type Slot struct {
	Slot      string           // Метка слота: "morning" или "afternoon"
	StartTime types.TimeString // Время начала слота
	EndTime   types.TimeString // Время конца слота
	Booked    bool             // Занят ли слот активным бронированием
	Bookable  bool             // Можно ли выбрать слот (свободен и дата доступна)
}
