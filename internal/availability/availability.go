package availability

import (
	"errors"
	"time"

	"github.com/salonmagico/SM-ReservationService/internal/domain"
)

// Движок доступности: чистые функции, разбивающие календарную дату
// на два фиксированных слота и классифицирующие дату для календаря.

var (
	// ErrNoDate возвращается, когда дата не выбрана
	// "Дата не выбрана" - отдельное состояние, а не один из классов доступности
	ErrNoDate = errors.New("availability: no date selected")
)

// BookedSlots занятость двух дневных слотов на конкретную дату
type BookedSlots struct {
	Morning   bool
	Afternoon bool
}

// DateClass класс доступности даты для отрисовки календаря
type DateClass string

const (
	ClassPast        DateClass = "past"        // Дата в прошлом
	ClassTooSoon     DateClass = "too_soon"    // Дата внутри окна минимального срока
	ClassUnavailable DateClass = "unavailable" // Оба слота заняты
	ClassPartial     DateClass = "partial"     // Занят ровно один слот
	ClassAvailable   DateClass = "available"   // Оба слота свободны
)

// SlotsBookedForDate возвращает занятость слотов на указанную дату
// Учитываются только активные бронирования (pending/confirmed) на тот же день;
// даты сравниваются с точностью до дня, время внутри дня игнорируется
func SlotsBookedForDate(date time.Time, reservations []*domain.Reservation) BookedSlots {
	var booked BookedSlots
	if date.IsZero() {
		return booked
	}

	morningStart := domain.SlotMorning.Window().Start
	afternoonStart := domain.SlotAfternoon.Window().Start

	for _, r := range reservations {
		if r == nil || !r.IsActive() {
			continue
		}
		if !SameDay(r.EventDate, date) {
			continue
		}

		switch {
		case r.StartTime.Equal(morningStart):
			booked.Morning = true
		case r.StartTime.Equal(afternoonStart):
			booked.Afternoon = true
		}
	}

	return booked
}

// ClassifyDate классифицирует дату для календаря бронирования
// Приоритет классов: past > too_soon > занятость слотов
// Прошедшая дата никогда не становится доступной, даже если слоты свободны
// minLeadDays = 0 отключает проверку минимального срока (административный поток)
func ClassifyDate(
	date time.Time,
	reservations []*domain.Reservation,
	today time.Time,
	minLeadDays int,
) (DateClass, error) {
	if date.IsZero() {
		return "", ErrNoDate
	}

	dateOnly := StartOfDay(date)
	todayOnly := StartOfDay(today)

	if dateOnly.Before(todayOnly) {
		return ClassPast, nil
	}

	if minLeadDays > 0 {
		minDate := todayOnly.AddDate(0, 0, minLeadDays)
		if dateOnly.Before(minDate) {
			return ClassTooSoon, nil
		}
	}

	booked := SlotsBookedForDate(date, reservations)
	switch {
	case booked.Morning && booked.Afternoon:
		return ClassUnavailable, nil
	case booked.Morning || booked.Afternoon:
		return ClassPartial, nil
	default:
		return ClassAvailable, nil
	}
}

// AvailableSlotOptions возвращает незанятые слоты на дату
// для наполнения селектора; пусто, если дата не выбрана или оба слота заняты
func AvailableSlotOptions(date time.Time, reservations []*domain.Reservation) []domain.TimeSlot {
	options := make([]domain.TimeSlot, 0, 2)
	if date.IsZero() {
		return options
	}

	booked := SlotsBookedForDate(date, reservations)
	if !booked.Morning {
		options = append(options, domain.SlotMorning)
	}
	if !booked.Afternoon {
		options = append(options, domain.SlotAfternoon)
	}

	return options
}

// SameDay проверяет, что две даты относятся к одному и тому же дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// StartOfDay обнуляет время, чтобы сравнивать только даты
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
