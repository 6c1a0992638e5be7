package domain

import "github.com/salonmagico/SM-ReservationService/pkg/types"

// TimeSlot один из двух фиксированных дневных слотов площадки
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"   // 11:00 - 16:00
	SlotAfternoon TimeSlot = "afternoon" // 17:00 - 22:00
)

// SlotWindow временное окно слота
type SlotWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// slotTable фиксированная таблица слотов площадки
// Площадка работает двумя окнами в день, расписание не конфигурируется
var slotTable = map[TimeSlot]SlotWindow{
	SlotMorning:   {Start: "11:00", End: "16:00"},
	SlotAfternoon: {Start: "17:00", End: "22:00"},
}

// AllSlots возвращает оба слота в хронологическом порядке
func AllSlots() []TimeSlot {
	return []TimeSlot{SlotMorning, SlotAfternoon}
}

// IsValid проверяет, что значение слота допустимо
func (s TimeSlot) IsValid() bool {
	_, ok := slotTable[s]
	return ok
}

// Window возвращает временное окно слота
// Для неизвестного слота возвращает пустое окно
func (s TimeSlot) Window() SlotWindow {
	return slotTable[s]
}

// SlotByStartTime возвращает слот по времени начала
// Время сравнивается с точностью до минуты ("11:00" и "11:00:00" эквивалентны)
func SlotByStartTime(start types.TimeString) (TimeSlot, bool) {
	for _, slot := range AllSlots() {
		if slotTable[slot].Start.Equal(start) {
			return slot, true
		}
	}
	return "", false
}
