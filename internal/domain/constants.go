package domain

// Default booking rule values
const (
	// DefaultTuesdaySurcharge фиксированная наценка за вторник
	// Вторник тарифицируется как будний день, наценка добавляется сверху ровно один раз
	DefaultTuesdaySurcharge = 1500.0

	// DefaultMinLeadDays минимальное количество дней до праздника
	// для клиентского потока; 0 = без ограничения (административный поток)
	DefaultMinLeadDays = 7
)

// Business validation constants
const (
	MinLeadDays                 = 0
	MaxLeadDays                 = 60
	MinCelebrantAge             = 1
	MaxCelebrantAge             = 120
	MaxCelebrantNameLength      = 150
	MaxCommentsLength           = 500
	MaxCancellationReasonLength = 500
	MaxExtraQuantity            = 50
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, блокирующие слот
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses статусы, не блокирующие слот
// Используются для фильтрации при подсчёте доступности
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
	StatusCompleted,
}

// BookingRules правила бронирования площадки, загружаются из конфигурации
type BookingRules struct {
	MinLeadDays      int     // Минимум дней до даты праздника в клиентском потоке
	TuesdaySurcharge float64 // Наценка за вторник
	StaffIDs         []int64 // Пользователи с правами администратора площадки
}

// IsStaff возвращает true, если пользователь - сотрудник площадки
func (r *BookingRules) IsStaff(userID int64) bool {
	for _, id := range r.StaffIDs {
		if id == userID {
			return true
		}
	}
	return false
}
