package domain

import (
	"time"

	"github.com/salonmagico/SM-ReservationService/pkg/types"
)

// ReservationStatus статус бронирования
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// ExtraLine строка дополнительной услуги в бронировании
// Название и цена денормализованы на момент бронирования
type ExtraLine struct {
	ExtraID   int64   `json:"extra_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// ExtraSelection выбранная дополнительная услуга в черновике (id + количество)
type ExtraSelection struct {
	ID       int64
	Quantity int
}

// Reservation бронирование праздника в системе
type Reservation struct {
	ID     int64
	UserID int64

	// Ссылки на каталог
	PackageID    int64
	FoodOptionID *int64
	ThemeID      *int64
	MamparaID    *int64

	EventDate time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	Extras []ExtraLine

	CelebrantName string
	CelebrantAge  int
	Comments      *string

	// Денормализованные данные каталога для истории
	PackageName     string
	PackagePrice    float64
	FoodOptionName  *string
	FoodOptionPrice float64
	MamparaPrice    float64

	Total           float64
	TotalOverridden bool

	Status ReservationStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если бронирование блокирует слот
// Слот блокируют только pending и confirmed; cancelled и completed не блокируют
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeCancelled возвращает true, если бронирование может быть отменено
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsCancelled возвращает true, если бронирование отменено
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// Slot возвращает слот бронирования по его времени начала
func (r *Reservation) Slot() (TimeSlot, bool) {
	return SlotByStartTime(r.StartTime)
}

// ReservationsFilter фильтр для получения списка бронирований
type ReservationsFilter struct {
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые и завершённые
}
