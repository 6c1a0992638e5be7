package models

import (
	"errors"
	"time"

	"github.com/salonmagico/SM-ReservationService/internal/domain"
	"github.com/salonmagico/SM-ReservationService/internal/draft"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// GetUserReservationsRequest запрос на получение бронирований пользователя
// RequesterID - кто запрашивает; историю чужого пользователя видит только сотрудник
type GetUserReservationsRequest struct {
	UserID      int64   `json:"userId"`
	RequesterID int64   `json:"requesterId"`
	Status      *string `json:"status,omitempty"`
}

// ListReservationsRequest запрос на получение бронирований с гибкой фильтрацией
type ListReservationsRequest struct {
	UserID          int64      `json:"userId"`
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые и завершённые
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ExtraLineResponse строка дополнительной услуги в ответе
type ExtraLineResponse struct {
	ExtraID   int64   `json:"extraId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	PackageID    int64  `json:"packageId"`
	FoodOptionID *int64 `json:"foodOptionId,omitempty"`
	ThemeID      *int64 `json:"themeId,omitempty"`
	MamparaID    *int64 `json:"mamparaId,omitempty"`

	EventDate string `json:"eventDate"` // "2025-10-15"
	StartTime string `json:"startTime"` // "11:00"
	EndTime   string `json:"endTime"`   // "16:00"
	Slot      string `json:"slot,omitempty"`

	Extras []ExtraLineResponse `json:"extras"`

	CelebrantName string  `json:"celebrantName"`
	CelebrantAge  int     `json:"celebrantAge"`
	Comments      *string `json:"comments,omitempty"`

	// Денормализованные данные каталога
	PackageName     string  `json:"packageName"`
	PackagePrice    float64 `json:"packagePrice"`
	FoodOptionName  *string `json:"foodOptionName,omitempty"`
	FoodOptionPrice float64 `json:"foodOptionPrice,omitempty"`
	MamparaPrice    float64 `json:"mamparaPrice,omitempty"`

	Total           float64 `json:"total"`
	TotalOverridden bool    `json:"totalOverridden"`

	Status string `json:"status"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// DraftResponse черновик формы редактирования, восстановленный из записи
type DraftResponse struct {
	PackageID    *int64 `json:"packageId,omitempty"`
	FoodOptionID *int64 `json:"foodOptionId,omitempty"`
	ThemeID      *int64 `json:"themeId,omitempty"`
	MamparaID    *int64 `json:"mamparaId,omitempty"`

	EventDate string `json:"eventDate,omitempty"`
	Slot      string `json:"slot,omitempty"`

	Extras []ExtraSelectionResponse `json:"extras"`

	CelebrantName string `json:"celebrantName"`
	CelebrantAge  int    `json:"celebrantAge"`
	Comments      string `json:"comments,omitempty"`

	Total           float64 `json:"total"`
	TotalOverridden bool    `json:"totalOverridden"`
}

// ExtraSelectionResponse выбранная услуга в черновике
type ExtraSelectionResponse struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 r.ID,
		UserID:             r.UserID,
		PackageID:          r.PackageID,
		FoodOptionID:       r.FoodOptionID,
		ThemeID:            r.ThemeID,
		MamparaID:          r.MamparaID,
		EventDate:          r.EventDate.Format(domain.DateFormat),
		StartTime:          r.StartTime.String(),
		EndTime:            r.EndTime.String(),
		Extras:             fromDomainExtras(r.Extras),
		CelebrantName:      r.CelebrantName,
		CelebrantAge:       r.CelebrantAge,
		Comments:           r.Comments,
		PackageName:        r.PackageName,
		PackagePrice:       r.PackagePrice,
		FoodOptionName:     r.FoodOptionName,
		FoodOptionPrice:    r.FoodOptionPrice,
		MamparaPrice:       r.MamparaPrice,
		Total:              r.Total,
		TotalOverridden:    r.TotalOverridden,
		Status:             string(r.Status),
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if slot, ok := r.Slot(); ok {
		resp.Slot = string(slot)
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if r.CancelledAt != nil {
		cancelledStr := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	if reservations == nil {
		return &ReservationListResponse{
			Reservations: []ReservationResponse{},
		}
	}

	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, len(reservations)),
	}

	for i, reservation := range reservations {
		if r := FromDomainReservation(reservation); r != nil {
			resp.Reservations[i] = *r
		}
	}

	return resp
}

// FromDraft конвертирует гидрированный черновик в DTO формы редактирования
func FromDraft(d *draft.Draft) *DraftResponse {
	if d == nil {
		return nil
	}

	resp := &DraftResponse{
		Extras:          make([]ExtraSelectionResponse, 0, len(d.Extras)),
		CelebrantName:   d.CelebrantName,
		CelebrantAge:    d.CelebrantAge,
		Comments:        d.Comments,
		Total:           d.Total,
		TotalOverridden: d.TotalOverridden,
	}

	if d.Package != nil {
		resp.PackageID = &d.Package.ID
	}
	if d.FoodOption != nil {
		resp.FoodOptionID = &d.FoodOption.ID
	}
	if d.Theme != nil {
		resp.ThemeID = &d.Theme.ID
	}
	if d.Mampara != nil {
		resp.MamparaID = &d.Mampara.ID
	}

	if !d.Date.IsZero() {
		resp.EventDate = d.Date.Format(domain.DateFormat)
	}
	if d.Slot.IsValid() {
		resp.Slot = string(d.Slot)
	}

	for _, sel := range d.Extras {
		resp.Extras = append(resp.Extras, ExtraSelectionResponse{ID: sel.ID, Quantity: sel.Quantity})
	}

	return resp
}

func fromDomainExtras(lines []domain.ExtraLine) []ExtraLineResponse {
	resp := make([]ExtraLineResponse, 0, len(lines))
	for _, line := range lines {
		resp = append(resp, ExtraLineResponse{
			ExtraID:   line.ExtraID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}
	return resp
}

// ToDomainStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)

	validStatuses := []domain.ReservationStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCancelled,
		domain.StatusCompleted,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
