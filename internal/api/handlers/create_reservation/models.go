package create_reservation

import (
	"time"

	"github.com/salonmagico/SM-ReservationService/internal/domain"
	createReservation "github.com/salonmagico/SM-ReservationService/internal/usecase/create_reservation"
)

// ExtraRequest выбранная дополнительная услуга
type ExtraRequest struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	PackageID     int64          `json:"packageId"`
	FoodOptionID  *int64         `json:"foodOptionId,omitempty"`
	ThemeID       *int64         `json:"themeId,omitempty"`
	MamparaID     *int64         `json:"mamparaId,omitempty"`
	EventDate     string         `json:"eventDate"` // "2025-10-15"
	Slot          string         `json:"slot"`      // "morning" / "afternoon"
	Extras        []ExtraRequest `json:"extras,omitempty"`
	CelebrantName string         `json:"celebrantName"`
	CelebrantAge  int            `json:"celebrantAge"`
	Comments      *string        `json:"comments,omitempty"`
	TotalOverride *float64       `json:"totalOverride,omitempty"`
}

// ExtraLineResponse строка услуги с зафиксированной ценой
type ExtraLineResponse struct {
	ExtraID   int64   `json:"extraId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64               `json:"id"`
	UserID          int64               `json:"userId"`
	PackageID       int64               `json:"packageId"`
	FoodOptionID    *int64              `json:"foodOptionId,omitempty"`
	ThemeID         *int64              `json:"themeId,omitempty"`
	MamparaID       *int64              `json:"mamparaId,omitempty"`
	EventDate       string              `json:"eventDate"`
	StartTime       string              `json:"startTime"`
	EndTime         string              `json:"endTime"`
	Slot            string              `json:"slot"`
	Status          string              `json:"status"`
	Extras          []ExtraLineResponse `json:"extras"`
	CelebrantName   string              `json:"celebrantName"`
	CelebrantAge    int                 `json:"celebrantAge"`
	Comments        *string             `json:"comments,omitempty"`
	PackageName     string              `json:"packageName"`
	PackagePrice    float64             `json:"packagePrice"`
	FoodOptionName  *string             `json:"foodOptionName,omitempty"`
	FoodOptionPrice float64             `json:"foodOptionPrice,omitempty"`
	MamparaPrice    float64             `json:"mamparaPrice,omitempty"`
	Total           float64             `json:"total"`
	TotalOverridden bool                `json:"totalOverridden"`
	CreatedAt       string              `json:"createdAt"`
	UpdatedAt       string              `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	// Парсим дату
	eventDate, err := time.Parse(domain.DateFormat, r.EventDate)
	if err != nil {
		return nil, err
	}

	extras := make([]createReservation.ExtraRequest, 0, len(r.Extras))
	for _, extra := range r.Extras {
		extras = append(extras, createReservation.ExtraRequest{ID: extra.ID, Quantity: extra.Quantity})
	}

	return &createReservation.Request{
		UserID:        userID,
		PackageID:     r.PackageID,
		FoodOptionID:  r.FoodOptionID,
		ThemeID:       r.ThemeID,
		MamparaID:     r.MamparaID,
		Date:          eventDate,
		Slot:          r.Slot,
		Extras:        extras,
		CelebrantName: r.CelebrantName,
		CelebrantAge:  r.CelebrantAge,
		Comments:      r.Comments,
		TotalOverride: r.TotalOverride,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	extras := make([]ExtraLineResponse, 0, len(resp.Extras))
	for _, line := range resp.Extras {
		extras = append(extras, ExtraLineResponse{
			ExtraID:   line.ExtraID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	return &ReservationResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		PackageID:       resp.PackageID,
		FoodOptionID:    resp.FoodOptionID,
		ThemeID:         resp.ThemeID,
		MamparaID:       resp.MamparaID,
		EventDate:       resp.EventDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		Slot:            resp.Slot,
		Status:          resp.Status,
		Extras:          extras,
		CelebrantName:   resp.CelebrantName,
		CelebrantAge:    resp.CelebrantAge,
		Comments:        resp.Comments,
		PackageName:     resp.PackageName,
		PackagePrice:    resp.PackagePrice,
		FoodOptionName:  resp.FoodOptionName,
		FoodOptionPrice: resp.FoodOptionPrice,
		MamparaPrice:    resp.MamparaPrice,
		Total:           resp.Total,
		TotalOverridden: resp.TotalOverridden,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
