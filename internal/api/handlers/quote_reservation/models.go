package quote_reservation

import (
	"time"

	"github.com/salonmagico/SM-ReservationService/internal/domain"
	quoteReservation "github.com/salonmagico/SM-ReservationService/internal/usecase/quote_reservation"
)

// ExtraRequest выбранная дополнительная услуга
type ExtraRequest struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

// QuoteRequest HTTP request model
// Все поля опциональны: частично заполненная форма даёт частичную разбивку
type QuoteRequest struct {
	PackageID    *int64         `json:"packageId,omitempty"`
	FoodOptionID *int64         `json:"foodOptionId,omitempty"`
	MamparaID    *int64         `json:"mamparaId,omitempty"`
	EventDate    *string        `json:"eventDate,omitempty"` // "2025-10-15"
	Extras       []ExtraRequest `json:"extras,omitempty"`
}

// QuoteResponse HTTP response model с разбивкой стоимости
type QuoteResponse struct {
	PackagePrice     float64 `json:"packagePrice"`
	FoodOptionPrice  float64 `json:"foodOptionPrice"`
	MamparaPrice     float64 `json:"mamparaPrice"`
	ExtrasTotal      float64 `json:"extrasTotal"`
	TuesdaySurcharge float64 `json:"tuesdaySurcharge"`
	Total            float64 `json:"total"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() (*quoteReservation.Request, error) {
	req := &quoteReservation.Request{
		PackageID:    r.PackageID,
		FoodOptionID: r.FoodOptionID,
		MamparaID:    r.MamparaID,
	}

	if r.EventDate != nil && *r.EventDate != "" {
		date, err := time.Parse(domain.DateFormat, *r.EventDate)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}

	for _, extra := range r.Extras {
		req.Extras = append(req.Extras, quoteReservation.ExtraRequest{ID: extra.ID, Quantity: extra.Quantity})
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteReservation.Response) *QuoteResponse {
	return &QuoteResponse{
		PackagePrice:     resp.PackagePrice,
		FoodOptionPrice:  resp.FoodOptionPrice,
		MamparaPrice:     resp.MamparaPrice,
		ExtrasTotal:      resp.ExtrasTotal,
		TuesdaySurcharge: resp.TuesdaySurcharge,
		Total:            resp.Total,
	}
}
