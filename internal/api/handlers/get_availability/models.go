package get_availability

import (
	"github.com/salonmagico/SM-ReservationService/internal/domain"
	getAvailability "github.com/salonmagico/SM-ReservationService/internal/usecase/get_availability"
)

// SlotResponse дневной слот с признаком занятости
type SlotResponse struct {
	Slot      string `json:"slot"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Booked    bool   `json:"booked"`
	Bookable  bool   `json:"bookable"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date  string         `json:"date"`
	Class string         `json:"class"`
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			Slot:      slot.Slot,
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Booked:    slot.Booked,
			Bookable:  slot.Bookable,
		})
	}

	return &AvailabilityResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Class: string(resp.Class),
		Slots: slots,
	}
}
