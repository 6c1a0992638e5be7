package get_calendar

import (
	"fmt"

	getCalendar "github.com/salonmagico/SM-ReservationService/internal/usecase/get_calendar"
)

// DayResponse классификация одного дня месяца
type DayResponse struct {
	Date  string `json:"date"`
	Class string `json:"class"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Month string        `json:"month"` // "2025-11"
	Days  []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		days = append(days, DayResponse{Date: day.Date, Class: string(day.Class)})
	}

	return &CalendarResponse{
		Month: fmt.Sprintf("%04d-%02d", resp.Year, int(resp.Month)),
		Days:  days,
	}
}
