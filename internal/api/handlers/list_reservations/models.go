package list_reservations

import (
	"fmt"
	"strconv"
	"time"

	"github.com/salonmagico/SM-ReservationService/internal/domain"
	"github.com/salonmagico/SM-ReservationService/internal/service/reservations/models"
)

// ToServiceRequest собирает запрос сервиса из query параметров
// from/to задают период (обе границы включительно), по отдельности тоже работают
func ToServiceRequest(userID int64, fromStr, toStr, statusStr, includeInactiveStr string) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{
		UserID: userID,
	}

	if fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, fmt.Errorf("invalid from date: %w", err)
		}
		req.StartDate = &from
	}

	if toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return nil, fmt.Errorf("invalid to date: %w", err)
		}
		req.EndDate = &to
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("to date is before from date")
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive flag: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
