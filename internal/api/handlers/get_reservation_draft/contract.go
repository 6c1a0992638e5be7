package get_reservation_draft

import (
	"context"

	"github.com/salonmagico/SM-ReservationService/internal/service/reservations/models"
)

type ReservationService interface {
	GetDraft(ctx context.Context, id int64, userID int64) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
