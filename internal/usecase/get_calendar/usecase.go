package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/salonmagico/SM-ReservationService/internal/availability"
	"github.com/salonmagico/SM-ReservationService/internal/domain"
)

// UseCase use case для получения календаря доступности на месяц
type UseCase struct {
	reservationRepo ReservationRepository
	rules           domain.BookingRules
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	rules domain.BookingRules,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		rules:           rules,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения календаря
// Активные бронирования месяца запрашиваются одним запросом,
// затем каждый день классифицируется по занятости его слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: user=%d, month=%04d-%02d", req.UserID, req.Year, int(req.Month))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	firstDay := time.Date(req.Year, req.Month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	filter := domain.ReservationsFilter{
		StartDate:       &firstDay,
		EndDate:         &lastDay,
		IncludeInactive: false, // Только активные бронирования
	}

	reservations, err := uc.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// Группируем бронирования по дню, чтобы не сканировать весь месяц на каждую дату
	byDay := make(map[string][]*domain.Reservation, len(reservations))
	for _, r := range reservations {
		key := r.EventDate.Format(domain.DateFormat)
		byDay[key] = append(byDay[key], r)
	}

	// Сотрудники видят календарь без окна минимального срока
	minLeadDays := uc.rules.MinLeadDays
	if uc.rules.IsStaff(req.UserID) {
		minLeadDays = 0
	}

	days := make([]Day, 0, lastDay.Day())
	for d := firstDay; !d.After(lastDay); d = d.AddDate(0, 0, 1) {
		key := d.Format(domain.DateFormat)

		class, err := availability.ClassifyDate(d, byDay[key], now, minLeadDays)
		if err != nil {
			uc.logger.Error("GetCalendar: failed to classify date %s: %v", key, err)
			return nil, fmt.Errorf("%w: failed to classify date: %v", ErrInternal, err)
		}

		days = append(days, Day{Date: key, Class: class})
	}

	uc.logger.Info("GetCalendar: classified %d days for month=%04d-%02d", len(days), req.Year, int(req.Month))

	return &Response{
		Year:  req.Year,
		Month: req.Month,
		Days:  days,
	}, nil
}

func validateRequest(req *Request) error {
	if req.Year < 2000 || req.Year > 2100 {
		return fmt.Errorf("%w: year out of range", ErrInvalidInput)
	}
	if req.Month < time.January || req.Month > time.December {
		return fmt.Errorf("%w: invalid month", ErrInvalidInput)
	}
	return nil
}
