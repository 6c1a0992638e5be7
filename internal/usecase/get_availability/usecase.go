package get_availability

import (
	"context"
	"fmt"

	"github.com/salonmagico/SM-ReservationService/internal/availability"
	"github.com/salonmagico/SM-ReservationService/internal/domain"
)

// UseCase use case для получения доступности слотов на дату
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

// Execute выполняет use case получения доступности
// Слот можно выбрать, только если он свободен и дата классифицирована как доступная
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: user=%d, date=%s", req.UserID, req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailability: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	reservations, err := uc.reservationRepo.GetActiveByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// Сотрудники видят доступность без окна минимального срока
	minLeadDays := uc.rules.MinLeadDays
	if uc.rules.IsStaff(req.UserID) {
		minLeadDays = 0
	}

	class, err := availability.ClassifyDate(req.Date, reservations, now, minLeadDays)
	if err != nil {
		uc.logger.Warn("GetAvailability: classification failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	booked := availability.SlotsBookedForDate(req.Date, reservations)
	dateBookable := class == availability.ClassAvailable || class == availability.ClassPartial

	slots := []Slot{
		buildSlot(domain.SlotMorning, booked.Morning, dateBookable),
		buildSlot(domain.SlotAfternoon, booked.Afternoon, dateBookable),
	}

	uc.logger.Info("GetAvailability: date=%s class=%s morning_booked=%t afternoon_booked=%t",
		req.Date.Format(domain.DateFormat), class, booked.Morning, booked.Afternoon)

	return &Response{
		Date:  req.Date,
		Class: class,
		Slots: slots,
	}, nil
}

func buildSlot(slot domain.TimeSlot, isBooked bool, dateBookable bool) Slot {
	window := slot.Window()
	return Slot{
		Slot:      string(slot),
		StartTime: window.Start,
		EndTime:   window.End,
		Booked:    isBooked,
		Bookable:  dateBookable && !isBooked,
	}
}
