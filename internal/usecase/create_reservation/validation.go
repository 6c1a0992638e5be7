package create_reservation

import (
	"fmt"
	"time"

	"github.com/salonmagico/SM-ReservationService/internal/availability"
	"github.com/salonmagico/SM-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.PackageID <= 0 {
		return fmt.Errorf("%w: packageID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !domain.TimeSlot(req.Slot).IsValid() {
		return fmt.Errorf("%w: slot must be %q or %q", ErrInvalidInput, domain.SlotMorning, domain.SlotAfternoon)
	}

	// Мампара без тематики не имеет смысла
	if req.MamparaID != nil && req.ThemeID == nil {
		return fmt.Errorf("%w: mampara requires a theme", ErrInvalidInput)
	}

	if req.CelebrantName == "" {
		return fmt.Errorf("%w: celebrantName is required", ErrInvalidInput)
	}
	if len(req.CelebrantName) > domain.MaxCelebrantNameLength {
		return fmt.Errorf("%w: celebrantName exceeds %d characters", ErrInvalidInput, domain.MaxCelebrantNameLength)
	}

	if req.CelebrantAge < domain.MinCelebrantAge || req.CelebrantAge > domain.MaxCelebrantAge {
		return fmt.Errorf("%w: celebrantAge must be between %d and %d",
			ErrInvalidInput, domain.MinCelebrantAge, domain.MaxCelebrantAge)
	}

	if req.Comments != nil && len(*req.Comments) > domain.MaxCommentsLength {
		return fmt.Errorf("%w: comments exceed %d characters", ErrInvalidInput, domain.MaxCommentsLength)
	}

	for _, extra := range req.Extras {
		if extra.ID <= 0 {
			return fmt.Errorf("%w: extra id must be positive", ErrInvalidInput)
		}
		if extra.Quantity < 1 || extra.Quantity > domain.MaxExtraQuantity {
			return fmt.Errorf("%w: extra quantity must be between 1 and %d",
				ErrInvalidInput, domain.MaxExtraQuantity)
		}
	}

	if req.TotalOverride != nil && *req.TotalOverride < 0 {
		return fmt.Errorf("%w: total override must not be negative", ErrInvalidInput)
	}

	return nil
}

// validateSelections проверяет выбранные позиции против текущего каталога
func validateSelections(req *Request, catalog *domain.Catalog) error {
	if catalog.PackageByID(req.PackageID) == nil {
		return ErrPackageNotFound
	}

	if req.FoodOptionID != nil && catalog.FoodOptionByID(*req.FoodOptionID) == nil {
		return ErrFoodOptionNotFound
	}

	if req.ThemeID != nil {
		theme := catalog.ThemeByID(*req.ThemeID)
		if theme == nil || !theme.Active {
			return ErrThemeNotFound
		}
	}

	if req.MamparaID != nil {
		mampara := catalog.MamparaByID(*req.MamparaID)
		if mampara == nil || !mampara.Active {
			return ErrMamparaNotFound
		}
		if mampara.ThemeID != *req.ThemeID {
			return ErrMamparaThemeMismatch
		}
	}

	for _, extra := range req.Extras {
		if catalog.ExtraByID(extra.ID) == nil {
			return fmt.Errorf("%w: id=%d", ErrExtraNotFound, extra.ID)
		}
	}

	return nil
}

// validateDate проверяет, что дата подходит для бронирования
// minLeadDays = 0 отключает проверку минимального срока (административный поток)
func validateDate(date time.Time, now time.Time, minLeadDays int) error {
	dateOnly := availability.StartOfDay(date)
	todayOnly := availability.StartOfDay(now)

	if dateOnly.Before(todayOnly) {
		return ErrInvalidDate
	}

	if minLeadDays > 0 {
		minDate := todayOnly.AddDate(0, 0, minLeadDays)
		if dateOnly.Before(minDate) {
			return fmt.Errorf("%w: must book at least %d days in advance", ErrDateTooSoon, minLeadDays)
		}
	}

	return nil
}

// slotBooked проверяет занятость запрошенного слота среди активных бронирований
func slotBooked(slot domain.TimeSlot, date time.Time, reservations []*domain.Reservation) bool {
	booked := availability.SlotsBookedForDate(date, reservations)

	switch slot {
	case domain.SlotMorning:
		return booked.Morning
	case domain.SlotAfternoon:
		return booked.Afternoon
	default:
		return true
	}
}
