package adapter

import (
	"errors"
	"time"

	"github.com/salonmagico/SM-ReservationService/internal/domain"
	"github.com/salonmagico/SM-ReservationService/internal/draft"
	"github.com/salonmagico/SM-ReservationService/internal/pricing"
	"github.com/salonmagico/SM-ReservationService/pkg/ptr"
)

// Адаптер отправки: преобразует черновик (UI-форма с rich-выборами)
// в плоскую запись для хранилища и обратно при гидрации формы редактирования.

var (
	// ErrNoPackage возвращается, когда в черновике не выбран пакет
	ErrNoPackage = errors.New("adapter: draft has no package selected")

	// ErrNoDate возвращается, когда в черновике не выбрана дата
	ErrNoDate = errors.New("adapter: draft has no date selected")

	// ErrInvalidSlot возвращается при некорректном слоте
	ErrInvalidSlot = errors.New("adapter: draft has no valid time slot")
)

// ToRecord преобразует черновик в запись бронирования
// tuesdaySurcharge нужна для фиксации фактической цены пакета в истории
// Rich-выборы сводятся к голым id (отсутствующий выбор -> NULL),
// строки услуг с некорректным id или количеством отбрасываются,
// метка слота разворачивается в пару (start_time, end_time),
// сумма пишется числом с 2 знаками вместе с флагом ручного override
// Денормализованные названия и цены фиксируются по каталогу на момент отправки
func ToRecord(d *draft.Draft, userID int64, catalog *domain.Catalog, tuesdaySurcharge float64) (*domain.Reservation, error) {
	if d == nil || d.Package == nil {
		return nil, ErrNoPackage
	}
	if d.Date.IsZero() {
		return nil, ErrNoDate
	}
	if !d.Slot.IsValid() {
		return nil, ErrInvalidSlot
	}

	window := d.Slot.Window()

	rec := &domain.Reservation{
		UserID:          userID,
		PackageID:       d.Package.ID,
		EventDate:       dateOnly(d.Date),
		StartTime:       window.Start,
		EndTime:         window.End,
		CelebrantName:   d.CelebrantName,
		CelebrantAge:    d.CelebrantAge,
		Total:           pricing.Round2(d.Total),
		TotalOverridden: d.TotalOverridden,
		Status:          domain.StatusPending,
	}

	if d.Comments != "" {
		rec.Comments = ptr.Ptr(d.Comments)
	}

	if pkg := resolvePackage(d, catalog); pkg != nil {
		rec.PackageName = pkg.Name
		rec.PackagePrice = pricing.PackagePrice(pkg, rec.EventDate, tuesdaySurcharge)
	}

	if d.FoodOption != nil {
		rec.FoodOptionID = ptr.Ptr(d.FoodOption.ID)
		if option := d.FoodOption.Resolve(lookupFoodOption(catalog)); option != nil {
			rec.FoodOptionName = ptr.Ptr(option.Name)
			rec.FoodOptionPrice = option.ExtraPrice
		}
	}

	if d.Theme != nil {
		rec.ThemeID = ptr.Ptr(d.Theme.ID)
	}

	if d.Mampara != nil {
		rec.MamparaID = ptr.Ptr(d.Mampara.ID)
		if mampara := d.Mampara.Resolve(lookupMampara(catalog)); mampara != nil {
			rec.MamparaPrice = mampara.Price
		}
	}

	rec.Extras = normalizeExtras(d.Extras, catalog)

	return rec, nil
}

// HydrateDraft восстанавливает черновик из сохранённой записи и текущего каталога
// Каждый сохранённый id ищется в каталоге; id без совпадения оставляет поле
// невыбранным (каталог мог измениться с момента бронирования), гидрация
// при этом не падает
func HydrateDraft(rec *domain.Reservation, catalog *domain.Catalog) *draft.Draft {
	d := draft.New()
	if rec == nil {
		return d
	}

	d.Date = rec.EventDate
	d.CelebrantName = rec.CelebrantName
	d.CelebrantAge = rec.CelebrantAge
	d.Total = rec.Total
	d.TotalOverridden = rec.TotalOverridden

	if rec.Comments != nil {
		d.Comments = *rec.Comments
	}

	if slot, ok := rec.Slot(); ok {
		d.Slot = slot
	}

	if catalog != nil {
		if pkg := catalog.PackageByID(rec.PackageID); pkg != nil {
			d.Package = domain.SelectEmbedded(pkg.ID, *pkg)
		}
		if rec.FoodOptionID != nil {
			if option := catalog.FoodOptionByID(*rec.FoodOptionID); option != nil {
				d.FoodOption = domain.SelectEmbedded(option.ID, *option)
			}
		}
		if rec.ThemeID != nil {
			if theme := catalog.ThemeByID(*rec.ThemeID); theme != nil {
				d.Theme = domain.SelectEmbedded(theme.ID, *theme)
			}
		}
		if rec.MamparaID != nil {
			if mampara := catalog.MamparaByID(*rec.MamparaID); mampara != nil {
				d.Mampara = domain.SelectEmbedded(mampara.ID, *mampara)
			}
		}

		for _, line := range rec.Extras {
			if catalog.ExtraByID(line.ExtraID) == nil {
				continue
			}
			d.SetExtraQuantity(line.ExtraID, line.Quantity)
		}
	}

	return d
}

// normalizeExtras приводит выбранные услуги к строкам записи,
// отбрасывая некорректные вместо отправки их в хранилище
func normalizeExtras(extras []domain.ExtraSelection, catalog *domain.Catalog) []domain.ExtraLine {
	lines := make([]domain.ExtraLine, 0, len(extras))

	for _, sel := range extras {
		if sel.ID <= 0 || sel.Quantity < 1 {
			continue
		}

		line := domain.ExtraLine{ExtraID: sel.ID, Quantity: sel.Quantity}
		if catalog != nil {
			if extra := catalog.ExtraByID(sel.ID); extra != nil {
				line.Name = extra.Name
				line.UnitPrice = extra.Price
			}
		}

		lines = append(lines, line)
	}

	return lines
}

// dateOnly нормализует дату события к полуночи,
// чтобы исключить сдвиг на день при разных часовых поясах клиента
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func resolvePackage(d *draft.Draft, catalog *domain.Catalog) *domain.Package {
	return d.Package.Resolve(lookupPackage(catalog))
}

func lookupPackage(catalog *domain.Catalog) func(id int64) *domain.Package {
	if catalog == nil {
		return nil
	}
	return catalog.PackageByID
}

func lookupFoodOption(catalog *domain.Catalog) func(id int64) *domain.FoodOption {
	if catalog == nil {
		return nil
	}
	return catalog.FoodOptionByID
}

func lookupMampara(catalog *domain.Catalog) func(id int64) *domain.Mampara {
	if catalog == nil {
		return nil
	}
	return catalog.MamparaByID
}
