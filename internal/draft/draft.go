package draft

import (
	"time"

	"github.com/salonmagico/SM-ReservationService/internal/domain"
	"github.com/salonmagico/SM-ReservationService/internal/pricing"
)

// Draft черновик бронирования: изменяемое состояние формы,
// из которого движки ценообразования и доступности выводят производные данные.
// Черновик создаётся пустым (новое бронирование) или гидрируется из
// сохранённой записи (редактирование); после каждой мутации вызывается
// Recompute вместо реактивных цепочек UI-фреймворка.
type Draft struct {
	Package    *domain.Selection[domain.Package]
	Date       time.Time
	Slot       domain.TimeSlot
	FoodOption *domain.Selection[domain.FoodOption]
	Theme      *domain.Selection[domain.Theme]
	Mampara    *domain.Selection[domain.Mampara]
	Extras     []domain.ExtraSelection

	CelebrantName string
	CelebrantAge  int
	Comments      string

	// Total выводится из остальных полей, пока TotalOverridden не включён
	Total           float64
	TotalOverridden bool
}

// New создает пустой черновик
func New() *Draft {
	return &Draft{Extras: make([]domain.ExtraSelection, 0)}
}

// Recompute пересчитывает итоговую сумму по текущему состоянию черновика
// Если включён ручной override, сумма не трогается
// Повторный вызов на неизменённом черновике даёт идентичный результат
func (d *Draft) Recompute(catalog *domain.Catalog, tuesdaySurcharge float64) {
	if d.TotalOverridden {
		return
	}

	d.Total = pricing.Total(
		d.Package,
		d.Date,
		d.FoodOption,
		d.Mampara,
		d.Extras,
		catalog,
		tuesdaySurcharge,
	)
}

// SetTheme устанавливает тематику и сбрасывает мампару,
// если её тематика не совпадает с новой
func (d *Draft) SetTheme(sel *domain.Selection[domain.Theme], catalog *domain.Catalog) {
	d.Theme = sel

	if d.Mampara == nil {
		return
	}

	mampara := d.Mampara.Resolve(mamparaLookup(catalog))
	if mampara == nil || sel == nil || mampara.ThemeID != sel.ID {
		d.Mampara = nil
	}
}

// SetMampara устанавливает мампару
// Мампара чужой тематики не устанавливается (селектор такие не предлагает,
// но проверка дублируется здесь как единая точка инварианта)
func (d *Draft) SetMampara(sel *domain.Selection[domain.Mampara], catalog *domain.Catalog) {
	if sel == nil {
		d.Mampara = nil
		return
	}

	mampara := sel.Resolve(mamparaLookup(catalog))
	if mampara == nil {
		d.Mampara = nil
		return
	}

	if d.Theme == nil || mampara.ThemeID != d.Theme.ID {
		d.Mampara = nil
		return
	}

	d.Mampara = sel
}

// SetExtraQuantity устанавливает количество дополнительной услуги
// Количество < 1 удаляет строку из списка, а не оставляет её с нулём
func (d *Draft) SetExtraQuantity(extraID int64, quantity int) {
	if quantity < 1 {
		d.removeExtra(extraID)
		return
	}

	for i := range d.Extras {
		if d.Extras[i].ID == extraID {
			d.Extras[i].Quantity = quantity
			return
		}
	}

	d.Extras = append(d.Extras, domain.ExtraSelection{ID: extraID, Quantity: quantity})
}

// OverrideTotal включает ручной override итоговой суммы
func (d *Draft) OverrideTotal(total float64) {
	d.TotalOverridden = true
	d.Total = pricing.Round2(total)
}

// ClearOverride выключает ручной override и возвращает сумму к производной
func (d *Draft) ClearOverride(catalog *domain.Catalog, tuesdaySurcharge float64) {
	d.TotalOverridden = false
	d.Recompute(catalog, tuesdaySurcharge)
}

// removeExtra удаляет строку услуги из списка
func (d *Draft) removeExtra(extraID int64) {
	for i := range d.Extras {
		if d.Extras[i].ID == extraID {
			d.Extras = append(d.Extras[:i], d.Extras[i+1:]...)
			return
		}
	}
}

func mamparaLookup(catalog *domain.Catalog) func(id int64) *domain.Mampara {
	if catalog == nil {
		return nil
	}
	return catalog.MamparaByID
}
