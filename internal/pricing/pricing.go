package pricing

import (
	"math"
	"time"

	"github.com/salonmagico/SM-ReservationService/internal/domain"
)

// Движок ценообразования: чистые функции над снимком каталога.
// Никогда не возвращает ошибок и не паникует: каталог приходит асинхронно
// и может быть временно неполным, поэтому любой некорректный или
// отсутствующий вход даёт нулевой вклад в итоговую сумму.

// PackagePrice возвращает цену пакета на указанную дату
// Пн-Чт - цена буднего дня, Пт-Вс - цена выходного
// Вторник тарифицируется как будний день плюс фиксированная наценка,
// добавляемая ровно один раз
func PackagePrice(pkg *domain.Package, date time.Time, tuesdaySurcharge float64) float64 {
	if pkg == nil || date.IsZero() {
		return 0
	}

	weekday := date.Weekday()

	if weekday >= time.Monday && weekday <= time.Thursday {
		price := pkg.PriceWeekday
		if weekday == time.Tuesday {
			price += tuesdaySurcharge
		}
		return price
	}

	return pkg.PriceWeekend
}

// FoodOptionPrice возвращает доплату за вариант питания
// 0, если вариант не выбран или не найден в каталоге
func FoodOptionPrice(sel *domain.Selection[domain.FoodOption], catalog *domain.Catalog) float64 {
	option := sel.Resolve(lookupFoodOption(catalog))
	if option == nil {
		return 0
	}
	return option.ExtraPrice
}

// MamparaPrice возвращает цену выбранной мампары
// 0, если мампара не выбрана или не найдена в каталоге
func MamparaPrice(sel *domain.Selection[domain.Mampara], catalog *domain.Catalog) float64 {
	mampara := sel.Resolve(lookupMampara(catalog))
	if mampara == nil {
		return 0
	}
	return mampara.Price
}

// ExtrasTotal возвращает сумму по списку дополнительных услуг
// Строки с неизвестным id или количеством < 1 дают нулевой вклад
func ExtrasTotal(extras []domain.ExtraSelection, catalog *domain.Catalog) float64 {
	if catalog == nil {
		return 0
	}

	total := 0.0
	for _, line := range extras {
		if line.Quantity < 1 {
			continue
		}
		extra := catalog.ExtraByID(line.ID)
		if extra == nil {
			continue
		}
		total += extra.Price * float64(line.Quantity)
	}

	return total
}

// Total возвращает итоговую сумму бронирования, округлённую до 2 знаков
func Total(
	pkg *domain.Selection[domain.Package],
	date time.Time,
	food *domain.Selection[domain.FoodOption],
	mampara *domain.Selection[domain.Mampara],
	extras []domain.ExtraSelection,
	catalog *domain.Catalog,
	tuesdaySurcharge float64,
) float64 {
	sum := PackagePrice(pkg.Resolve(lookupPackage(catalog)), date, tuesdaySurcharge) +
		FoodOptionPrice(food, catalog) +
		MamparaPrice(mampara, catalog) +
		ExtrasTotal(extras, catalog)

	return Round2(sum)
}

// Round2 округляет денежную сумму до 2 знаков (round half-up)
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
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
