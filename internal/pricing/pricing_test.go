package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/salonmagico/SM-ReservationService/internal/domain"
)

var testCatalog = &domain.Catalog{
	Packages: []domain.Package{
		{ID: 1, Name: "Fiesta Básica", PriceWeekday: 2000, PriceWeekend: 2500},
	},
	FoodOptions: []domain.FoodOption{
		{ID: 10, Name: "Taquiza", ExtraPrice: 800},
	},
	Themes: []domain.Theme{
		{ID: 20, Name: "Dinosaurios", Active: true},
	},
	Mamparas: []domain.Mampara{
		{ID: 30, ThemeID: 20, Pieces: 3, Price: 450, Active: true},
	},
	Extras: []domain.Extra{
		{ID: 1, Name: "Piñata", Price: 100},
		{ID: 2, Name: "Payaso", Price: 1200},
	},
}

// Фиксированные даты: 2025-10-13 - понедельник
var (
	monday    = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	tuesday   = time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
	wednesday = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	thursday  = time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)
	friday    = time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC)
	saturday  = time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
	sunday    = time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
)

func TestPackagePrice_WeekdayBoundaries(t *testing.T) {
	pkg := &domain.Package{ID: 1, PriceWeekday: 2000, PriceWeekend: 2500}

	tests := []struct {
		name string
		date time.Time
		want float64
	}{
		{"monday is weekday", monday, 2000},
		{"wednesday is weekday", wednesday, 2000},
		{"thursday is weekday", thursday, 2000},
		{"friday is weekend", friday, 2500},
		{"saturday is weekend", saturday, 2500},
		{"sunday is weekend", sunday, 2500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PackagePrice(pkg, tt.date, 1500))
		})
	}
}

func TestPackagePrice_TuesdaySurcharge(t *testing.T) {
	pkg := &domain.Package{ID: 1, PriceWeekday: 2000, PriceWeekend: 2500}

	// Вторник = будний тариф + наценка, ровно один раз
	assert.Equal(t, 3500.0, PackagePrice(pkg, tuesday, 1500))

	// Повторное вычисление не накапливает наценку
	assert.Equal(t, 3500.0, PackagePrice(pkg, tuesday, 1500))
}

func TestPackagePrice_MissingInputs(t *testing.T) {
	pkg := &domain.Package{ID: 1, PriceWeekday: 2000, PriceWeekend: 2500}

	assert.Equal(t, 0.0, PackagePrice(nil, wednesday, 1500))
	assert.Equal(t, 0.0, PackagePrice(pkg, time.Time{}, 1500))
}

func TestFoodOptionPrice(t *testing.T) {
	t.Run("nil selection", func(t *testing.T) {
		assert.Equal(t, 0.0, FoodOptionPrice(nil, testCatalog))
	})

	t.Run("bare id resolves against catalog", func(t *testing.T) {
		sel := domain.SelectByID[domain.FoodOption](10)
		assert.Equal(t, 800.0, FoodOptionPrice(sel, testCatalog))
	})

	t.Run("embedded price wins over catalog", func(t *testing.T) {
		// Встроенная запись зафиксирована со старой ценой; каталог уже обновился
		sel := domain.SelectEmbedded(10, domain.FoodOption{ID: 10, Name: "Taquiza", ExtraPrice: 650})
		assert.Equal(t, 650.0, FoodOptionPrice(sel, testCatalog))
	})

	t.Run("unknown id contributes zero", func(t *testing.T) {
		sel := domain.SelectByID[domain.FoodOption](999)
		assert.Equal(t, 0.0, FoodOptionPrice(sel, testCatalog))
	})
}

func TestMamparaPrice(t *testing.T) {
	assert.Equal(t, 450.0, MamparaPrice(domain.SelectByID[domain.Mampara](30), testCatalog))
	assert.Equal(t, 0.0, MamparaPrice(domain.SelectByID[domain.Mampara](999), testCatalog))

	embedded := domain.SelectEmbedded(30, domain.Mampara{ID: 30, ThemeID: 20, Price: 500})
	assert.Equal(t, 500.0, MamparaPrice(embedded, testCatalog))
}

func TestExtrasTotal(t *testing.T) {
	t.Run("quantity aware sum", func(t *testing.T) {
		extras := []domain.ExtraSelection{{ID: 1, Quantity: 2}}
		assert.Equal(t, 200.0, ExtrasTotal(extras, testCatalog))
	})

	t.Run("unknown id contributes zero", func(t *testing.T) {
		extras := []domain.ExtraSelection{
			{ID: 1, Quantity: 2},
			{ID: 999, Quantity: 5},
		}
		assert.Equal(t, 200.0, ExtrasTotal(extras, testCatalog))
	})

	t.Run("non positive quantity contributes zero", func(t *testing.T) {
		extras := []domain.ExtraSelection{
			{ID: 1, Quantity: 0},
			{ID: 2, Quantity: -3},
		}
		assert.Equal(t, 0.0, ExtrasTotal(extras, testCatalog))
	})

	t.Run("add then remove restores prior total", func(t *testing.T) {
		base := []domain.ExtraSelection{{ID: 1, Quantity: 2}}
		before := ExtrasTotal(base, testCatalog)

		withClown := append(base, domain.ExtraSelection{ID: 2, Quantity: 1})
		assert.Equal(t, before+1200, ExtrasTotal(withClown, testCatalog))

		assert.Equal(t, before, ExtrasTotal(withClown[:1], testCatalog))
	})
}

func TestTotal(t *testing.T) {
	t.Run("all terms sum", func(t *testing.T) {
		total := Total(
			domain.SelectByID[domain.Package](1),
			saturday,
			domain.SelectByID[domain.FoodOption](10),
			domain.SelectByID[domain.Mampara](30),
			[]domain.ExtraSelection{{ID: 1, Quantity: 2}},
			testCatalog,
			1500,
		)
		// 2500 (weekend) + 800 + 450 + 200
		assert.Equal(t, 3950.0, total)
	})

	t.Run("empty draft yields zero without panicking", func(t *testing.T) {
		total := Total(nil, time.Time{}, nil, nil, nil, testCatalog, 1500)
		assert.Equal(t, 0.0, total)
	})

	t.Run("nil catalog yields zero", func(t *testing.T) {
		total := Total(domain.SelectByID[domain.Package](1), saturday, nil, nil, nil, nil, 1500)
		assert.Equal(t, 0.0, total)
	})

	t.Run("idempotent on unchanged inputs", func(t *testing.T) {
		args := func() float64 {
			return Total(
				domain.SelectByID[domain.Package](1),
				tuesday,
				domain.SelectByID[domain.FoodOption](10),
				nil,
				[]domain.ExtraSelection{{ID: 2, Quantity: 1}},
				testCatalog,
				1500,
			)
		}
		first := args()
		second := args()
		assert.Equal(t, first, second)
		// 2000 + 1500 + 800 + 1200
		assert.Equal(t, 5500.0, first)
	})
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.01, Round2(10.006))
	assert.Equal(t, 10.0, Round2(10.004))
	assert.Equal(t, 0.0, Round2(0))
}
