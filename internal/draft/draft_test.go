package draft

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
		{ID: 21, Name: "Princesas", Active: true},
	},
	Mamparas: []domain.Mampara{
		{ID: 30, ThemeID: 20, Pieces: 3, Price: 450, Active: true},
		{ID: 31, ThemeID: 21, Pieces: 2, Price: 300, Active: true},
	},
	Extras: []domain.Extra{
		{ID: 1, Name: "Piñata", Price: 100},
	},
}

// 2025-10-15 - среда
var wednesday = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func TestRecompute(t *testing.T) {
	d := New()
	d.Package = domain.SelectByID[domain.Package](1)
	d.Date = wednesday
	d.FoodOption = domain.SelectByID[domain.FoodOption](10)

	d.Recompute(testCatalog, 1500)
	assert.Equal(t, 2800.0, d.Total)

	// Идемпотентность: повторный пересчёт не меняет сумму
	d.Recompute(testCatalog, 1500)
	assert.Equal(t, 2800.0, d.Total)
}

func TestRecompute_EmptyDraft(t *testing.T) {
	d := New()
	d.Recompute(testCatalog, 1500)
	assert.Equal(t, 0.0, d.Total)
}

func TestThemeChange_ClearsIncompatibleMampara(t *testing.T) {
	d := New()
	d.SetTheme(domain.SelectByID[domain.Theme](20), testCatalog)
	d.SetMampara(domain.SelectByID[domain.Mampara](30), testCatalog)
	assert.NotNil(t, d.Mampara)

	// Смена тематики на несовместимую сбрасывает мампару
	d.SetTheme(domain.SelectByID[domain.Theme](21), testCatalog)
	assert.Nil(t, d.Mampara)
}

func TestThemeChange_KeepsCompatibleMampara(t *testing.T) {
	d := New()
	d.SetTheme(domain.SelectByID[domain.Theme](20), testCatalog)
	d.SetMampara(domain.SelectByID[domain.Mampara](30), testCatalog)

	// Повторная установка той же тематики мампару не трогает
	d.SetTheme(domain.SelectByID[domain.Theme](20), testCatalog)
	assert.NotNil(t, d.Mampara)
	assert.Equal(t, int64(30), d.Mampara.ID)
}

func TestSetMampara_RejectsForeignTheme(t *testing.T) {
	d := New()
	d.SetTheme(domain.SelectByID[domain.Theme](20), testCatalog)

	// Мампара тематики 21 при выбранной тематике 20 не устанавливается
	d.SetMampara(domain.SelectByID[domain.Mampara](31), testCatalog)
	assert.Nil(t, d.Mampara)
}

func TestSetExtraQuantity(t *testing.T) {
	d := New()

	d.SetExtraQuantity(1, 2)
	assert.Equal(t, []domain.ExtraSelection{{ID: 1, Quantity: 2}}, d.Extras)

	d.Recompute(testCatalog, 1500)
	assert.Equal(t, 200.0, d.Total)

	// Количество 0 удаляет строку, а не оставляет её с нулём
	d.SetExtraQuantity(1, 0)
	assert.Empty(t, d.Extras)

	d.Recompute(testCatalog, 1500)
	assert.Equal(t, 0.0, d.Total)
}

func TestOverrideTotal(t *testing.T) {
	d := New()
	d.Package = domain.SelectByID[domain.Package](1)
	d.Date = wednesday
	d.Recompute(testCatalog, 1500)
	assert.Equal(t, 2000.0, d.Total)

	// Ручной override фиксирует сумму: пересчёт её не трогает
	d.OverrideTotal(1800.506)
	assert.Equal(t, 1800.51, d.Total)

	d.SetExtraQuantity(1, 3)
	d.Recompute(testCatalog, 1500)
	assert.Equal(t, 1800.51, d.Total)

	// Снятие override возвращает производную сумму
	d.ClearOverride(testCatalog, 1500)
	assert.Equal(t, 2300.0, d.Total)
}
