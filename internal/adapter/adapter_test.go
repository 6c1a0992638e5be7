package adapter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonmagico/SM-ReservationService/internal/domain"
	"github.com/salonmagico/SM-ReservationService/internal/draft"
	"github.com/salonmagico/SM-ReservationService/pkg/ptr"
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
	},
}

// 2025-10-18 - суббота
var saturday = time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)

func buildDraft() *draft.Draft {
	d := draft.New()
	d.Package = domain.SelectByID[domain.Package](1)
	d.Date = saturday
	d.Slot = domain.SlotMorning
	d.FoodOption = domain.SelectByID[domain.FoodOption](10)
	d.SetTheme(domain.SelectByID[domain.Theme](20), testCatalog)
	d.SetMampara(domain.SelectByID[domain.Mampara](30), testCatalog)
	d.SetExtraQuantity(1, 2)
	d.CelebrantName = "Valeria"
	d.CelebrantAge = 7
	d.Recompute(testCatalog, 1500)
	return d
}

func TestToRecord(t *testing.T) {
	d := buildDraft()

	rec, err := ToRecord(d, 42, testCatalog, 1500)
	require.NoError(t, err)

	assert.Equal(t, int64(42), rec.UserID)
	assert.Equal(t, int64(1), rec.PackageID)
	assert.Equal(t, ptr.Ptr(int64(10)), rec.FoodOptionID)
	assert.Equal(t, ptr.Ptr(int64(20)), rec.ThemeID)
	assert.Equal(t, ptr.Ptr(int64(30)), rec.MamparaID)

	// Метка слота развёрнута в пару времен из фиксированной таблицы
	assert.Equal(t, "11:00", rec.StartTime.String())
	assert.Equal(t, "16:00", rec.EndTime.String())

	// Дата нормализована к полуночи
	assert.Equal(t, 0, rec.EventDate.Hour())

	// Денормализованные данные каталога
	assert.Equal(t, "Fiesta Básica", rec.PackageName)
	assert.Equal(t, 2500.0, rec.PackagePrice)
	assert.Equal(t, ptr.Ptr("Taquiza"), rec.FoodOptionName)
	assert.Equal(t, 800.0, rec.FoodOptionPrice)
	assert.Equal(t, 450.0, rec.MamparaPrice)

	require.Len(t, rec.Extras, 1)
	assert.Equal(t, domain.ExtraLine{ExtraID: 1, Name: "Piñata", UnitPrice: 100, Quantity: 2}, rec.Extras[0])

	// 2500 + 800 + 450 + 200
	assert.Equal(t, 3950.0, rec.Total)
	assert.False(t, rec.TotalOverridden)
	assert.Equal(t, domain.StatusPending, rec.Status)
}

func TestToRecord_AbsentSelectionsMapToNull(t *testing.T) {
	d := draft.New()
	d.Package = domain.SelectByID[domain.Package](1)
	d.Date = saturday
	d.Slot = domain.SlotAfternoon
	d.Recompute(testCatalog, 1500)

	rec, err := ToRecord(d, 42, testCatalog, 1500)
	require.NoError(t, err)

	assert.Nil(t, rec.FoodOptionID)
	assert.Nil(t, rec.ThemeID)
	assert.Nil(t, rec.MamparaID)
	assert.Nil(t, rec.Comments)
	assert.Empty(t, rec.Extras)
	assert.Equal(t, "17:00", rec.StartTime.String())
	assert.Equal(t, "22:00", rec.EndTime.String())
}

func TestToRecord_DropsMalformedExtras(t *testing.T) {
	d := buildDraft()
	d.Extras = append(d.Extras,
		domain.ExtraSelection{ID: 0, Quantity: 3},  // некорректный id
		domain.ExtraSelection{ID: 1, Quantity: -1}, // некорректное количество
	)

	rec, err := ToRecord(d, 42, testCatalog, 1500)
	require.NoError(t, err)
	assert.Len(t, rec.Extras, 1)
}

func TestToRecord_ValidationErrors(t *testing.T) {
	t.Run("no package", func(t *testing.T) {
		d := draft.New()
		d.Date = saturday
		d.Slot = domain.SlotMorning
		_, err := ToRecord(d, 42, testCatalog, 1500)
		assert.ErrorIs(t, err, ErrNoPackage)
	})

	t.Run("no date", func(t *testing.T) {
		d := draft.New()
		d.Package = domain.SelectByID[domain.Package](1)
		d.Slot = domain.SlotMorning
		_, err := ToRecord(d, 42, testCatalog, 1500)
		assert.ErrorIs(t, err, ErrNoDate)
	})

	t.Run("invalid slot", func(t *testing.T) {
		d := draft.New()
		d.Package = domain.SelectByID[domain.Package](1)
		d.Date = saturday
		d.Slot = "midnight"
		_, err := ToRecord(d, 42, testCatalog, 1500)
		assert.ErrorIs(t, err, ErrInvalidSlot)
	})
}

func TestHydrateDraft_RoundTrip(t *testing.T) {
	d := buildDraft()
	d.Comments = "sin gluten"

	rec, err := ToRecord(d, 42, testCatalog, 1500)
	require.NoError(t, err)

	restored := HydrateDraft(rec, testCatalog)

	require.NotNil(t, restored.Package)
	assert.Equal(t, int64(1), restored.Package.ID)
	require.NotNil(t, restored.FoodOption)
	assert.Equal(t, int64(10), restored.FoodOption.ID)
	require.NotNil(t, restored.Theme)
	assert.Equal(t, int64(20), restored.Theme.ID)
	require.NotNil(t, restored.Mampara)
	assert.Equal(t, int64(30), restored.Mampara.ID)

	assert.Equal(t, domain.SlotMorning, restored.Slot)
	assert.Equal(t, []domain.ExtraSelection{{ID: 1, Quantity: 2}}, restored.Extras)
	assert.Equal(t, "Valeria", restored.CelebrantName)
	assert.Equal(t, 7, restored.CelebrantAge)
	assert.Equal(t, "sin gluten", restored.Comments)
	assert.Equal(t, d.Total, restored.Total)
	assert.False(t, restored.TotalOverridden)
}

func TestHydrateDraft_StaleCatalogLeavesFieldsUnselected(t *testing.T) {
	rec := &domain.Reservation{
		PackageID:    999, // пакета больше нет в каталоге
		FoodOptionID: ptr.Ptr(int64(888)),
		MamparaID:    ptr.Ptr(int64(777)),
		EventDate:    saturday,
		StartTime:    "11:00",
		EndTime:      "16:00",
		Extras: []domain.ExtraLine{
			{ExtraID: 666, Quantity: 2}, // услуга удалена из каталога
			{ExtraID: 1, Quantity: 1},
		},
	}

	d := HydrateDraft(rec, testCatalog)

	// Устаревшие ссылки оставляют поля невыбранными, гидрация не падает
	assert.Nil(t, d.Package)
	assert.Nil(t, d.FoodOption)
	assert.Nil(t, d.Mampara)
	assert.Equal(t, []domain.ExtraSelection{{ID: 1, Quantity: 1}}, d.Extras)
	assert.Equal(t, domain.SlotMorning, d.Slot)
}

func TestHydrateDraft_PreservesOverriddenTotal(t *testing.T) {
	rec := &domain.Reservation{
		PackageID:       1,
		EventDate:       saturday,
		StartTime:       "17:00",
		EndTime:         "22:00",
		Total:           9999,
		TotalOverridden: true,
	}

	d := HydrateDraft(rec, testCatalog)
	assert.True(t, d.TotalOverridden)
	assert.Equal(t, 9999.0, d.Total)

	// Пересчёт не перезаписывает зафиксированную вручную сумму
	d.Recompute(testCatalog, 1500)
	assert.Equal(t, 9999.0, d.Total)
}
