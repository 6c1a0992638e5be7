package quote_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonmagico/SM-ReservationService/internal/domain"
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

// 2025-10-18 - суббота, 2025-10-14 - вторник
var (
	saturday = time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
	tuesday  = time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
)

type fakeCatalogProvider struct {
	catalog *domain.Catalog
	err     error
}

func (f *fakeCatalogProvider) GetCatalog(_ context.Context) (*domain.Catalog, error) {
	return f.catalog, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase() *UseCase {
	return NewUseCase(
		&fakeCatalogProvider{catalog: testCatalog},
		domain.BookingRules{TuesdaySurcharge: 1500},
		noopLogger{},
	)
}

func TestExecute_FullBreakdown(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		PackageID:    ptr.Ptr(int64(1)),
		FoodOptionID: ptr.Ptr(int64(10)),
		MamparaID:    ptr.Ptr(int64(30)),
		Date:         saturday,
		Extras:       []ExtraRequest{{ID: 1, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, 2500.0, resp.PackagePrice)
	assert.Equal(t, 800.0, resp.FoodOptionPrice)
	assert.Equal(t, 450.0, resp.MamparaPrice)
	assert.Equal(t, 200.0, resp.ExtrasTotal)
	assert.Equal(t, 0.0, resp.TuesdaySurcharge)
	assert.Equal(t, 3950.0, resp.Total)
}

func TestExecute_TuesdaySurchargeShownSeparately(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		PackageID: ptr.Ptr(int64(1)),
		Date:      tuesday,
	})
	require.NoError(t, err)

	// 2000 будний день + 1500 наценка уже в цене пакета
	assert.Equal(t, 3500.0, resp.PackagePrice)
	assert.Equal(t, 1500.0, resp.TuesdaySurcharge)
	assert.Equal(t, 3500.0, resp.Total)
}

func TestExecute_PartialFormGivesPartialBreakdown(t *testing.T) {
	uc := newTestUseCase()

	t.Run("empty form", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{})
		require.NoError(t, err)
		assert.Equal(t, 0.0, resp.Total)
	})

	t.Run("package without date", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{PackageID: ptr.Ptr(int64(1))})
		require.NoError(t, err)
		assert.Equal(t, 0.0, resp.PackagePrice)
		assert.Equal(t, 0.0, resp.Total)
	})

	t.Run("extras only", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{
			Extras: []ExtraRequest{{ID: 1, Quantity: 3}},
		})
		require.NoError(t, err)
		assert.Equal(t, 300.0, resp.ExtrasTotal)
		assert.Equal(t, 300.0, resp.Total)
	})

	t.Run("unknown ids give zero contribution", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{
			PackageID: ptr.Ptr(int64(999)),
			Date:      saturday,
			Extras:    []ExtraRequest{{ID: 999, Quantity: 2}},
		})
		require.NoError(t, err)
		assert.Equal(t, 0.0, resp.Total)
	})
}

func TestExecute_CatalogUnavailable(t *testing.T) {
	uc := NewUseCase(
		&fakeCatalogProvider{err: assert.AnError},
		domain.BookingRules{TuesdaySurcharge: 1500},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
}
