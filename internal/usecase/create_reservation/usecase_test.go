package create_reservation

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
		{ID: 21, Name: "Princesas", Active: false},
	},
	Mamparas: []domain.Mampara{
		{ID: 30, ThemeID: 20, Pieces: 3, Price: 450, Active: true},
		{ID: 31, ThemeID: 21, Pieces: 2, Price: 300, Active: true},
	},
	Extras: []domain.Extra{
		{ID: 1, Name: "Piñata", Price: 100},
	},
}

// 2025-11-01 - суббота, даты бронирования далеко за окном минимального срока
var (
	today    = time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC)
	saturday = time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)
)

// Фейки зависимостей

type fakeRepo struct {
	active  []*domain.Reservation
	created *domain.Reservation
	nextID  int64
}

func (f *fakeRepo) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	created := *r
	created.ID = f.nextID
	f.created = &created
	return &created, nil
}

func (f *fakeRepo) GetActiveByDate(_ context.Context, _ time.Time) ([]*domain.Reservation, error) {
	return f.active, nil
}

type fakeCatalogProvider struct {
	catalog *domain.Catalog
	err     error
}

func (f *fakeCatalogProvider) GetCatalog(_ context.Context) (*domain.Catalog, error) {
	return f.catalog, f.err
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeRepo, rules domain.BookingRules) *UseCase {
	uc := NewUseCase(
		repo,
		&fakeCatalogProvider{catalog: testCatalog},
		&fakeTxManager{},
		rules,
		noopLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: today}
	return uc
}

func defaultRules() domain.BookingRules {
	return domain.BookingRules{
		MinLeadDays:      7,
		TuesdaySurcharge: 1500,
		StaffIDs:         []int64{100},
	}
}

func validRequest() *Request {
	return &Request{
		UserID:        42,
		PackageID:     1,
		FoodOptionID:  ptr.Ptr(int64(10)),
		ThemeID:       ptr.Ptr(int64(20)),
		MamparaID:     ptr.Ptr(int64(30)),
		Date:          saturday,
		Slot:          "morning",
		Extras:        []ExtraRequest{{ID: 1, Quantity: 2}},
		CelebrantName: "Valeria",
		CelebrantAge:  7,
	}
}

func TestExecute_CreatesReservation(t *testing.T) {
	repo := &fakeRepo{nextID: 7}
	uc := newTestUseCase(repo, defaultRules())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, int64(42), resp.UserID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "morning", resp.Slot)
	assert.Equal(t, "11:00", resp.StartTime.String())
	assert.Equal(t, "16:00", resp.EndTime.String())

	// 2500 (выходной) + 800 + 450 + 200
	assert.Equal(t, 3950.0, resp.Total)
	assert.False(t, resp.TotalOverridden)
	assert.Equal(t, "Fiesta Básica", resp.PackageName)
	assert.Equal(t, 2500.0, resp.PackagePrice)
}

func TestExecute_SlotAlreadyBooked(t *testing.T) {
	repo := &fakeRepo{
		active: []*domain.Reservation{
			{EventDate: saturday, StartTime: "11:00", Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(repo, defaultRules())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_OtherSlotDoesNotBlock(t *testing.T) {
	repo := &fakeRepo{
		active: []*domain.Reservation{
			{EventDate: saturday, StartTime: "17:00", Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(repo, defaultRules())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_DateValidation(t *testing.T) {
	t.Run("past date", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{}, defaultRules())
		req := validRequest()
		req.Date = today.AddDate(0, 0, -1)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("inside lead window", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{}, defaultRules())
		req := validRequest()
		req.Date = today.AddDate(0, 0, 3)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrDateTooSoon)
	})

	t.Run("boundary day of lead window is bookable", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{}, defaultRules())
		req := validRequest()
		req.Date = today.AddDate(0, 0, 7)

		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("staff bypasses lead window", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{}, defaultRules())
		req := validRequest()
		req.UserID = 100
		req.Date = today.AddDate(0, 0, 1)

		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})
}

func TestExecute_SelectionValidation(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, defaultRules())

	t.Run("unknown package", func(t *testing.T) {
		req := validRequest()
		req.PackageID = 999
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrPackageNotFound)
	})

	t.Run("unknown food option", func(t *testing.T) {
		req := validRequest()
		req.FoodOptionID = ptr.Ptr(int64(999))
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrFoodOptionNotFound)
	})

	t.Run("inactive theme", func(t *testing.T) {
		req := validRequest()
		req.ThemeID = ptr.Ptr(int64(21))
		req.MamparaID = nil
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrThemeNotFound)
	})

	t.Run("mampara of another theme", func(t *testing.T) {
		req := validRequest()
		req.MamparaID = ptr.Ptr(int64(31))
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrMamparaThemeMismatch)
	})

	t.Run("mampara without theme", func(t *testing.T) {
		req := validRequest()
		req.ThemeID = nil
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown extra", func(t *testing.T) {
		req := validRequest()
		req.Extras = []ExtraRequest{{ID: 999, Quantity: 1}}
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrExtraNotFound)
	})
}

func TestExecute_TotalOverride(t *testing.T) {
	t.Run("staff override is persisted", func(t *testing.T) {
		repo := &fakeRepo{nextID: 1}
		uc := newTestUseCase(repo, defaultRules())
		req := validRequest()
		req.UserID = 100
		req.TotalOverride = ptr.Ptr(1800.0)

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, resp.TotalOverridden)
		assert.Equal(t, 1800.0, resp.Total)
	})

	t.Run("non-staff override is rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{}, defaultRules())
		req := validRequest()
		req.TotalOverride = ptr.Ptr(1800.0)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrOverrideNotAllowed)
	})
}

func TestExecute_CatalogUnavailable(t *testing.T) {
	uc := NewUseCase(
		&fakeRepo{},
		&fakeCatalogProvider{err: assert.AnError},
		&fakeTxManager{},
		defaultRules(),
		noopLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: today}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
}

func TestExecute_RequestValidation(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, defaultRules())

	cases := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"zero user", func(req *Request) { req.UserID = 0 }},
		{"zero package", func(req *Request) { req.PackageID = 0 }},
		{"zero date", func(req *Request) { req.Date = time.Time{} }},
		{"bad slot", func(req *Request) { req.Slot = "midnight" }},
		{"empty celebrant name", func(req *Request) { req.CelebrantName = "" }},
		{"bad celebrant age", func(req *Request) { req.CelebrantAge = 0 }},
		{"zero extra quantity", func(req *Request) { req.Extras = []ExtraRequest{{ID: 1, Quantity: 0}} }},
		{"negative override", func(req *Request) { req.TotalOverride = ptr.Ptr(-1.0); req.UserID = 100 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
