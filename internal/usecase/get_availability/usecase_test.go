package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonmagico/SM-ReservationService/internal/availability"
	"github.com/salonmagico/SM-ReservationService/internal/domain"
)

var (
	today = time.Date(2025, 11, 1, 9, 30, 0, 0, time.UTC)
	dateD = time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)
)

type fakeRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (f *fakeRepo) GetActiveByDate(_ context.Context, _ time.Time) ([]*domain.Reservation, error) {
	return f.reservations, f.err
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
	uc := NewUseCase(repo, rules, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: today}
	return uc
}

func defaultRules() domain.BookingRules {
	return domain.BookingRules{MinLeadDays: 7, StaffIDs: []int64{100}}
}

func TestExecute_BothSlotsFree(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, defaultRules())

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42, Date: dateD})
	require.NoError(t, err)

	assert.Equal(t, availability.ClassAvailable, resp.Class)
	require.Len(t, resp.Slots, 2)

	assert.Equal(t, "morning", resp.Slots[0].Slot)
	assert.Equal(t, "11:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "16:00", resp.Slots[0].EndTime.String())
	assert.False(t, resp.Slots[0].Booked)
	assert.True(t, resp.Slots[0].Bookable)

	assert.Equal(t, "afternoon", resp.Slots[1].Slot)
	assert.Equal(t, "17:00", resp.Slots[1].StartTime.String())
	assert.Equal(t, "22:00", resp.Slots[1].EndTime.String())
	assert.True(t, resp.Slots[1].Bookable)
}

func TestExecute_MorningBooked(t *testing.T) {
	repo := &fakeRepo{reservations: []*domain.Reservation{
		{EventDate: dateD, StartTime: "11:00", Status: domain.StatusPending},
	}}
	uc := newTestUseCase(repo, defaultRules())

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42, Date: dateD})
	require.NoError(t, err)

	assert.Equal(t, availability.ClassPartial, resp.Class)
	assert.True(t, resp.Slots[0].Booked)
	assert.False(t, resp.Slots[0].Bookable)
	assert.False(t, resp.Slots[1].Booked)
	assert.True(t, resp.Slots[1].Bookable)
}

func TestExecute_BothSlotsBooked(t *testing.T) {
	repo := &fakeRepo{reservations: []*domain.Reservation{
		{EventDate: dateD, StartTime: "11:00", Status: domain.StatusConfirmed},
		{EventDate: dateD, StartTime: "17:00", Status: domain.StatusPending},
	}}
	uc := newTestUseCase(repo, defaultRules())

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42, Date: dateD})
	require.NoError(t, err)

	assert.Equal(t, availability.ClassUnavailable, resp.Class)
	assert.False(t, resp.Slots[0].Bookable)
	assert.False(t, resp.Slots[1].Bookable)
}

func TestExecute_TooSoonDateIsNotBookable(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, defaultRules())
	soon := today.AddDate(0, 0, 3)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42, Date: soon})
	require.NoError(t, err)

	// Слоты свободны, но дата внутри окна минимального срока
	assert.Equal(t, availability.ClassTooSoon, resp.Class)
	assert.False(t, resp.Slots[0].Booked)
	assert.False(t, resp.Slots[0].Bookable)
	assert.False(t, resp.Slots[1].Bookable)
}

func TestExecute_StaffSeesShortNoticeDates(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, defaultRules())
	soon := today.AddDate(0, 0, 3)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 100, Date: soon})
	require.NoError(t, err)

	assert.Equal(t, availability.ClassAvailable, resp.Class)
	assert.True(t, resp.Slots[0].Bookable)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, defaultRules())

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42, Date: today.AddDate(0, 0, -1)})
	require.NoError(t, err)

	assert.Equal(t, availability.ClassPast, resp.Class)
	assert.False(t, resp.Slots[0].Bookable)
}

func TestExecute_ZeroDate(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, defaultRules())

	_, err := uc.Execute(context.Background(), &Request{UserID: 42})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{err: assert.AnError}, defaultRules())

	_, err := uc.Execute(context.Background(), &Request{UserID: 42, Date: dateD})
	assert.ErrorIs(t, err, ErrInternal)
}
