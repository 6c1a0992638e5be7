package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonmagico/SM-ReservationService/internal/domain"
	"github.com/salonmagico/SM-ReservationService/pkg/types"
)

var (
	dateD = time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)
	today = time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
)

func reservation(date time.Time, start types.TimeString, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{EventDate: date, StartTime: start, Status: status}
}

func TestSlotsBookedForDate(t *testing.T) {
	t.Run("both slots booked by active reservations", func(t *testing.T) {
		rs := []*domain.Reservation{
			reservation(dateD, "11:00", domain.StatusConfirmed),
			reservation(dateD, "17:00", domain.StatusPending),
		}
		booked := SlotsBookedForDate(dateD, rs)
		assert.True(t, booked.Morning)
		assert.True(t, booked.Afternoon)
	})

	t.Run("cancelled and completed do not block", func(t *testing.T) {
		rs := []*domain.Reservation{
			reservation(dateD, "11:00", domain.StatusCancelled),
			reservation(dateD, "17:00", domain.StatusCompleted),
		}
		booked := SlotsBookedForDate(dateD, rs)
		assert.False(t, booked.Morning)
		assert.False(t, booked.Afternoon)
	})

	t.Run("day granularity ignores time of day", func(t *testing.T) {
		// Бронирование хранится с полуднем в дате - всё равно тот же день
		noonDate := time.Date(2025, 11, 20, 12, 30, 0, 0, time.UTC)
		rs := []*domain.Reservation{
			reservation(noonDate, "11:00", domain.StatusConfirmed),
		}
		booked := SlotsBookedForDate(dateD, rs)
		assert.True(t, booked.Morning)
	})

	t.Run("seconds in stored start time still match slot", func(t *testing.T) {
		start, err := types.NewTimeStringFromString("11:00:00")
		require.NoError(t, err)
		rs := []*domain.Reservation{
			reservation(dateD, start, domain.StatusConfirmed),
		}
		booked := SlotsBookedForDate(dateD, rs)
		assert.True(t, booked.Morning)
		assert.False(t, booked.Afternoon)
	})

	t.Run("other dates do not block", func(t *testing.T) {
		rs := []*domain.Reservation{
			reservation(dateD.AddDate(0, 0, -1), "11:00", domain.StatusConfirmed),
		}
		booked := SlotsBookedForDate(dateD, rs)
		assert.False(t, booked.Morning)
	})
}

func TestAvailableSlotOptions(t *testing.T) {
	t.Run("morning booked leaves afternoon only", func(t *testing.T) {
		rs := []*domain.Reservation{
			reservation(dateD, "11:00", domain.StatusConfirmed),
		}
		assert.Equal(t, []domain.TimeSlot{domain.SlotAfternoon}, AvailableSlotOptions(dateD, rs))
	})

	t.Run("next day is fully free", func(t *testing.T) {
		rs := []*domain.Reservation{
			reservation(dateD, "11:00", domain.StatusConfirmed),
		}
		options := AvailableSlotOptions(dateD.AddDate(0, 0, 1), rs)
		assert.Equal(t, []domain.TimeSlot{domain.SlotMorning, domain.SlotAfternoon}, options)
	})

	t.Run("both booked yields empty", func(t *testing.T) {
		rs := []*domain.Reservation{
			reservation(dateD, "11:00", domain.StatusPending),
			reservation(dateD, "17:00", domain.StatusConfirmed),
		}
		assert.Empty(t, AvailableSlotOptions(dateD, rs))
	})

	t.Run("zero date yields empty", func(t *testing.T) {
		assert.Empty(t, AvailableSlotOptions(time.Time{}, nil))
	})
}

func TestClassifyDate(t *testing.T) {
	tests := []struct {
		name         string
		date         time.Time
		reservations []*domain.Reservation
		minLeadDays  int
		want         DateClass
	}{
		{
			name: "past wins over free slots",
			date: today.AddDate(0, 0, -1),
			want: ClassPast,
		},
		{
			name:        "too soon within lead window",
			date:        today.AddDate(0, 0, 3),
			minLeadDays: 7,
			want:        ClassTooSoon,
		},
		{
			name:        "boundary day of lead window is bookable",
			date:        today.AddDate(0, 0, 7),
			minLeadDays: 7,
			want:        ClassAvailable,
		},
		{
			name:        "admin flow skips lead window",
			date:        today.AddDate(0, 0, 1),
			minLeadDays: 0,
			want:        ClassAvailable,
		},
		{
			name: "both slots booked",
			date: dateD,
			reservations: []*domain.Reservation{
				reservation(dateD, "11:00", domain.StatusConfirmed),
				reservation(dateD, "17:00", domain.StatusPending),
			},
			want: ClassUnavailable,
		},
		{
			name: "one slot booked",
			date: dateD,
			reservations: []*domain.Reservation{
				reservation(dateD, "17:00", domain.StatusConfirmed),
			},
			want: ClassPartial,
		},
		{
			name: "cancelled reservations leave date available",
			date: dateD,
			reservations: []*domain.Reservation{
				reservation(dateD, "11:00", domain.StatusCancelled),
				reservation(dateD, "17:00", domain.StatusCancelled),
			},
			want: ClassAvailable,
		},
		{
			name: "past date with booked slots is still past",
			date: today.AddDate(0, 0, -2),
			reservations: []*domain.Reservation{
				reservation(today.AddDate(0, 0, -2), "11:00", domain.StatusConfirmed),
			},
			minLeadDays: 7,
			want:        ClassPast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClassifyDate(tt.date, tt.reservations, today, tt.minLeadDays)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("zero date is a distinct error state", func(t *testing.T) {
		_, err := ClassifyDate(time.Time{}, nil, today, 7)
		assert.ErrorIs(t, err, ErrNoDate)
	})
}
