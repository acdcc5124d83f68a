//go:build unit

package booking_test

import (
	"testing"
	"time"

	"stayhub/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsAvailable(t *testing.T) {
	jan := func(d int) time.Time { return date(2026, time.January, d) }

	existing := []booking.DateRange{
		{CheckIn: jan(5), CheckOut: jan(10)},
	}

	t.Run("back-to-back stays do not conflict", func(t *testing.T) {
		// checkout on the 10th, next check-in on the 10th
		assert.True(t, booking.IsAvailable(jan(10), jan(15), existing))
		assert.True(t, booking.IsAvailable(jan(1), jan(5), existing))
	})

	t.Run("overlapping stay conflicts", func(t *testing.T) {
		assert.False(t, booking.IsAvailable(jan(9), jan(12), existing))
		assert.False(t, booking.IsAvailable(jan(1), jan(6), existing))
	})

	t.Run("containing range conflicts", func(t *testing.T) {
		assert.False(t, booking.IsAvailable(jan(1), jan(20), existing))
		assert.False(t, booking.IsAvailable(jan(6), jan(9), existing))
	})

	t.Run("no existing reservations", func(t *testing.T) {
		assert.True(t, booking.IsAvailable(jan(1), jan(31), nil))
	})
}

func TestDateRangeNights(t *testing.T) {
	t.Run("whole days", func(t *testing.T) {
		r := booking.DateRange{CheckIn: date(2026, time.March, 1), CheckOut: date(2026, time.March, 4)}
		assert.Equal(t, 3, r.Nights())
	})

	t.Run("partial day rounds up", func(t *testing.T) {
		in := date(2026, time.March, 1)
		out := in.Add(24*time.Hour + 6*time.Hour)
		r := booking.DateRange{CheckIn: in, CheckOut: out}
		assert.Equal(t, 2, r.Nights())
	})
}

func TestIsBlackedOut(t *testing.T) {
	feb := func(d int) time.Time { return date(2026, time.February, d) }

	windows := []booking.BlackoutWindow{
		{StartDate: feb(10), EndDate: feb(15), Available: false},
		{StartDate: feb(20), EndDate: feb(25), Available: true},
	}

	t.Run("unavailable window blocks", func(t *testing.T) {
		assert.True(t, booking.IsBlackedOut(feb(12), feb(14), windows))
	})

	t.Run("available window does not block", func(t *testing.T) {
		assert.False(t, booking.IsBlackedOut(feb(21), feb(23), windows))
	})

	t.Run("outside all windows", func(t *testing.T) {
		assert.False(t, booking.IsBlackedOut(feb(1), feb(5), windows))
	})
}
