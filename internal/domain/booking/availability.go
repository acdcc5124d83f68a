package booking

import "time"

// IsAvailable reports whether the candidate range is free of conflicts
// against every existing reservation. Ranges are half-open, so a same-day
// checkout/check-in pair is legal. The caller supplies only reservations
// that actually block dates (confirmed or completed).
func IsAvailable(checkIn, checkOut time.Time, existing []DateRange) bool {
	candidate := DateRange{CheckIn: checkIn, CheckOut: checkOut}
	for _, r := range existing {
		if candidate.Overlaps(r) {
			return false
		}
	}
	return true
}

// BlackoutWindow is a host-declared range marked unavailable independent
// of bookings. Consulted only on the availability read path; booking
// creation does not re-check it.
type BlackoutWindow struct {
	StartDate time.Time
	EndDate   time.Time
	Available bool
}

// IsBlackedOut reports whether the candidate range touches a window the
// host marked unavailable.
func IsBlackedOut(checkIn, checkOut time.Time, windows []BlackoutWindow) bool {
	candidate := DateRange{CheckIn: checkIn, CheckOut: checkOut}
	for _, w := range windows {
		if w.Available {
			continue
		}
		if candidate.Overlaps(DateRange{CheckIn: w.StartDate, CheckOut: w.EndDate}) {
			return true
		}
	}
	return false
}
