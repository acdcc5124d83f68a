package booking

import (
	"math"
	"time"
)

// DaysUntilCheckIn is computed at the moment of cancellation, rounded up
// so a partial day still counts as a full day of notice.
func DaysUntilCheckIn(checkIn, now time.Time) int {
	return int(math.Ceil(checkIn.Sub(now).Hours() / hoursPerNight))
}

// ComputeRefund maps a cancellation policy and days of notice to a refund.
// Thresholds are checked in descending order; the first matching row wins.
//
//	flexible:     100% with ≥1 day notice, else 0%
//	moderate:     100% ≥7 days, 50% ≥3 days, else 0%
//	strict:       100% ≥30 days, 50% ≥14 days, else 0%
//	super_strict: always 0%
func ComputeRefund(policy CancellationPolicy, daysUntilCheckIn int, totalPaid float64) Refund {
	percentage := refundPercentage(policy, daysUntilCheckIn)
	return Refund{
		Percentage: percentage,
		Amount:     roundCents(totalPaid * percentage / 100),
	}
}

func refundPercentage(policy CancellationPolicy, days int) float64 {
	switch policy {
	case PolicyFlexible:
		if days >= 1 {
			return 100
		}
		return 0
	case PolicyModerate:
		if days >= 7 {
			return 100
		}
		if days >= 3 {
			return 50
		}
		return 0
	case PolicyStrict:
		if days >= 30 {
			return 100
		}
		if days >= 14 {
			return 50
		}
		return 0
	case PolicySuperStrict:
		return 0
	default:
		return 0
	}
}
