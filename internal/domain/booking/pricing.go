package booking

import "math"

const (
	taxRate         = 0.10
	defaultCurrency = "USD"
)

// ComputePrice itemizes the cost of a stay. It is a pure function: invalid
// inputs (negative amounts) are the caller's responsibility to reject
// before calling.
func ComputePrice(basePricePerNight float64, nights int, cleaningFee, serviceFee, discountPercent float64) PriceBreakdown {
	subtotal := basePricePerNight * float64(nights)
	discountAmount := subtotal * discountPercent / 100
	subtotalAfterDiscount := subtotal - discountAmount
	taxes := subtotalAfterDiscount * taxRate
	total := subtotalAfterDiscount + cleaningFee + serviceFee + taxes

	return PriceBreakdown{
		NightlyRate: basePricePerNight,
		Subtotal:    subtotal,
		CleaningFee: cleaningFee,
		ServiceFee:  serviceFee,
		Discount:    discountAmount,
		Taxes:       taxes,
		Total:       roundCents(total),
		Currency:    defaultCurrency,
	}
}

// DiscountPercentForNights picks the discount tier for a stay length.
// The weekly branch is checked first, so any stay of 7 nights or more gets
// the weekly discount even past 30 nights; the monthly branch is
// effectively unreachable. This mirrors the behavior the billing records
// were produced under, so it stays as is rather than being reordered.
func DiscountPercentForNights(nights int, weeklyDiscount, monthlyDiscount float64) float64 {
	if nights >= 7 {
		return weeklyDiscount
	}
	if nights >= 30 {
		return monthlyDiscount
	}
	return 0
}

// roundCents rounds half away from zero on the cents value.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
