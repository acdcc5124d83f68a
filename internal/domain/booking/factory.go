package booking

import (
	"time"

	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

// ListingSpec is the write-side snapshot of the listing the factory needs.
// It keeps the domain free of a dependency on the listing aggregate.
type ListingSpec struct {
	ID                 uuid.UUID
	HostID             uuid.UUID
	Published          bool
	Guests             int
	BasePrice          float64
	CleaningFee        float64
	ServiceFee         float64
	WeeklyDiscount     float64
	MonthlyDiscount    float64
	InstantBooking     bool
	RequiresApproval   bool
	CancellationPolicy CancellationPolicy
	MinimumStay        int
	MaximumStay        *int
}

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{Clock: clk}
}

// CreateBooking runs the creation validation sequence in its fixed order
// (first failure wins), then prices the stay and builds the entity.
// existing must hold only date-blocking reservations (confirmed or
// completed); the caller fetches them under the same lock that guards the
// insert so the availability check and the write are serialized.
func (f *Factory) CreateBooking(
	spec ListingSpec,
	guestID uuid.UUID,
	checkIn, checkOut time.Time,
	numberOfGuests int,
	specialRequests *string,
	existing []DateRange,
) (*Booking, error) {
	if !spec.Published {
		return nil, errs.ErrListingNotPublished
	}
	if numberOfGuests < 1 {
		return nil, errs.ErrInvalidGuestCount
	}
	if numberOfGuests > spec.Guests {
		return nil, errs.ErrTooManyGuests
	}
	if !checkIn.Before(checkOut) {
		return nil, errs.ErrInvalidDateRange
	}

	now := f.Clock.Now()
	if !checkIn.After(now) {
		return nil, errs.ErrCheckInNotFuture
	}

	dates := DateRange{CheckIn: checkIn, CheckOut: checkOut}
	nights := dates.Nights()
	if nights < spec.MinimumStay {
		return nil, errs.ErrBelowMinimumStay
	}
	if spec.MaximumStay != nil && nights > *spec.MaximumStay {
		return nil, errs.ErrAboveMaximumStay
	}
	if !IsAvailable(checkIn, checkOut, existing) {
		return nil, errs.ErrDatesUnavailable
	}

	discount := DiscountPercentForNights(nights, spec.WeeklyDiscount, spec.MonthlyDiscount)
	pricing := ComputePrice(spec.BasePrice, nights, spec.CleaningFee, spec.ServiceFee, discount)

	status := StatusPending
	if spec.InstantBooking {
		status = StatusConfirmed
	}

	return &Booking{
		id:               uuid.New(),
		listingID:        spec.ID,
		guestID:          guestID,
		hostID:           spec.HostID,
		dates:            dates,
		numberOfNights:   nights,
		numberOfGuests:   numberOfGuests,
		pricing:          pricing,
		status:           status,
		paymentStatus:    PaymentPending,
		specialRequests:  specialRequests,
		requiresApproval: spec.RequiresApproval,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}
