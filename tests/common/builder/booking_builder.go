//go:build unit || e2e

package builder

import (
	"time"

	"stayhub/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// BookingBuilder assembles domain bookings for tests. Defaults describe a
// confirmed three-night stay checking in thirty days out.
type BookingBuilder struct {
	id               uuid.UUID
	listingID        uuid.UUID
	guestID          uuid.UUID
	hostID           uuid.UUID
	checkIn          time.Time
	checkOut         time.Time
	numberOfGuests   int
	status           booking.Status
	paymentStatus    booking.PaymentStatus
	pricing          booking.PriceBreakdown
	requiresApproval bool
	createdAt        time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	checkIn := now.AddDate(0, 0, 30)
	return &BookingBuilder{
		id:             uuid.New(),
		listingID:      uuid.New(),
		guestID:        uuid.New(),
		hostID:         uuid.New(),
		checkIn:        checkIn,
		checkOut:       checkIn.AddDate(0, 0, 3),
		numberOfGuests: 2,
		status:         booking.StatusConfirmed,
		paymentStatus:  booking.PaymentPending,
		pricing:        booking.ComputePrice(100, 3, 30, 10, 0),
		createdAt:      now,
	}
}

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.id = id
	return b
}

func (b *BookingBuilder) WithGuestID(id uuid.UUID) *BookingBuilder {
	b.guestID = id
	return b
}

func (b *BookingBuilder) WithHostID(id uuid.UUID) *BookingBuilder {
	b.hostID = id
	return b
}

func (b *BookingBuilder) WithListingID(id uuid.UUID) *BookingBuilder {
	b.listingID = id
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.status = s
	return b
}

func (b *BookingBuilder) WithPaymentStatus(p booking.PaymentStatus) *BookingBuilder {
	b.paymentStatus = p
	return b
}

func (b *BookingBuilder) WithDates(checkIn, checkOut time.Time) *BookingBuilder {
	b.checkIn = checkIn
	b.checkOut = checkOut
	return b
}

func (b *BookingBuilder) WithPricing(p booking.PriceBreakdown) *BookingBuilder {
	b.pricing = p
	return b
}

func (b *BookingBuilder) WithRequiresApproval(v bool) *BookingBuilder {
	b.requiresApproval = v
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	dates := booking.DateRange{CheckIn: b.checkIn, CheckOut: b.checkOut}
	var pricing booking.PriceBreakdown
	_ = copier.Copy(&pricing, &b.pricing)

	return booking.ReconstructBooking(
		b.id, b.listingID, b.guestID, b.hostID,
		dates,
		dates.Nights(), b.numberOfGuests,
		pricing,
		b.status,
		b.paymentStatus,
		nil, nil, nil,
		b.requiresApproval,
		nil,
		nil, nil,
		nil,
		b.createdAt, b.createdAt,
	)
}
