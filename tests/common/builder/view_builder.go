//go:build unit || e2e

package builder

import (
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

// BuildView renders the builder's booking as the read model the API
// returns.
func (b *BookingBuilder) BuildView() *queries.BookingView {
	entity := b.BuildDomain()
	p := entity.Pricing()

	return &queries.BookingView{
		ID:             entity.ID(),
		ListingID:      entity.ListingID(),
		ListingTitle:   "Sea View Cottage",
		GuestID:        entity.GuestID(),
		HostID:         entity.HostID(),
		CheckInDate:    entity.Dates().CheckIn,
		CheckOutDate:   entity.Dates().CheckOut,
		NumberOfNights: entity.NumberOfNights(),
		NumberOfGuests: entity.NumberOfGuests(),
		Pricing: queries.PricingView{
			NightlyRate:  p.NightlyRate,
			Subtotal:     p.Subtotal,
			CleaningFee:  p.CleaningFee,
			ServiceFee:   p.ServiceFee,
			Discount:     p.Discount,
			Taxes:        p.Taxes,
			Total:        p.Total,
			RefundAmount: p.RefundAmount,
			Currency:     p.Currency,
		},
		Status:           entity.Status().String(),
		PaymentStatus:    entity.PaymentStatus().String(),
		RequiresApproval: entity.RequiresApproval(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}
}

// BuildListItem renders the builder's booking as a list row.
func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	entity := b.BuildDomain()

	return &queries.BookingListItem{
		ID:           entity.ID(),
		ListingID:    entity.ListingID(),
		ListingTitle: "Sea View Cottage",
		CheckInDate:  entity.Dates().CheckIn,
		CheckOutDate: entity.Dates().CheckOut,
		Status:       entity.Status().String(),
		Total:        entity.Pricing().Total,
		CreatedAt:    entity.CreatedAt(),
	}
}

// CreateBookingRequestBody returns a mutable JSON body for the create
// endpoint matching the builder's dates and guest count.
func (b *BookingBuilder) CreateBookingRequestBody() map[string]any {
	return map[string]any{
		"listingId":      b.listingID.String(),
		"checkInDate":    b.checkIn.Format(time.DateOnly),
		"checkOutDate":   b.checkOut.Format(time.DateOnly),
		"numberOfGuests": b.numberOfGuests,
	}
}

// Dates exposes the builder's stay window for request assertions.
func (b *BookingBuilder) Dates() booking.DateRange {
	return booking.DateRange{CheckIn: b.checkIn, CheckOut: b.checkOut}
}

// GuestID exposes the builder's guest for actor setup.
func (b *BookingBuilder) GuestID() uuid.UUID {
	return b.guestID
}

// HostID exposes the builder's host for actor setup.
func (b *BookingBuilder) HostID() uuid.UUID {
	return b.hostID
}

// ID exposes the builder's booking id.
func (b *BookingBuilder) ID() uuid.UUID {
	return b.id
}
