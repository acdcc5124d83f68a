//go:build unit || e2e

package builder

import (
	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/listing"

	"github.com/google/uuid"
)

// ListingBuilder assembles listing snapshots for tests. Defaults describe
// a published four-guest listing with no discounts and a moderate
// cancellation policy.
type ListingBuilder struct {
	id                 uuid.UUID
	hostID             uuid.UUID
	title              string
	published          bool
	guests             int
	basePrice          float64
	cleaningFee        float64
	serviceFee         float64
	weeklyDiscount     float64
	monthlyDiscount    float64
	instantBooking     bool
	requiresApproval   bool
	cancellationPolicy booking.CancellationPolicy
	minimumStay        int
	maximumStay        *int
}

func NewListingBuilder() *ListingBuilder {
	return &ListingBuilder{
		id:                 uuid.New(),
		hostID:             uuid.New(),
		title:              "Sea View Cottage",
		published:          true,
		guests:             4,
		basePrice:          100,
		cleaningFee:        30,
		serviceFee:         10,
		cancellationPolicy: booking.PolicyModerate,
		minimumStay:        1,
	}
}

func (b *ListingBuilder) WithID(id uuid.UUID) *ListingBuilder {
	b.id = id
	return b
}

func (b *ListingBuilder) WithHostID(id uuid.UUID) *ListingBuilder {
	b.hostID = id
	return b
}

func (b *ListingBuilder) Unpublished() *ListingBuilder {
	b.published = false
	return b
}

func (b *ListingBuilder) WithGuests(n int) *ListingBuilder {
	b.guests = n
	return b
}

func (b *ListingBuilder) WithPricing(basePrice, cleaningFee, serviceFee float64) *ListingBuilder {
	b.basePrice = basePrice
	b.cleaningFee = cleaningFee
	b.serviceFee = serviceFee
	return b
}

func (b *ListingBuilder) WithDiscounts(weekly, monthly float64) *ListingBuilder {
	b.weeklyDiscount = weekly
	b.monthlyDiscount = monthly
	return b
}

func (b *ListingBuilder) WithInstantBooking(v bool) *ListingBuilder {
	b.instantBooking = v
	return b
}

func (b *ListingBuilder) WithCancellationPolicy(p booking.CancellationPolicy) *ListingBuilder {
	b.cancellationPolicy = p
	return b
}

func (b *ListingBuilder) WithStayBounds(minNights int, maxNights *int) *ListingBuilder {
	b.minimumStay = minNights
	b.maximumStay = maxNights
	return b
}

func (b *ListingBuilder) BuildSpec() booking.ListingSpec {
	return booking.ListingSpec{
		ID:                 b.id,
		HostID:             b.hostID,
		Published:          b.published,
		Guests:             b.guests,
		BasePrice:          b.basePrice,
		CleaningFee:        b.cleaningFee,
		ServiceFee:         b.serviceFee,
		WeeklyDiscount:     b.weeklyDiscount,
		MonthlyDiscount:    b.monthlyDiscount,
		InstantBooking:     b.instantBooking,
		RequiresApproval:   b.requiresApproval,
		CancellationPolicy: b.cancellationPolicy,
		MinimumStay:        b.minimumStay,
		MaximumStay:        b.maximumStay,
	}
}

func (b *ListingBuilder) BuildDomain() (*listing.Listing, error) {
	status := listing.StatusPublished
	if !b.published {
		status = listing.StatusDraft
	}
	return listing.NewListing(
		b.id, b.hostID, b.title, status, b.guests,
		listing.Pricing{
			BasePrice:       b.basePrice,
			CleaningFee:     b.cleaningFee,
			ServiceFee:      b.serviceFee,
			WeeklyDiscount:  b.weeklyDiscount,
			MonthlyDiscount: b.monthlyDiscount,
		},
		listing.BookingRules{
			InstantBooking:     b.instantBooking,
			RequiresApproval:   b.requiresApproval,
			CancellationPolicy: b.cancellationPolicy,
		},
		b.minimumStay,
		b.maximumStay,
	)
}
