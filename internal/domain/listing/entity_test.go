//go:build unit

package listing_test

import (
	"testing"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/listing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validArgs() (uuid.UUID, uuid.UUID, listing.Pricing, listing.BookingRules) {
	return uuid.New(), uuid.New(),
		listing.Pricing{
			BasePrice:       120,
			CleaningFee:     35,
			ServiceFee:      15,
			WeeklyDiscount:  10,
			MonthlyDiscount: 20,
		},
		listing.BookingRules{
			InstantBooking:     true,
			CancellationPolicy: booking.PolicyModerate,
		}
}

func TestNewListing(t *testing.T) {
	t.Run("builds a listing with the given fields", func(t *testing.T) {
		id, hostID, pricing, rules := validArgs()
		maxStay := 28

		l, err := listing.NewListing(id, hostID, "Sea View Cottage", listing.StatusPublished, 4, pricing, rules, 2, &maxStay)

		require.NoError(t, err)
		assert.Equal(t, id, l.ID())
		assert.Equal(t, hostID, l.HostID())
		assert.Equal(t, "Sea View Cottage", l.Title())
		assert.Equal(t, listing.StatusPublished, l.Status())
		assert.Equal(t, 4, l.Guests())
		assert.Equal(t, pricing, l.Pricing())
		assert.Equal(t, rules, l.BookingRules())
		assert.Equal(t, 2, l.MinimumStay())
		require.NotNil(t, l.MaximumStay())
		assert.Equal(t, 28, *l.MaximumStay())
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		id, hostID, pricing, rules := validArgs()

		_, err := listing.NewListing(id, hostID, "Sea View Cottage", listing.Status("archived"), 4, pricing, rules, 1, nil)

		assert.ErrorIs(t, err, listing.ErrInvalidStatus)
	})

	t.Run("rejects an unknown cancellation policy", func(t *testing.T) {
		id, hostID, pricing, rules := validArgs()
		rules.CancellationPolicy = "generous"

		_, err := listing.NewListing(id, hostID, "Sea View Cottage", listing.StatusPublished, 4, pricing, rules, 1, nil)

		assert.ErrorIs(t, err, listing.ErrInvalidPolicy)
	})

	t.Run("clamps minimum stay to one night", func(t *testing.T) {
		id, hostID, pricing, rules := validArgs()

		l, err := listing.NewListing(id, hostID, "Sea View Cottage", listing.StatusPublished, 4, pricing, rules, 0, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, l.MinimumStay())
	})
}

func TestListingIsPublished(t *testing.T) {
	cases := []struct {
		status listing.Status
		want   bool
	}{
		{listing.StatusDraft, false},
		{listing.StatusPublished, true},
		{listing.StatusUnpublished, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			id, hostID, pricing, rules := validArgs()
			l, err := listing.NewListing(id, hostID, "Sea View Cottage", tc.status, 2, pricing, rules, 1, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, l.IsPublished())
		})
	}
}

func TestListingSpec(t *testing.T) {
	id, hostID, pricing, rules := validArgs()
	maxStay := 14

	l, err := listing.NewListing(id, hostID, "Sea View Cottage", listing.StatusPublished, 6, pricing, rules, 3, &maxStay)
	require.NoError(t, err)

	spec := l.Spec()

	assert.Equal(t, id, spec.ID)
	assert.Equal(t, hostID, spec.HostID)
	assert.True(t, spec.Published)
	assert.Equal(t, 6, spec.Guests)
	assert.InDelta(t, pricing.BasePrice, spec.BasePrice, 1e-9)
	assert.InDelta(t, pricing.CleaningFee, spec.CleaningFee, 1e-9)
	assert.InDelta(t, pricing.ServiceFee, spec.ServiceFee, 1e-9)
	assert.InDelta(t, pricing.WeeklyDiscount, spec.WeeklyDiscount, 1e-9)
	assert.InDelta(t, pricing.MonthlyDiscount, spec.MonthlyDiscount, 1e-9)
	assert.True(t, spec.InstantBooking)
	assert.False(t, spec.RequiresApproval)
	assert.Equal(t, booking.PolicyModerate, spec.CancellationPolicy)
	assert.Equal(t, 3, spec.MinimumStay)
	require.NotNil(t, spec.MaximumStay)
	assert.Equal(t, 14, *spec.MaximumStay)
}
