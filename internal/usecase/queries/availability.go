package queries

import (
	"context"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

// AvailabilityResult tells a guest whether a range can be requested before
// they submit a booking. This read path is the only place host blackout
// windows are consulted; creation re-checks bookings but not blackouts.
type AvailabilityResult struct {
	ListingID uuid.UUID `json:"listingId"`
	CheckIn   time.Time `json:"checkInDate"`
	CheckOut  time.Time `json:"checkOutDate"`
	Available bool      `json:"available"`
}

type AvailabilityQueries interface {
	Check(ctx context.Context, listingID uuid.UUID, checkIn, checkOut time.Time) (*AvailabilityResult, error)
}

type AvailabilityReadStore interface {
	ListingExists(ctx context.Context, listingID uuid.UUID) (bool, error)
	FindBlockingRanges(ctx context.Context, listingID uuid.UUID) ([]booking.DateRange, error)
	FindBlackoutWindows(ctx context.Context, listingID uuid.UUID) ([]booking.BlackoutWindow, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
}

func NewAvailabilityQueries(store AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store}
}

func (q *availabilityQueriesImpl) Check(ctx context.Context, listingID uuid.UUID, checkIn, checkOut time.Time) (*AvailabilityResult, error) {
	if !checkIn.Before(checkOut) {
		return nil, errs.ErrInvalidDateRange
	}

	exists, err := q.store.ListingExists(ctx, listingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !exists {
		return nil, errs.ErrListingNotFound
	}

	blocking, err := q.store.FindBlockingRanges(ctx, listingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrListingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	windows, err := q.store.FindBlackoutWindows(ctx, listingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	available := booking.IsAvailable(checkIn, checkOut, blocking) &&
		!booking.IsBlackedOut(checkIn, checkOut, windows)

	return &AvailabilityResult{
		ListingID: listingID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Available: available,
	}, nil
}
