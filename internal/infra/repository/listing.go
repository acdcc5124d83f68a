package repository

import (
	"context"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/listing"
	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type listingRepository struct {
	pool *pgxpool.Pool
}

func NewListingRepository(pool *pgxpool.Pool) commands.ListingRepository {
	return &listingRepository{pool: pool}
}

const selectListingSpecQuery = `
SELECT id, host_id, title, status, guests,
       base_price, cleaning_fee, service_fee, weekly_discount, monthly_discount,
       instant_booking, requires_approval, cancellation_policy,
       minimum_stay, maximum_stay
FROM listings
WHERE id = $1`

func (r *listingRepository) FindSpec(ctx context.Context, id uuid.UUID) (*booking.ListingSpec, error) {
	row := r.pool.QueryRow(ctx, selectListingSpecQuery, id)

	var (
		listingID, hostID uuid.UUID
		title, status     string
		policy            string
		guests            int
		pricing           listing.Pricing
		rules             listing.BookingRules
		minimumStay       int
		maximumStay       pgtype.Int4
	)
	err := row.Scan(
		&listingID, &hostID, &title, &status, &guests,
		&pricing.BasePrice, &pricing.CleaningFee, &pricing.ServiceFee,
		&pricing.WeeklyDiscount, &pricing.MonthlyDiscount,
		&rules.InstantBooking, &rules.RequiresApproval, &policy,
		&minimumStay, &maximumStay,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find listing", err)
	}

	var maxStay *int
	if m := pgconv.Int32PtrFromPgtype(maximumStay); m != nil {
		v := int(*m)
		maxStay = &v
	}
	rules.CancellationPolicy = booking.CancellationPolicy(policy)

	entity, err := listing.NewListing(listingID, hostID, title, listing.Status(status), guests, pricing, rules, minimumStay, maxStay)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt listing row", err)
	}

	spec := entity.Spec()
	return &spec, nil
}

const lockListingQuery = `SELECT id FROM listings WHERE id = $1 FOR UPDATE`

func (r *listingRepository) LockForBooking(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	var lockedID uuid.UUID
	if err := tx.QueryRow(ctx, lockListingQuery, id).Scan(&lockedID); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock listing", err)
	}
	return nil
}

const selectBlockingRangesQuery = `
SELECT check_in_date, check_out_date
FROM bookings
WHERE listing_id = $1
  AND status IN ('confirmed', 'completed')
ORDER BY check_in_date`

func (r *listingRepository) FindBlockingRanges(ctx context.Context, tx db.DBTX, id uuid.UUID) ([]booking.DateRange, error) {
	rows, err := tx.Query(ctx, selectBlockingRangesQuery, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find blocking ranges", err)
	}
	defer rows.Close()

	var ranges []booking.DateRange
	for rows.Next() {
		var dr booking.DateRange
		if err := rows.Scan(&dr.CheckIn, &dr.CheckOut); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blocking range", err)
		}
		ranges = append(ranges, dr)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate blocking ranges", err)
	}
	return ranges, nil
}
