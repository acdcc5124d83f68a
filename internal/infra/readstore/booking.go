package readstore

import (
	"context"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// bookingReadStore serves the read side straight from the pool. Reads
// never join a write transaction.
type bookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) queries.BookingReadStore {
	return &bookingReadStore{pool: pool}
}

const selectBookingViewQuery = `
SELECT b.id, b.listing_id, l.title, b.guest_id, b.host_id,
       b.check_in_date, b.check_out_date, b.number_of_nights, b.number_of_guests,
       b.nightly_rate, b.subtotal, b.cleaning_fee, b.service_fee,
       b.discount, b.taxes, b.total, b.refund_amount, b.currency,
       b.status, b.payment_status, b.payment_method, b.transaction_id,
       b.special_requests, b.requires_approval,
       b.cancellation_reason, b.cancellation_date, b.approved_at,
       b.created_at, b.updated_at
FROM bookings b
JOIN listings l ON l.id = b.listing_id
WHERE b.id = $1`

func (s *bookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := s.pool.QueryRow(ctx, selectBookingViewQuery, id)

	var (
		view                                          queries.BookingView
		checkIn, checkOut                             pgtype.Timestamptz
		paymentMethod, transactionID, specialRequests pgtype.Text
		cancellationReason                            pgtype.Text
		cancellationDate, approvedAt                  pgtype.Timestamptz
		createdAt, updatedAt                          pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.ListingID, &view.ListingTitle, &view.GuestID, &view.HostID,
		&checkIn, &checkOut, &view.NumberOfNights, &view.NumberOfGuests,
		&view.Pricing.NightlyRate, &view.Pricing.Subtotal, &view.Pricing.CleaningFee,
		&view.Pricing.ServiceFee, &view.Pricing.Discount, &view.Pricing.Taxes,
		&view.Pricing.Total, &view.Pricing.RefundAmount, &view.Pricing.Currency,
		&view.Status, &view.PaymentStatus, &paymentMethod, &transactionID,
		&specialRequests, &view.RequiresApproval,
		&cancellationReason, &cancellationDate, &approvedAt,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	view.CheckInDate = pgconv.TimeFromPgtype(checkIn)
	view.CheckOutDate = pgconv.TimeFromPgtype(checkOut)
	view.PaymentMethod = pgconv.StringPtrFromPgtype(paymentMethod)
	view.TransactionID = pgconv.StringPtrFromPgtype(transactionID)
	view.SpecialRequests = pgconv.StringPtrFromPgtype(specialRequests)
	view.CancellationReason = pgconv.StringPtrFromPgtype(cancellationReason)
	view.CancellationDate = pgconv.TimePtrFromPgtype(cancellationDate)
	view.ApprovedAt = pgconv.TimePtrFromPgtype(approvedAt)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	messages, err := s.findMessages(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Messages = messages
	return &view, nil
}

const selectMessageViewsQuery = `
SELECT sender_id, body, created_at
FROM booking_messages
WHERE booking_id = $1
ORDER BY id`

func (s *bookingReadStore) findMessages(ctx context.Context, bookingID uuid.UUID) ([]queries.MessageView, error) {
	rows, err := s.pool.Query(ctx, selectMessageViewsQuery, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking messages", err)
	}
	defer rows.Close()

	var messages []queries.MessageView
	for rows.Next() {
		var mv queries.MessageView
		if err := rows.Scan(&mv.SenderID, &mv.Text, &mv.Timestamp); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking message", err)
		}
		messages = append(messages, mv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking messages", err)
	}
	return messages, nil
}

func (s *bookingReadStore) FindByGuestID(ctx context.Context, guestID uuid.UUID) ([]*queries.BookingListItem, error) {
	return s.findList(ctx, selectBookingsByGuestQuery, guestID)
}

func (s *bookingReadStore) FindByHostID(ctx context.Context, hostID uuid.UUID) ([]*queries.BookingListItem, error) {
	return s.findList(ctx, selectBookingsByHostQuery, hostID)
}

const (
	selectBookingsByGuestQuery = `
SELECT b.id, b.listing_id, l.title, b.check_in_date, b.check_out_date,
       b.status, b.total, b.created_at
FROM bookings b
JOIN listings l ON l.id = b.listing_id
WHERE b.guest_id = $1
ORDER BY b.created_at DESC`

	selectBookingsByHostQuery = `
SELECT b.id, b.listing_id, l.title, b.check_in_date, b.check_out_date,
       b.status, b.total, b.created_at
FROM bookings b
JOIN listings l ON l.id = b.listing_id
WHERE b.host_id = $1
ORDER BY b.created_at DESC`
)

func (s *bookingReadStore) findList(ctx context.Context, query string, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	items := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var (
			item              queries.BookingListItem
			checkIn, checkOut pgtype.Timestamptz
			createdAt         pgtype.Timestamptz
		)
		err := rows.Scan(
			&item.ID, &item.ListingID, &item.ListingTitle, &checkIn, &checkOut,
			&item.Status, &item.Total, &createdAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list item", err)
		}
		item.CheckInDate = pgconv.TimeFromPgtype(checkIn)
		item.CheckOutDate = pgconv.TimeFromPgtype(checkOut)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return items, nil
}

// availabilityReadStore answers availability probes for a listing.
type availabilityReadStore struct {
	pool *pgxpool.Pool
}

func NewAvailabilityReadStore(pool *pgxpool.Pool) queries.AvailabilityReadStore {
	return &availabilityReadStore{pool: pool}
}

const listingExistsQuery = `SELECT EXISTS (SELECT 1 FROM listings WHERE id = $1)`

func (s *availabilityReadStore) ListingExists(ctx context.Context, listingID uuid.UUID) (bool, error) {
	var exists bool
	if err := s.pool.QueryRow(ctx, listingExistsQuery, listingID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check listing existence", err)
	}
	return exists, nil
}

const selectBlockingRangesReadQuery = `
SELECT check_in_date, check_out_date
FROM bookings
WHERE listing_id = $1
  AND status IN ('confirmed', 'completed')
ORDER BY check_in_date`

func (s *availabilityReadStore) FindBlockingRanges(ctx context.Context, listingID uuid.UUID) ([]booking.DateRange, error) {
	rows, err := s.pool.Query(ctx, selectBlockingRangesReadQuery, listingID)
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

const selectBlackoutWindowsQuery = `
SELECT start_date, end_date, available
FROM blackout_windows
WHERE listing_id = $1
ORDER BY start_date`

func (s *availabilityReadStore) FindBlackoutWindows(ctx context.Context, listingID uuid.UUID) ([]booking.BlackoutWindow, error) {
	rows, err := s.pool.Query(ctx, selectBlackoutWindowsQuery, listingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find blackout windows", err)
	}
	defer rows.Close()

	var windows []booking.BlackoutWindow
	for rows.Next() {
		var w booking.BlackoutWindow
		if err := rows.Scan(&w.StartDate, &w.EndDate, &w.Available); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blackout window", err)
		}
		windows = append(windows, w)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate blackout windows", err)
	}
	return windows, nil
}
