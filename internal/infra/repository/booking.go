package repository

import (
	"context"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type bookingRepository struct{}

func NewBookingRepository() commands.BookingRepository {
	return &bookingRepository{}
}

const insertBookingQuery = `
INSERT INTO bookings (
    id, listing_id, guest_id, host_id,
    check_in_date, check_out_date, number_of_nights, number_of_guests,
    nightly_rate, subtotal, cleaning_fee, service_fee, discount, taxes, total,
    refund_amount, currency,
    status, payment_status, special_requests, requires_approval,
    created_at, updated_at
) VALUES (
    $1, $2, $3, $4,
    $5, $6, $7, $8,
    $9, $10, $11, $12, $13, $14, $15,
    $16, $17,
    $18, $19, $20, $21,
    $22, $23
)`

func (r *bookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	p := b.Pricing()
	_, err := tx.Exec(ctx, insertBookingQuery,
		b.ID(), b.ListingID(), b.GuestID(), b.HostID(),
		b.Dates().CheckIn, b.Dates().CheckOut, b.NumberOfNights(), b.NumberOfGuests(),
		p.NightlyRate, p.Subtotal, p.CleaningFee, p.ServiceFee, p.Discount, p.Taxes, p.Total,
		p.RefundAmount, p.Currency,
		b.Status().String(), b.PaymentStatus().String(),
		pgconv.TextToPgtype(b.SpecialRequests()), b.RequiresApproval(),
		b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		return wrapWriteErr("failed to insert booking", err)
	}
	return nil
}

const selectBookingForUpdateQuery = `
SELECT id, listing_id, guest_id, host_id,
       check_in_date, check_out_date, number_of_nights, number_of_guests,
       nightly_rate, subtotal, cleaning_fee, service_fee, discount, taxes, total,
       refund_amount, currency,
       status, payment_status, payment_method, transaction_id,
       special_requests, requires_approval,
       cancellation_reason, cancellation_date, approved_at,
       created_at, updated_at
FROM bookings
WHERE id = $1
FOR UPDATE`

func (r *bookingRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row := tx.QueryRow(ctx, selectBookingForUpdateQuery, id)

	var (
		bookingID, listingID, guestID, hostID         uuid.UUID
		checkIn, checkOut                             pgtype.Timestamptz
		nights, guests                                int
		pricing                                       booking.PriceBreakdown
		status, paymentStatus                         string
		paymentMethod, transactionID, specialRequests pgtype.Text
		requiresApproval                              bool
		cancellationReason                            pgtype.Text
		cancellationDate, approvedAt                  pgtype.Timestamptz
		createdAt, updatedAt                          pgtype.Timestamptz
	)
	err := row.Scan(
		&bookingID, &listingID, &guestID, &hostID,
		&checkIn, &checkOut, &nights, &guests,
		&pricing.NightlyRate, &pricing.Subtotal, &pricing.CleaningFee,
		&pricing.ServiceFee, &pricing.Discount, &pricing.Taxes, &pricing.Total,
		&pricing.RefundAmount, &pricing.Currency,
		&status, &paymentStatus, &paymentMethod, &transactionID,
		&specialRequests, &requiresApproval,
		&cancellationReason, &cancellationDate, &approvedAt,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	messages, err := r.findMessages(ctx, tx, bookingID)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		bookingID, listingID, guestID, hostID,
		booking.DateRange{CheckIn: pgconv.TimeFromPgtype(checkIn), CheckOut: pgconv.TimeFromPgtype(checkOut)},
		nights, guests,
		pricing,
		booking.Status(status),
		booking.PaymentStatus(paymentStatus),
		pgconv.StringPtrFromPgtype(paymentMethod),
		pgconv.StringPtrFromPgtype(transactionID),
		pgconv.StringPtrFromPgtype(specialRequests),
		requiresApproval,
		pgconv.StringPtrFromPgtype(cancellationReason),
		pgconv.TimePtrFromPgtype(cancellationDate),
		pgconv.TimePtrFromPgtype(approvedAt),
		messages,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

const updateBookingQuery = `
UPDATE bookings
SET status = $2,
    payment_status = $3,
    payment_method = $4,
    transaction_id = $5,
    cancellation_reason = $6,
    cancellation_date = $7,
    approved_at = $8,
    refund_amount = $9,
    updated_at = $10
WHERE id = $1`

func (r *bookingRepository) Save(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	tag, err := tx.Exec(ctx, updateBookingQuery,
		b.ID(),
		b.Status().String(),
		b.PaymentStatus().String(),
		pgconv.TextToPgtype(b.PaymentMethod()),
		pgconv.TextToPgtype(b.TransactionID()),
		pgconv.TextToPgtype(b.CancellationReason()),
		pgconv.TimePtrToPgtype(b.CancellationDate()),
		pgconv.TimePtrToPgtype(b.ApprovedAt()),
		b.Pricing().RefundAmount,
		b.UpdatedAt(),
	)
	if err != nil {
		return wrapWriteErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

const insertMessageQuery = `
INSERT INTO booking_messages (booking_id, sender_id, body, created_at)
VALUES ($1, $2, $3, $4)`

func (r *bookingRepository) AddMessage(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, msg booking.Message) error {
	if _, err := tx.Exec(ctx, insertMessageQuery, bookingID, msg.SenderID, msg.Text, msg.Timestamp); err != nil {
		return wrapWriteErr("failed to insert booking message", err)
	}
	return nil
}

const selectMessagesQuery = `
SELECT sender_id, body, created_at
FROM booking_messages
WHERE booking_id = $1
ORDER BY id`

func (r *bookingRepository) findMessages(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) ([]booking.Message, error) {
	rows, err := tx.Query(ctx, selectMessagesQuery, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking messages", err)
	}
	defer rows.Close()

	var messages []booking.Message
	for rows.Next() {
		var msg booking.Message
		if err := rows.Scan(&msg.SenderID, &msg.Text, &msg.Timestamp); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking message", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking messages", err)
	}
	return messages, nil
}
