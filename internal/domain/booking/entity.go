package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrTerminalStatus       = errors.New("booking is in a terminal status")
	ErrNotPending           = errors.New("booking is not pending")
	ErrNotCancellable       = errors.New("booking can no longer be cancelled")
	ErrNotCompletable       = errors.New("booking is not eligible for completion")
	ErrStayNotOver          = errors.New("stay has not ended yet")
	ErrEmptyMessageText     = errors.New("message text must not be empty")
)

// Booking is a guest's reservation record for a listing over a date range.
// Guest, host and approval policy are snapshotted from the listing at
// creation time and never live-synced. All lifecycle mutations go through
// the transition methods below; a failed transition leaves the entity
// untouched.
type Booking struct {
	id                 uuid.UUID
	listingID          uuid.UUID
	guestID            uuid.UUID
	hostID             uuid.UUID
	dates              DateRange
	numberOfNights     int
	numberOfGuests     int
	pricing            PriceBreakdown
	status             Status
	paymentStatus      PaymentStatus
	paymentMethod      *string
	transactionID      *string
	specialRequests    *string
	requiresApproval   bool
	cancellationReason *string
	cancellationDate   *time.Time
	approvedAt         *time.Time
	messages           []Message
	createdAt          time.Time
	updatedAt          time.Time
}

func ReconstructBooking(
	id, listingID, guestID, hostID uuid.UUID,
	dates DateRange,
	numberOfNights, numberOfGuests int,
	pricing PriceBreakdown,
	status Status,
	paymentStatus PaymentStatus,
	paymentMethod, transactionID, specialRequests *string,
	requiresApproval bool,
	cancellationReason *string,
	cancellationDate, approvedAt *time.Time,
	messages []Message,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                 id,
		listingID:          listingID,
		guestID:            guestID,
		hostID:             hostID,
		dates:              dates,
		numberOfNights:     numberOfNights,
		numberOfGuests:     numberOfGuests,
		pricing:            pricing,
		status:             status,
		paymentStatus:      paymentStatus,
		paymentMethod:      paymentMethod,
		transactionID:      transactionID,
		specialRequests:    specialRequests,
		requiresApproval:   requiresApproval,
		cancellationReason: cancellationReason,
		cancellationDate:   cancellationDate,
		approvedAt:         approvedAt,
		messages:           messages,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) ListingID() uuid.UUID         { return b.listingID }
func (b *Booking) GuestID() uuid.UUID           { return b.guestID }
func (b *Booking) HostID() uuid.UUID            { return b.hostID }
func (b *Booking) Dates() DateRange             { return b.dates }
func (b *Booking) NumberOfNights() int          { return b.numberOfNights }
func (b *Booking) NumberOfGuests() int          { return b.numberOfGuests }
func (b *Booking) Pricing() PriceBreakdown      { return b.pricing }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) PaymentMethod() *string       { return b.paymentMethod }
func (b *Booking) TransactionID() *string       { return b.transactionID }
func (b *Booking) SpecialRequests() *string     { return b.specialRequests }
func (b *Booking) RequiresApproval() bool       { return b.requiresApproval }
func (b *Booking) CancellationReason() *string  { return b.cancellationReason }
func (b *Booking) CancellationDate() *time.Time { return b.cancellationDate }
func (b *Booking) ApprovedAt() *time.Time       { return b.approvedAt }
func (b *Booking) Messages() []Message          { return b.messages }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }

// SetStatusByHost applies a host status decision. Confirmation and dispute
// require a pending booking; cancellation is the one exception and is
// allowed from any non-terminal status.
func (b *Booking) SetStatusByHost(newStatus Status, reason *string, now time.Time) error {
	switch newStatus {
	case StatusConfirmed, StatusCancelled, StatusDisputed:
	default:
		return ErrInvalidStatus
	}

	if b.status.IsTerminal() {
		return ErrTerminalStatus
	}

	if newStatus == StatusCancelled {
		b.status = StatusCancelled
		b.cancellationReason = reason
		b.cancellationDate = &now
		b.updatedAt = now
		return nil
	}

	if b.status != StatusPending {
		return ErrNotPending
	}

	b.status = newStatus
	if newStatus == StatusConfirmed {
		b.approvedAt = &now
	}
	b.updatedAt = now
	return nil
}

// CancelByGuest cancels the stay and computes the refund from the
// listing's cancellation policy and the notice given, measured at
// cancellation time. Status, payment status and refund fields are written
// together; callers persist them in a single update.
func (b *Booking) CancelByGuest(reason string, policy CancellationPolicy, now time.Time) (Refund, error) {
	if b.status != StatusPending && b.status != StatusConfirmed {
		return Refund{}, ErrNotCancellable
	}

	refund := ComputeRefund(policy, DaysUntilCheckIn(b.dates.CheckIn, now), b.pricing.Total)

	b.status = StatusCancelled
	b.paymentStatus = PaymentRefunded
	b.cancellationReason = &reason
	b.cancellationDate = &now
	b.pricing.RefundAmount = refund.Amount
	b.updatedAt = now
	return refund, nil
}

// UpdatePayment records a payment status change. A payment reported paid
// while the booking is still pending confirms it in the same step; the
// coupling is deliberate and lives only here.
func (b *Booking) UpdatePayment(newStatus PaymentStatus, paymentMethod, transactionID *string, now time.Time) error {
	if !newStatus.IsValid() {
		return ErrInvalidPaymentStatus
	}

	b.paymentStatus = newStatus
	if paymentMethod != nil {
		b.paymentMethod = paymentMethod
	}
	if transactionID != nil {
		b.transactionID = transactionID
	}
	if newStatus == PaymentPaid && b.status == StatusPending {
		b.status = StatusConfirmed
	}
	b.updatedAt = now
	return nil
}

// Complete marks a confirmed stay as finished once checkout has passed.
func (b *Booking) Complete(now time.Time) error {
	if b.status != StatusConfirmed {
		return ErrNotCompletable
	}
	if now.Before(b.dates.CheckOut) {
		return ErrStayNotOver
	}
	b.status = StatusCompleted
	b.updatedAt = now
	return nil
}

// AppendMessage adds to the booking's communication log. Messages never
// affect pricing or state.
func (b *Booking) AppendMessage(senderID uuid.UUID, text string, now time.Time) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, ErrEmptyMessageText
	}
	msg := Message{SenderID: senderID, Text: text, Timestamp: now}
	b.messages = append(b.messages, msg)
	b.updatedAt = now
	return msg, nil
}

// IsParticipant reports whether the user is the booking's guest or host.
func (b *Booking) IsParticipant(userID uuid.UUID) bool {
	return b.guestID == userID || b.hostID == userID
}
