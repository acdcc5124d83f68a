package queries

import (
	"context"
	"time"

	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID                 uuid.UUID     `json:"id"`
	ListingID          uuid.UUID     `json:"listingId"`
	ListingTitle       string        `json:"listingTitle"`
	GuestID            uuid.UUID     `json:"guestId"`
	HostID             uuid.UUID     `json:"hostId"`
	CheckInDate        time.Time     `json:"checkInDate"`
	CheckOutDate       time.Time     `json:"checkOutDate"`
	NumberOfNights     int           `json:"numberOfNights"`
	NumberOfGuests     int           `json:"numberOfGuests"`
	Pricing            PricingView   `json:"pricing"`
	Status             string        `json:"status"`
	PaymentStatus      string        `json:"paymentStatus"`
	PaymentMethod      *string       `json:"paymentMethod,omitempty"`
	TransactionID      *string       `json:"transactionId,omitempty"`
	SpecialRequests    *string       `json:"specialRequests,omitempty"`
	RequiresApproval   bool          `json:"requiresApproval"`
	CancellationReason *string       `json:"cancellationReason,omitempty"`
	CancellationDate   *time.Time    `json:"cancellationDate,omitempty"`
	ApprovedAt         *time.Time    `json:"approvedAt,omitempty"`
	Messages           []MessageView `json:"messages,omitempty"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}

type PricingView struct {
	NightlyRate  float64 `json:"nightlyRate"`
	Subtotal     float64 `json:"subtotal"`
	CleaningFee  float64 `json:"cleaningFee"`
	ServiceFee   float64 `json:"serviceFee"`
	Discount     float64 `json:"discount"`
	Taxes        float64 `json:"taxes"`
	Total        float64 `json:"total"`
	RefundAmount float64 `json:"refundAmount,omitempty"`
	Currency     string  `json:"currency"`
}

type MessageView struct {
	SenderID  uuid.UUID `json:"senderId"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type BookingListItem struct {
	ID           uuid.UUID `json:"id"`
	ListingID    uuid.UUID `json:"listingId"`
	ListingTitle string    `json:"listingTitle"`
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
	Status       string    `json:"status"`
	Total        float64   `json:"total"`
	CreatedAt    time.Time `json:"createdAt"`
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*BookingListItem, error)
	ListByHost(ctx context.Context, hostID uuid.UUID) ([]*BookingListItem, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByGuestID(ctx context.Context, guestID uuid.UUID) ([]*BookingListItem, error)
	FindByHostID(ctx context.Context, hostID uuid.UUID) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

// GetByID restricts a booking view to its participants; admins see all.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !actor.IsAdmin() && view.GuestID != actor.ID && view.HostID != actor.ID {
		return nil, errs.ErrForbidden
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*BookingListItem, error) {
	return q.store.FindByGuestID(ctx, guestID)
}

func (q *bookingQueriesImpl) ListByHost(ctx context.Context, hostID uuid.UUID) ([]*BookingListItem, error) {
	return q.store.FindByHostID(ctx, hostID)
}
