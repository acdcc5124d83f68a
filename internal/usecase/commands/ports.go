package commands

import (
	"context"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra/db"

	"github.com/google/uuid"
)

// BookingRepository is the write side of the bookings table. Mutating
// methods run against the transaction the usecase opened so every
// transition commits atomically or not at all.
type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	// FindByIDForUpdate locks the booking row for the rest of the
	// transaction so concurrent transitions serialize.
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	// Save writes all transition-mutated fields in a single update.
	Save(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	AddMessage(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, msg booking.Message) error
}

// ListingRepository supplies the write-side listing snapshot and the
// per-listing serialization primitives used during booking creation.
type ListingRepository interface {
	FindSpec(ctx context.Context, id uuid.UUID) (*booking.ListingSpec, error)
	// LockForBooking takes the per-listing row lock that serializes the
	// availability check with the insert.
	LockForBooking(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	FindBlockingRanges(ctx context.Context, tx db.DBTX, id uuid.UUID) ([]booking.DateRange, error)
}

// Notifier dispatches booking lifecycle events. Fire-and-forget: a
// delivery failure never rolls back the booking write it follows.
type Notifier interface {
	Enqueue(ctx context.Context, topic string, payload []byte) error
}

// Notification topics
const (
	TopicBookingCreated   = "booking_created"
	TopicBookingConfirmed = "booking_confirmed"
	TopicBookingCancelled = "booking_cancelled"
	TopicReviewRequest    = "review_request"
)
