package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingParams struct {
	ListingID       uuid.UUID
	CheckInDate     time.Time
	CheckOutDate    time.Time
	NumberOfGuests  int
	SpecialRequests *string
}

type UpdatePaymentParams struct {
	PaymentStatus string
	PaymentMethod *string
	TransactionID *string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams, actor shared.Actor) (*queries.BookingView, error)
	SetBookingStatus(ctx context.Context, bookingID uuid.UUID, newStatus string, reason *string, actor shared.Actor) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, reason string, actor shared.Actor) (*queries.BookingView, error)
	UpdatePaymentStatus(ctx context.Context, bookingID uuid.UUID, params UpdatePaymentParams, actor shared.Actor) (*queries.BookingView, error)
	CompleteBooking(ctx context.Context, bookingID uuid.UUID, actor shared.Actor) (*queries.BookingView, error)
	AddMessage(ctx context.Context, bookingID uuid.UUID, text string, actor shared.Actor) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	bookingRepo    BookingRepository
	listingRepo    ListingRepository
	notifier       Notifier
	factory        *booking.Factory
	bookingQueries queries.BookingReadStore
	uow            shared.UnitOfWork
	clock          clock.Clock
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	listingRepo ListingRepository,
	notifier Notifier,
	factory *booking.Factory,
	bookingQueries queries.BookingReadStore,
	uow shared.UnitOfWork,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		bookingRepo:    bookingRepo,
		listingRepo:    listingRepo,
		notifier:       notifier,
		factory:        factory,
		bookingQueries: bookingQueries,
		uow:            uow,
		clock:          clk,
	}
}

// CreateBooking validates the request against the listing, prices the
// stay and inserts the booking. The availability check and the insert run
// under the listing's row lock inside one transaction, so of two
// concurrent requests for overlapping dates exactly one wins; the loser
// surfaces as ErrDatesUnavailable.
func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, params CreateBookingParams, actor shared.Actor) (*queries.BookingView, error) {
	spec, err := u.listingRepo.FindSpec(ctx, params.ListingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrListingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var created *booking.Booking
	err = u.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if lockErr := u.listingRepo.LockForBooking(ctx, tx, params.ListingID); lockErr != nil {
			return errs.Mark(lockErr, errs.ErrDatabaseOperationFailed)
		}

		blocking, rangeErr := u.listingRepo.FindBlockingRanges(ctx, tx, params.ListingID)
		if rangeErr != nil {
			return errs.Mark(rangeErr, errs.ErrDatabaseOperationFailed)
		}

		entity, factoryErr := u.factory.CreateBooking(
			*spec,
			actor.ID,
			params.CheckInDate,
			params.CheckOutDate,
			params.NumberOfGuests,
			params.SpecialRequests,
			blocking,
		)
		if factoryErr != nil {
			return factoryErr
		}

		if createErr := u.bookingRepo.Create(ctx, tx, entity); createErr != nil {
			if infra.IsKind(createErr, infra.KindConflict) {
				// Exclusion constraint caught a writer that raced past
				// the in-transaction check.
				return errs.ErrDatesUnavailable
			}
			return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
		}

		created = entity
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.dispatch(ctx, TopicBookingCreated, created)
	return u.viewByID(ctx, created.ID())
}

// SetBookingStatus applies a host approval decision. Host-only; the
// authorization check runs before any state guard.
func (u *bookingUseCaseImpl) SetBookingStatus(ctx context.Context, bookingID uuid.UUID, newStatus string, reason *string, actor shared.Actor) (*queries.BookingView, error) {
	var updated *booking.Booking
	err := u.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		entity, err := u.findForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if entity.HostID() != actor.ID {
			return errs.ErrForbidden
		}

		if err := entity.SetStatusByHost(booking.Status(newStatus), reason, u.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrInvalidTransition)
		}

		if err := u.bookingRepo.Save(ctx, tx, entity); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				// Confirming can trip the overlap constraint when a
				// competing booking confirmed first.
				return errs.ErrDatesUnavailable
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		updated = entity
		return nil
	})
	if err != nil {
		return nil, err
	}

	switch updated.Status() {
	case booking.StatusConfirmed:
		u.dispatch(ctx, TopicBookingConfirmed, updated)
	case booking.StatusCancelled:
		u.dispatch(ctx, TopicBookingCancelled, updated)
	}
	return u.viewByID(ctx, bookingID)
}

// CancelBooking cancels on the guest's behalf and computes the refund
// from the listing's cancellation policy at the moment of cancellation.
func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID, reason string, actor shared.Actor) (*queries.BookingView, error) {
	var updated *booking.Booking
	err := u.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		entity, err := u.findForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if entity.GuestID() != actor.ID {
			return errs.ErrForbidden
		}

		spec, err := u.listingRepo.FindSpec(ctx, entity.ListingID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrListingNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if _, err := entity.CancelByGuest(reason, spec.CancellationPolicy, u.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrInvalidTransition)
		}

		if err := u.bookingRepo.Save(ctx, tx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		updated = entity
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.dispatch(ctx, TopicBookingCancelled, updated)
	return u.viewByID(ctx, bookingID)
}

// UpdatePaymentStatus records the gateway's payment outcome. A payment
// reported paid for a pending booking confirms it in the same update.
func (u *bookingUseCaseImpl) UpdatePaymentStatus(ctx context.Context, bookingID uuid.UUID, params UpdatePaymentParams, actor shared.Actor) (*queries.BookingView, error) {
	var updated *booking.Booking
	err := u.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		entity, err := u.findForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if entity.GuestID() != actor.ID && !actor.IsAdmin() {
			return errs.ErrForbidden
		}

		wasPending := entity.Status() == booking.StatusPending
		if err := entity.UpdatePayment(booking.PaymentStatus(params.PaymentStatus), params.PaymentMethod, params.TransactionID, u.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrInvalidPaymentStatus)
		}

		if err := u.bookingRepo.Save(ctx, tx, entity); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				// Auto-confirm via payment can trip the overlap
				// constraint when a competing booking confirmed first.
				return errs.ErrDatesUnavailable
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if wasPending && entity.Status() == booking.StatusConfirmed {
			updated = entity
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if updated != nil {
		u.dispatch(ctx, TopicBookingConfirmed, updated)
	}
	return u.viewByID(ctx, bookingID)
}

// CompleteBooking marks a finished stay completed and asks the guest for
// a review.
func (u *bookingUseCaseImpl) CompleteBooking(ctx context.Context, bookingID uuid.UUID, actor shared.Actor) (*queries.BookingView, error) {
	var updated *booking.Booking
	err := u.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		entity, err := u.findForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if entity.HostID() != actor.ID && !actor.IsAdmin() {
			return errs.ErrForbidden
		}

		if err := entity.Complete(u.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrInvalidTransition)
		}

		if err := u.bookingRepo.Save(ctx, tx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		updated = entity
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.dispatch(ctx, TopicReviewRequest, updated)
	return u.viewByID(ctx, bookingID)
}

// AddMessage appends to the booking's communication log. Guest and host
// of the booking may write.
func (u *bookingUseCaseImpl) AddMessage(ctx context.Context, bookingID uuid.UUID, text string, actor shared.Actor) (*queries.BookingView, error) {
	err := u.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		entity, err := u.findForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if !entity.IsParticipant(actor.ID) && !actor.IsAdmin() {
			return errs.ErrForbidden
		}

		msg, err := entity.AppendMessage(actor.ID, text, u.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrEmptyMessage)
		}

		if err := u.bookingRepo.AddMessage(ctx, tx, bookingID, msg); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u.viewByID(ctx, bookingID)
}

func (u *bookingUseCaseImpl) findForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	entity, err := u.bookingRepo.FindByIDForUpdate(ctx, tx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (u *bookingUseCaseImpl) viewByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	view, err := u.bookingQueries.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// dispatch enqueues a lifecycle event after the booking write committed.
// Failures are logged and swallowed: notification delivery never undoes a
// booking.
func (u *bookingUseCaseImpl) dispatch(ctx context.Context, topic string, entity *booking.Booking) {
	payload, err := json.Marshal(map[string]any{
		"booking_id": entity.ID(),
		"listing_id": entity.ListingID(),
		"guest_id":   entity.GuestID(),
		"host_id":    entity.HostID(),
		"status":     entity.Status().String(),
		"check_in":   entity.Dates().CheckIn,
		"check_out":  entity.Dates().CheckOut,
		"total":      entity.Pricing().Total,
		"summary": fmt.Sprintf("%d-night stay from %s to %s, %s %.2f",
			entity.NumberOfNights(),
			entity.Dates().CheckIn.Format(time.DateOnly),
			entity.Dates().CheckOut.Format(time.DateOnly),
			entity.Pricing().Currency,
			entity.Pricing().Total),
	})
	if err != nil {
		slog.Error("failed to marshal notification payload", "topic", topic, "error", err.Error())
		return
	}

	if err := u.notifier.Enqueue(ctx, topic, payload); err != nil {
		slog.Warn("failed to enqueue notification", "topic", topic, "booking_id", entity.ID(), "error", err.Error())
	}
}
