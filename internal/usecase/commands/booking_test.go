//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/shared"
	"stayhub/tests/common/builder"
	commandsmock "stayhub/tests/mock/commands"
	queriesmock "stayhub/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

// fakeUoW runs the callback directly; unit tests have no real
// transaction to hand out.
type fakeUoW struct{}

func (fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return fn(ctx, nil)
}

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockBookings  *commandsmock.MockBookingRepository
	mockListings  *commandsmock.MockListingRepository
	mockNotifier  *commandsmock.MockNotifier
	mockReadStore *queriesmock.MockBookingReadStore
	clock         *clock.FakeClock
	uc            commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.mockListings = commandsmock.NewMockListingRepository(s.mockCtrl)
	s.mockNotifier = commandsmock.NewMockNotifier(s.mockCtrl)
	s.mockReadStore = queriesmock.NewMockBookingReadStore(s.mockCtrl)
	s.clock = clock.NewFakeClock(testNow)

	s.uc = commands.NewBookingUseCase(
		s.mockBookings,
		s.mockListings,
		s.mockNotifier,
		booking.NewFactory(s.clock),
		s.mockReadStore,
		fakeUoW{},
		s.clock,
	)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) guestActor(id uuid.UUID) shared.Actor {
	return shared.Actor{ID: id, Role: "guest"}
}

func (s *BookingCommandsTestSuite) hostActor(id uuid.UUID) shared.Actor {
	return shared.Actor{ID: id, Role: "host"}
}

func (s *BookingCommandsTestSuite) adminActor() shared.Actor {
	return shared.Actor{ID: uuid.New(), Role: "admin"}
}

// ================================================================================
// CreateBooking
// ================================================================================

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	guestID := uuid.New()
	spec := builder.NewListingBuilder().BuildSpec()
	checkIn := testNow.AddDate(0, 0, 30)
	params := commands.CreateBookingParams{
		ListingID:      spec.ID,
		CheckInDate:    checkIn,
		CheckOutDate:   checkIn.AddDate(0, 0, 3),
		NumberOfGuests: 2,
	}
	view := builder.NewBookingBuilder().WithListingID(spec.ID).WithGuestID(guestID).BuildView()

	s.Run("success: pending booking on listing requiring approval", func() {
		var created *booking.Booking
		s.mockListings.EXPECT().FindSpec(gomock.Any(), spec.ID).Return(&spec, nil)
		s.mockListings.EXPECT().LockForBooking(gomock.Any(), gomock.Any(), spec.ID).Return(nil)
		s.mockListings.EXPECT().FindBlockingRanges(gomock.Any(), gomock.Any(), spec.ID).Return(nil, nil)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, b *booking.Booking) error {
				created = b
				return nil
			})
		s.mockNotifier.EXPECT().Enqueue(gomock.Any(), commands.TopicBookingCreated, gomock.Any()).Return(nil)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(view, nil)

		result, err := s.uc.CreateBooking(context.Background(), params, s.guestActor(guestID))

		s.NoError(err)
		s.Equal(view, result)
		s.Equal(booking.StatusPending, created.Status())
		s.Equal(guestID, created.GuestID())
		s.Equal(spec.HostID, created.HostID())
		s.InDelta(370.0, created.Pricing().Total, 1e-9)
	})

	s.Run("success: instant booking listing confirms immediately", func() {
		instant := builder.NewListingBuilder().WithInstantBooking(true).BuildSpec()
		instantParams := params
		instantParams.ListingID = instant.ID

		var created *booking.Booking
		s.mockListings.EXPECT().FindSpec(gomock.Any(), instant.ID).Return(&instant, nil)
		s.mockListings.EXPECT().LockForBooking(gomock.Any(), gomock.Any(), instant.ID).Return(nil)
		s.mockListings.EXPECT().FindBlockingRanges(gomock.Any(), gomock.Any(), instant.ID).Return(nil, nil)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, b *booking.Booking) error {
				created = b
				return nil
			})
		s.mockNotifier.EXPECT().Enqueue(gomock.Any(), commands.TopicBookingCreated, gomock.Any()).Return(nil)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(view, nil)

		_, err := s.uc.CreateBooking(context.Background(), instantParams, s.guestActor(guestID))

		s.NoError(err)
		s.Equal(booking.StatusConfirmed, created.Status())
	})

	s.Run("error: listing not found", func() {
		s.mockListings.EXPECT().FindSpec(gomock.Any(), spec.ID).
			Return(nil, infra.WrapRepoErr("listing not found", nil, infra.KindNotFound))

		_, err := s.uc.CreateBooking(context.Background(), params, s.guestActor(guestID))

		s.ErrorIs(err, errs.ErrListingNotFound)
	})

	s.Run("error: validation failure stops before insert", func() {
		crowded := params
		crowded.NumberOfGuests = 10

		s.mockListings.EXPECT().FindSpec(gomock.Any(), spec.ID).Return(&spec, nil)
		s.mockListings.EXPECT().LockForBooking(gomock.Any(), gomock.Any(), spec.ID).Return(nil)
		s.mockListings.EXPECT().FindBlockingRanges(gomock.Any(), gomock.Any(), spec.ID).Return(nil, nil)

		_, err := s.uc.CreateBooking(context.Background(), crowded, s.guestActor(guestID))

		s.ErrorIs(err, errs.ErrTooManyGuests)
	})

	s.Run("error: overlapping confirmed booking wins", func() {
		blocking := []booking.DateRange{{
			CheckIn:  params.CheckInDate.AddDate(0, 0, 1),
			CheckOut: params.CheckOutDate.AddDate(0, 0, 1),
		}}

		s.mockListings.EXPECT().FindSpec(gomock.Any(), spec.ID).Return(&spec, nil)
		s.mockListings.EXPECT().LockForBooking(gomock.Any(), gomock.Any(), spec.ID).Return(nil)
		s.mockListings.EXPECT().FindBlockingRanges(gomock.Any(), gomock.Any(), spec.ID).Return(blocking, nil)

		_, err := s.uc.CreateBooking(context.Background(), params, s.guestActor(guestID))

		s.ErrorIs(err, errs.ErrDatesUnavailable)
	})

	s.Run("error: exclusion violation on insert maps to dates unavailable", func() {
		s.mockListings.EXPECT().FindSpec(gomock.Any(), spec.ID).Return(&spec, nil)
		s.mockListings.EXPECT().LockForBooking(gomock.Any(), gomock.Any(), spec.ID).Return(nil)
		s.mockListings.EXPECT().FindBlockingRanges(gomock.Any(), gomock.Any(), spec.ID).Return(nil, nil)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("overlap", nil, infra.KindConflict))

		_, err := s.uc.CreateBooking(context.Background(), params, s.guestActor(guestID))

		s.ErrorIs(err, errs.ErrDatesUnavailable)
	})

	s.Run("success: notification failure does not fail the booking", func() {
		s.mockListings.EXPECT().FindSpec(gomock.Any(), spec.ID).Return(&spec, nil)
		s.mockListings.EXPECT().LockForBooking(gomock.Any(), gomock.Any(), spec.ID).Return(nil)
		s.mockListings.EXPECT().FindBlockingRanges(gomock.Any(), gomock.Any(), spec.ID).Return(nil, nil)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.mockNotifier.EXPECT().Enqueue(gomock.Any(), commands.TopicBookingCreated, gomock.Any()).
			Return(infra.WrapRepoErr("broker down", nil))
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(view, nil)

		_, err := s.uc.CreateBooking(context.Background(), params, s.guestActor(guestID))

		s.NoError(err)
	})
}

// ================================================================================
// SetBookingStatus
// ================================================================================

func (s *BookingCommandsTestSuite) TestSetBookingStatus() {
	s.Run("success: host confirms pending booking", func() {
		entity := builder.NewBookingBuilder().WithStatus(booking.StatusPending).BuildDomain()
		view := builder.NewBookingBuilder().WithID(entity.ID()).BuildView()

		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockBookings.EXPECT().Save(gomock.Any(), gomock.Any(), entity).Return(nil)
		s.mockNotifier.EXPECT().Enqueue(gomock.Any(), commands.TopicBookingConfirmed, gomock.Any()).Return(nil)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(view, nil)

		_, err := s.uc.SetBookingStatus(context.Background(), entity.ID(), "confirmed", nil, s.hostActor(entity.HostID()))

		s.NoError(err)
		s.Equal(booking.StatusConfirmed, entity.Status())
		s.NotNil(entity.ApprovedAt())
	})

	s.Run("success: host cancellation dispatches cancelled event", func() {
		entity := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildDomain()
		view := builder.NewBookingBuilder().WithID(entity.ID()).BuildView()
		reason := "maintenance issue"

		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockBookings.EXPECT().Save(gomock.Any(), gomock.Any(), entity).Return(nil)
		s.mockNotifier.EXPECT().Enqueue(gomock.Any(), commands.TopicBookingCancelled, gomock.Any()).Return(nil)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(view, nil)

		_, err := s.uc.SetBookingStatus(context.Background(), entity.ID(), "cancelled", &reason, s.hostActor(entity.HostID()))

		s.NoError(err)
		s.Equal(booking.StatusCancelled, entity.Status())
	})

	s.Run("error: guest may not use host decision endpoint", func() {
		entity := builder.NewBookingBuilder().WithStatus(booking.StatusPending).BuildDomain()

		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), entity.ID()).Return(entity, nil)

		_, err := s.uc.SetBookingStatus(context.Background(), entity.ID(), "confirmed", nil, s.guestActor(entity.GuestID()))

		s.ErrorIs(err, errs.ErrForbidden)
		s.Equal(booking.StatusPending, entity.Status())
	})

	s.Run("error: terminal booking rejects transition", func() {
		entity := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted).BuildDomain()

		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), entity.ID()).Return(entity, nil)

		_, err := s.uc.SetBookingStatus(context.Background(), entity.ID(), "confirmed", nil, s.hostActor(entity.HostID()))

		s.ErrorIs(err, errs.ErrInvalidTransition)
	})

	s.Run("error: booking not found", func() {
		id := uuid.New()
		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := s.uc.SetBookingStatus(context.Background(), id, "confirmed", nil, s.hostActor(uuid.New()))

		s.ErrorIs(err, errs.ErrBookingNotFound)
	})

	s.Run("error: exclusion violation on confirm maps to dates unavailable", func() {
		entity := builder.NewBookingBuilder().WithStatus(booking.StatusPending).BuildDomain()

		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockBookings.EXPECT().Save(gomock.Any(), gomock.Any(), entity).
			Return(infra.WrapRepoErr("overlap", nil, infra.KindConflict))

		_, err := s.uc.SetBookingStatus(context.Background(), entity.ID(), "confirmed", nil, s.hostActor(entity.HostID()))

		s.ErrorIs(err, errs.ErrDatesUnavailable)
	})
}

// ================================================================================
// CancelBooking
// ================================================================================

func (s *BookingCommandsTestSuite) TestCancelBooking() {
	s.Run("success: cancellation 30 days out refunds in full", func() {
		entity := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildDomain()
		spec := builder.NewListingBuilder().WithID(entity.ListingID()).BuildSpec()
		view := builder.NewBookingBuilder().WithID(entity.ID()).BuildView()

		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockListings.EXPECT().FindSpec(gomock.Any(), entity.ListingID()).Return(&spec, nil)
		s.mockBookings.EXPECT().Save(gomock.Any(), gomock.Any(), entity).Return(nil)
		s.mockNotifier.EXPECT().Enqueue(gomock.Any(), commands.TopicBookingCancelled, gomock.Any()).Return(nil)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(view, nil)

		_, err := s.uc.CancelBooking(context.Background(), entity.ID(), "change of plans", s.guestActor(entity.GuestID()))

		s.NoError(err)
		s.Equal(booking.StatusCancelled, entity.Status())
		s.Equal(booking.PaymentRefunded, entity.PaymentStatus())
		s.InDelta(entity.Pricing().Total, entity.Pricing().RefundAmount, 1e-9)
	})

	s.Run("success: moderate policy five days out refunds half", func() {
		checkIn := testNow.AddDate(0, 0, 5)
		entity := builder.NewBookingBuilder().
			WithStatus(booking.StatusConfirmed).
			WithDates(checkIn, checkIn.AddDate(0, 0, 3)).
			BuildDomain()
		spec := builder.NewListingBuilder().WithID(entity.ListingID()).BuildSpec()
		view := builder.NewBookingBuilder().WithID(entity.ID()).BuildView()

		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockListings.EXPECT().FindSpec(gomock.Any(), entity.ListingID()).Return(&spec, nil)
		s.mockBookings.EXPECT().Save(gomock.Any(), gomock.Any(), entity).Return(nil)
		s.mockNotifier.EXPECT().Enqueue(gomock.Any(), commands.TopicBookingCancelled, gomock.Any()).Return(nil)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(view, nil)

		_, err := s.uc.CancelBooking(context.Background(), entity.ID(), "change of plans", s.guestActor(entity.GuestID()))

		s.NoError(err)
		s.InDelta(entity.Pricing().Total/2, entity.Pricing().RefundAmount, 0.01)
	})

	s.Run("error: host may not use the guest cancellation path", func() {
		entity := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildDomain()

		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), entity.ID()).Return(entity, nil)

		_, err := s.uc.CancelBooking(context.Background(), entity.ID(), "nope", s.hostActor(entity.HostID()))

		s.ErrorIs(err, errs.ErrForbidden)
	})

	s.Run("error: completed booking cannot be cancelled", func() {
		entity := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted).BuildDomain()
		spec := builder.NewListingBuilder().WithID(entity.ListingID()).BuildSpec()

		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockListings.EXPECT().FindSpec(gomock.Any(), entity.ListingID()).Return(&spec, nil)

		_, err := s.uc.CancelBooking(context.Background(), entity.ID(), "too late", s.guestActor(entity.GuestID()))

		s.ErrorIs(err, errs.ErrInvalidTransition)
	})
}

// ================================================================================
// UpdatePaymentStatus
// ================================================================================

func (s *BookingCommandsTestSuite) TestUpdatePaymentStatus() {
	s.Run("success: paid while pending auto-confirms and notifies", func() {
		entity := builder.NewBookingBuilder().WithStatus(booking.StatusPending).BuildDomain()
		view := builder.NewBookingBuilder().WithID(entity.ID()).BuildView()
		method := "card"
		txID := "tx-123"

		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockBookings.EXPECT().Save(gomock.Any(), gomock.Any(), entity).Return(nil)
		s.mockNotifier.EXPECT().Enqueue(gomock.Any(), commands.TopicBookingConfirmed, gomock.Any()).Return(nil)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(view, nil)

		_, err := s.uc.UpdatePaymentStatus(context.Background(), entity.ID(), commands.UpdatePaymentParams{
			PaymentStatus: "paid",
			PaymentMethod: &method,
			TransactionID: &txID,
		}, s.guestActor(entity.GuestID()))

		s.NoError(err)
		s.Equal(booking.StatusConfirmed, entity.Status())
		s.Equal(booking.PaymentPaid, entity.PaymentStatus())
	})

	s.Run("success: failed payment leaves status untouched and stays quiet", func() {
		entity := builder.NewBookingBuilder().WithStatus(booking.StatusPending).BuildDomain()
		view := builder.NewBookingBuilder().WithID(entity.ID()).BuildView()

		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockBookings.EXPECT().Save(gomock.Any(), gomock.Any(), entity).Return(nil)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(view, nil)

		_, err := s.uc.UpdatePaymentStatus(context.Background(), entity.ID(), commands.UpdatePaymentParams{
			PaymentStatus: "failed",
		}, s.guestActor(entity.GuestID()))

		s.NoError(err)
		s.Equal(booking.StatusPending, entity.Status())
	})

	s.Run("success: admin may update payment", func() {
		entity := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildDomain()
		view := builder.NewBookingBuilder().WithID(entity.ID()).BuildView()

		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockBookings.EXPECT().Save(gomock.Any(), gomock.Any(), entity).Return(nil)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(view, nil)

		_, err := s.uc.UpdatePaymentStatus(context.Background(), entity.ID(), commands.UpdatePaymentParams{
			PaymentStatus: "refunded",
		}, s.adminActor())

		s.NoError(err)
	})

	s.Run("error: unknown payment status", func() {
		entity := builder.NewBookingBuilder().WithStatus(booking.StatusPending).BuildDomain()

		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), entity.ID()).Return(entity, nil)

		_, err := s.uc.UpdatePaymentStatus(context.Background(), entity.ID(), commands.UpdatePaymentParams{
			PaymentStatus: "bartered",
		}, s.guestActor(entity.GuestID()))

		s.ErrorIs(err, errs.ErrInvalidPaymentStatus)
	})

	s.Run("error: host may not touch payment", func() {
		entity := builder.NewBookingBuilder().WithStatus(booking.StatusPending).BuildDomain()

		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), entity.ID()).Return(entity, nil)

		_, err := s.uc.UpdatePaymentStatus(context.Background(), entity.ID(), commands.UpdatePaymentParams{
			PaymentStatus: "paid",
		}, s.hostActor(entity.HostID()))

		s.ErrorIs(err, errs.ErrForbidden)
	})

	s.Run("error: exclusion violation on auto-confirm maps to dates unavailable", func() {
		entity := builder.NewBookingBuilder().WithStatus(booking.StatusPending).BuildDomain()

		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockBookings.EXPECT().Save(gomock.Any(), gomock.Any(), entity).
			Return(infra.WrapRepoErr("overlap", nil, infra.KindConflict))

		_, err := s.uc.UpdatePaymentStatus(context.Background(), entity.ID(), commands.UpdatePaymentParams{
			PaymentStatus: "paid",
		}, s.guestActor(entity.GuestID()))

		s.ErrorIs(err, errs.ErrDatesUnavailable)
	})
}

// ================================================================================
// CompleteBooking
// ================================================================================

func (s *BookingCommandsTestSuite) TestCompleteBooking() {
	s.Run("success: host completes after check-out and requests review", func() {
		checkIn := testNow.AddDate(0, 0, -10)
		entity := builder.NewBookingBuilder().
			WithStatus(booking.StatusConfirmed).
			WithDates(checkIn, checkIn.AddDate(0, 0, 3)).
			BuildDomain()
		view := builder.NewBookingBuilder().WithID(entity.ID()).BuildView()

		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockBookings.EXPECT().Save(gomock.Any(), gomock.Any(), entity).Return(nil)
		s.mockNotifier.EXPECT().Enqueue(gomock.Any(), commands.TopicReviewRequest, gomock.Any()).Return(nil)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(view, nil)

		_, err := s.uc.CompleteBooking(context.Background(), entity.ID(), s.hostActor(entity.HostID()))

		s.NoError(err)
		s.Equal(booking.StatusCompleted, entity.Status())
	})

	s.Run("error: completion before check-out", func() {
		entity := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildDomain()

		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), entity.ID()).Return(entity, nil)

		_, err := s.uc.CompleteBooking(context.Background(), entity.ID(), s.hostActor(entity.HostID()))

		s.ErrorIs(err, errs.ErrInvalidTransition)
	})

	s.Run("error: guest may not complete", func() {
		entity := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildDomain()

		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), entity.ID()).Return(entity, nil)

		_, err := s.uc.CompleteBooking(context.Background(), entity.ID(), s.guestActor(entity.GuestID()))

		s.ErrorIs(err, errs.ErrForbidden)
	})
}

// ================================================================================
// AddMessage
// ================================================================================

func (s *BookingCommandsTestSuite) TestAddMessage() {
	s.Run("success: guest writes a message", func() {
		entity := builder.NewBookingBuilder().BuildDomain()
		view := builder.NewBookingBuilder().WithID(entity.ID()).BuildView()

		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockBookings.EXPECT().AddMessage(gomock.Any(), gomock.Any(), entity.ID(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, _ uuid.UUID, msg booking.Message) error {
				s.Equal("what is the door code?", msg.Text)
				s.Equal(entity.GuestID(), msg.SenderID)
				return nil
			})
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(view, nil)

		_, err := s.uc.AddMessage(context.Background(), entity.ID(), "what is the door code?", s.guestActor(entity.GuestID()))

		s.NoError(err)
	})

	s.Run("error: outsider may not write", func() {
		entity := builder.NewBookingBuilder().BuildDomain()

		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), entity.ID()).Return(entity, nil)

		_, err := s.uc.AddMessage(context.Background(), entity.ID(), "hello", s.guestActor(uuid.New()))

		s.ErrorIs(err, errs.ErrForbidden)
	})

	s.Run("error: blank message", func() {
		entity := builder.NewBookingBuilder().BuildDomain()

		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), entity.ID()).Return(entity, nil)

		_, err := s.uc.AddMessage(context.Background(), entity.ID(), "   ", s.guestActor(entity.GuestID()))

		s.ErrorIs(err, errs.ErrEmptyMessage)
	})
}
