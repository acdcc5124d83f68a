//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"
	"stayhub/internal/usecase/shared"
	"stayhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memBookingStore stands in for the database during concurrency tests.
// Within holds a mutex for the whole callback, playing the role of the
// per-listing row lock: the availability check and the insert of one
// request run as a unit.
type memBookingStore struct {
	mu     sync.Mutex
	spec   booking.ListingSpec
	booked []booking.DateRange
}

func (s *memBookingStore) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, nil)
}

func (s *memBookingStore) FindSpec(_ context.Context, id uuid.UUID) (*booking.ListingSpec, error) {
	spec := s.spec
	return &spec, nil
}

func (s *memBookingStore) LockForBooking(context.Context, db.DBTX, uuid.UUID) error { return nil }

func (s *memBookingStore) FindBlockingRanges(context.Context, db.DBTX, uuid.UUID) ([]booking.DateRange, error) {
	return append([]booking.DateRange(nil), s.booked...), nil
}

func (s *memBookingStore) Create(_ context.Context, _ db.DBTX, b *booking.Booking) error {
	s.booked = append(s.booked, b.Dates())
	return nil
}

func (s *memBookingStore) FindByIDForUpdate(context.Context, db.DBTX, uuid.UUID) (*booking.Booking, error) {
	panic("not used")
}

func (s *memBookingStore) Save(context.Context, db.DBTX, *booking.Booking) error {
	panic("not used")
}

func (s *memBookingStore) AddMessage(context.Context, db.DBTX, uuid.UUID, booking.Message) error {
	panic("not used")
}

func (s *memBookingStore) Enqueue(context.Context, string, []byte) error { return nil }

func (s *memBookingStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	return &queries.BookingView{ID: id}, nil
}

func (s *memBookingStore) FindByGuestID(context.Context, uuid.UUID) ([]*queries.BookingListItem, error) {
	panic("not used")
}

func (s *memBookingStore) FindByHostID(context.Context, uuid.UUID) ([]*queries.BookingListItem, error) {
	panic("not used")
}

func TestCreateBookingConcurrentOneWinner(t *testing.T) {
	spec := builder.NewListingBuilder().WithInstantBooking(true).BuildSpec()
	store := &memBookingStore{spec: spec}
	clk := clock.NewFakeClock(testNow)

	uc := commands.NewBookingUseCase(store, store, store, booking.NewFactory(clk), store, store, clk)

	params := commands.CreateBookingParams{
		ListingID:      spec.ID,
		CheckInDate:    testNow.AddDate(0, 0, 30),
		CheckOutDate:   testNow.AddDate(0, 0, 33),
		NumberOfGuests: 2,
	}

	const attempts = 8
	errsCh := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			actor := shared.Actor{ID: uuid.New(), Role: "guest"}
			_, err := uc.CreateBooking(context.Background(), params, actor)
			errsCh <- err
		}()
	}
	wg.Wait()
	close(errsCh)

	var wins, losses int
	for err := range errsCh {
		if err == nil {
			wins++
			continue
		}
		assert.ErrorIs(t, err, errs.ErrDatesUnavailable)
		losses++
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, losses)
	require.Len(t, store.booked, 1)
}
