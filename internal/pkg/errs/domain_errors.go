package errs

import "errors"

// Sentinel errors shared across usecase layers. Handlers translate these
// into HTTP statuses; nothing below this layer retries them.
var (
	// Lookup errors
	ErrListingNotFound = errors.New("listing not found")
	ErrBookingNotFound = errors.New("booking not found")

	// Authorization errors
	ErrForbidden = errors.New("actor is not permitted to perform this operation")

	// State machine errors
	ErrInvalidTransition = errors.New("transition not permitted from current booking status")

	// Validation errors
	ErrListingNotPublished  = errors.New("listing is not published")
	ErrInvalidGuestCount    = errors.New("number of guests must be at least one")
	ErrTooManyGuests        = errors.New("guest count exceeds listing capacity")
	ErrInvalidDateRange     = errors.New("check-in date must be before check-out date")
	ErrCheckInNotFuture     = errors.New("check-in date must be in the future")
	ErrBelowMinimumStay     = errors.New("stay is shorter than the listing minimum")
	ErrAboveMaximumStay     = errors.New("stay is longer than the listing maximum")
	ErrEmptyMessage         = errors.New("message text must not be empty")
	ErrInvalidPaymentStatus = errors.New("unknown payment status value")

	// Availability errors
	ErrDatesUnavailable = errors.New("requested dates conflict with an existing booking")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
