package request

import (
	"strings"
	"time"

	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ListingID       uuid.UUID `json:"listingId" binding:"required"`
	CheckInDate     string    `json:"checkInDate" binding:"required"`
	CheckOutDate    string    `json:"checkOutDate" binding:"required"`
	NumberOfGuests  int       `json:"numberOfGuests" binding:"required,min=1"`
	SpecialRequests *string   `json:"specialRequests,omitempty"`
}

// ToParams parses the date strings. Dates are calendar days interpreted
// as midnight UTC; the check-out day itself stays bookable.
func (r CreateBookingRequest) ToParams() (commands.CreateBookingParams, error) {
	checkIn, err := time.Parse(time.DateOnly, r.CheckInDate)
	if err != nil {
		return commands.CreateBookingParams{}, err
	}
	checkOut, err := time.Parse(time.DateOnly, r.CheckOutDate)
	if err != nil {
		return commands.CreateBookingParams{}, err
	}

	return commands.CreateBookingParams{
		ListingID:       r.ListingID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  r.NumberOfGuests,
		SpecialRequests: r.GetSpecialRequests(),
	}, nil
}

func (r CreateBookingRequest) GetSpecialRequests() *string {
	if r.SpecialRequests == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.SpecialRequests)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type SetStatusRequest struct {
	Status string  `json:"status" binding:"required,oneof=confirmed cancelled disputed"`
	Reason *string `json:"reason,omitempty"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type UpdatePaymentRequest struct {
	PaymentStatus string  `json:"paymentStatus" binding:"required,oneof=pending paid partial refunded failed"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`
	TransactionID *string `json:"transactionId,omitempty"`
}

type AddMessageRequest struct {
	Text string `json:"text" binding:"required"`
}
