package booking

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

const hoursPerNight = 24

// DateRange is a half-open stay interval [CheckIn, CheckOut). A checkout
// on day N and a check-in on day N for another guest do not conflict.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	if !checkIn.Before(checkOut) {
		return DateRange{}, errors.New("check-in must be before check-out")
	}
	return DateRange{CheckIn: checkIn, CheckOut: checkOut}, nil
}

func (r DateRange) Overlaps(other DateRange) bool {
	return r.CheckIn.Before(other.CheckOut) && r.CheckOut.After(other.CheckIn)
}

// Nights is the stay length, rounded up for ranges that are not whole days.
func (r DateRange) Nights() int {
	return int(math.Ceil(r.CheckOut.Sub(r.CheckIn).Hours() / hoursPerNight))
}

// PriceBreakdown is the itemized cost of a stay. Only Total is rounded;
// intermediate fields stay unrounded so the breakdown always re-sums.
type PriceBreakdown struct {
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

// Refund is the outcome of applying a cancellation policy.
type Refund struct {
	Percentage float64
	Amount     float64
}

// Message is one entry in a booking's append-only communication log.
type Message struct {
	SenderID  uuid.UUID
	Text      string
	Timestamp time.Time
}
