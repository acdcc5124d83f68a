package response

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID                 uuid.UUID         `json:"id"`
	ListingID          uuid.UUID         `json:"listingId"`
	ListingTitle       string            `json:"listingTitle"`
	GuestID            uuid.UUID         `json:"guestId"`
	HostID             uuid.UUID         `json:"hostId"`
	CheckInDate        time.Time         `json:"checkInDate"`
	CheckOutDate       time.Time         `json:"checkOutDate"`
	NumberOfNights     int               `json:"numberOfNights"`
	NumberOfGuests     int               `json:"numberOfGuests"`
	Pricing            PricingResponse   `json:"pricing"`
	Status             string            `json:"status"`
	PaymentStatus      string            `json:"paymentStatus"`
	PaymentMethod      *string           `json:"paymentMethod,omitempty"`
	TransactionID      *string           `json:"transactionId,omitempty"`
	SpecialRequests    *string           `json:"specialRequests,omitempty"`
	RequiresApproval   bool              `json:"requiresApproval"`
	CancellationReason *string           `json:"cancellationReason,omitempty"`
	CancellationDate   *time.Time        `json:"cancellationDate,omitempty"`
	ApprovedAt         *time.Time        `json:"approvedAt,omitempty"`
	Messages           []MessageResponse `json:"messages,omitempty"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
}

type PricingResponse struct {
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

type MessageResponse struct {
	SenderID  uuid.UUID `json:"senderId"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type BookingListResponse struct {
	ID           uuid.UUID `json:"id"`
	ListingID    uuid.UUID `json:"listingId"`
	ListingTitle string    `json:"listingTitle"`
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
	Status       string    `json:"status"`
	Total        float64   `json:"total"`
	CreatedAt    time.Time `json:"createdAt"`
}

type AvailabilityResponse struct {
	ListingID    uuid.UUID `json:"listingId"`
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
	Available    bool      `json:"available"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	messages := make([]MessageResponse, len(rm.Messages))
	for i, m := range rm.Messages {
		messages[i] = MessageResponse{
			SenderID:  m.SenderID,
			Text:      m.Text,
			Timestamp: m.Timestamp,
		}
	}

	return &BookingResponse{
		ID:             rm.ID,
		ListingID:      rm.ListingID,
		ListingTitle:   rm.ListingTitle,
		GuestID:        rm.GuestID,
		HostID:         rm.HostID,
		CheckInDate:    rm.CheckInDate,
		CheckOutDate:   rm.CheckOutDate,
		NumberOfNights: rm.NumberOfNights,
		NumberOfGuests: rm.NumberOfGuests,
		Pricing: PricingResponse{
			NightlyRate:  rm.Pricing.NightlyRate,
			Subtotal:     rm.Pricing.Subtotal,
			CleaningFee:  rm.Pricing.CleaningFee,
			ServiceFee:   rm.Pricing.ServiceFee,
			Discount:     rm.Pricing.Discount,
			Taxes:        rm.Pricing.Taxes,
			Total:        rm.Pricing.Total,
			RefundAmount: rm.Pricing.RefundAmount,
			Currency:     rm.Pricing.Currency,
		},
		Status:             rm.Status,
		PaymentStatus:      rm.PaymentStatus,
		PaymentMethod:      rm.PaymentMethod,
		TransactionID:      rm.TransactionID,
		SpecialRequests:    rm.SpecialRequests,
		RequiresApproval:   rm.RequiresApproval,
		CancellationReason: rm.CancellationReason,
		CancellationDate:   rm.CancellationDate,
		ApprovedAt:         rm.ApprovedAt,
		Messages:           messages,
		CreatedAt:          rm.CreatedAt,
		UpdatedAt:          rm.UpdatedAt,
	}
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:           rm.ID,
		ListingID:    rm.ListingID,
		ListingTitle: rm.ListingTitle,
		CheckInDate:  rm.CheckInDate,
		CheckOutDate: rm.CheckOutDate,
		Status:       rm.Status,
		Total:        rm.Total,
		CreatedAt:    rm.CreatedAt,
	}
}

func FromAvailabilityResult(rm *queries.AvailabilityResult) *AvailabilityResponse {
	return &AvailabilityResponse{
		ListingID:    rm.ListingID,
		CheckInDate:  rm.CheckIn,
		CheckOutDate: rm.CheckOut,
		Available:    rm.Available,
	}
}
