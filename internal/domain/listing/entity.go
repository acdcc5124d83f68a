package listing

import (
	"errors"

	"stayhub/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus = errors.New("invalid listing status")
	ErrInvalidPolicy = errors.New("invalid cancellation policy")
)

type Status string

const (
	StatusDraft       Status = "draft"
	StatusPublished   Status = "published"
	StatusUnpublished Status = "unpublished"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusUnpublished:
		return true
	default:
		return false
	}
}

// Pricing holds the host-configured rates a booking snapshots at creation.
type Pricing struct {
	BasePrice       float64
	CleaningFee     float64
	ServiceFee      float64
	WeeklyDiscount  float64
	MonthlyDiscount float64
}

// BookingRules are the host's booking policies.
type BookingRules struct {
	InstantBooking     bool
	RequiresApproval   bool
	CancellationPolicy booking.CancellationPolicy
}

// Listing is the read-only snapshot the booking core consumes. Listing
// management itself is an external collaborator; only the fields the
// booking lifecycle reads are modeled.
type Listing struct {
	id           uuid.UUID
	hostID       uuid.UUID
	title        string
	status       Status
	guests       int
	pricing      Pricing
	bookingRules BookingRules
	minimumStay  int
	maximumStay  *int
}

func NewListing(
	id, hostID uuid.UUID,
	title string,
	status Status,
	guests int,
	pricing Pricing,
	rules BookingRules,
	minimumStay int,
	maximumStay *int,
) (*Listing, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if !rules.CancellationPolicy.IsValid() {
		return nil, ErrInvalidPolicy
	}
	if minimumStay < 1 {
		minimumStay = 1
	}
	return &Listing{
		id:           id,
		hostID:       hostID,
		title:        title,
		status:       status,
		guests:       guests,
		pricing:      pricing,
		bookingRules: rules,
		minimumStay:  minimumStay,
		maximumStay:  maximumStay,
	}, nil
}

func (l *Listing) ID() uuid.UUID              { return l.id }
func (l *Listing) HostID() uuid.UUID          { return l.hostID }
func (l *Listing) Title() string              { return l.title }
func (l *Listing) Status() Status             { return l.status }
func (l *Listing) Guests() int                { return l.guests }
func (l *Listing) Pricing() Pricing           { return l.pricing }
func (l *Listing) BookingRules() BookingRules { return l.bookingRules }
func (l *Listing) MinimumStay() int           { return l.minimumStay }
func (l *Listing) MaximumStay() *int          { return l.maximumStay }

func (l *Listing) IsPublished() bool {
	return l.status == StatusPublished
}

// Spec renders the write-side snapshot the booking factory validates
// against.
func (l *Listing) Spec() booking.ListingSpec {
	return booking.ListingSpec{
		ID:                 l.id,
		HostID:             l.hostID,
		Published:          l.IsPublished(),
		Guests:             l.guests,
		BasePrice:          l.pricing.BasePrice,
		CleaningFee:        l.pricing.CleaningFee,
		ServiceFee:         l.pricing.ServiceFee,
		WeeklyDiscount:     l.pricing.WeeklyDiscount,
		MonthlyDiscount:    l.pricing.MonthlyDiscount,
		InstantBooking:     l.bookingRules.InstantBooking,
		RequiresApproval:   l.bookingRules.RequiresApproval,
		CancellationPolicy: l.bookingRules.CancellationPolicy,
		MinimumStay:        l.minimumStay,
		MaximumStay:        l.maximumStay,
	}
}
