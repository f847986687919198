package models

import "time"

// PaymentStatus is the lifecycle state of a booking's payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentConfirmed PaymentStatus = "confirmed"
	PaymentRejected  PaymentStatus = "rejected"
)

// HoldsSlot reports whether a booking in this status occupies a seminar slot.
func (s PaymentStatus) HoldsSlot() bool {
	return s == PaymentPending || s == PaymentConfirmed
}

// Booking represents a user's reservation of one seminar slot.
type Booking struct {
	ID              string        `bson:"id" json:"id"`
	UserID          string        `bson:"userId" json:"userId"`
	SeminarID       string        `bson:"seminarId" json:"seminarId"`
	PaymentStatus   PaymentStatus `bson:"paymentStatus" json:"paymentStatus"`
	ProofOfPayment  string        `bson:"proofOfPayment,omitempty" json:"proofOfPayment,omitempty"`
	PaymentIntentID string        `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	Amount          float64       `bson:"amount" json:"amount"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt" json:"updatedAt"`

	// Active mirrors PaymentStatus.HoldsSlot so storage can index held bookings.
	Active bool `bson:"active" json:"-"`
}

// BookingResult is returned from booking creation. ClientSecret is only set
// when an online payment intent was opened.
type BookingResult struct {
	Booking      *Booking `json:"booking"`
	ClientSecret string   `json:"clientSecret,omitempty"`
}

// BookingFilter narrows booking listings.
type BookingFilter struct {
	UserID    string
	SeminarID string
	Status    PaymentStatus
}
