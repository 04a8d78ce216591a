package models

import "time"

// LocationMode is the enumerated choice of where the appointment happens.
// It is only meaningful when the barber travels; a non-traveling barber's
// dorm is always the meeting location.
type LocationMode string

const (
	LocationUnset  LocationMode = ""
	LocationBarber LocationMode = "barber"
	LocationClient LocationMode = "client"
)

// PaymentMethod selects how the client intends to pay. Card details are
// collected for display but never validated or transmitted.
type PaymentMethod string

const (
	PaymentCard  PaymentMethod = "card"
	PaymentApple PaymentMethod = "apple"
)

// CardDetails holds the collected card form fields. They take no part in
// the submission payload.
type CardDetails struct {
	Name        string `json:"name"`
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	CVC         string `json:"cvc"`
}

// BookingDraft is the ephemeral selection state of the booking form. It is
// created when the booking page mounts, mutated by user interaction, and
// discarded on submission or navigation away.
type BookingDraft struct {
	Date     *time.Time    `json:"date,omitempty"` // calendar day, no time component
	TimeSlot string        `json:"timeSlot,omitempty"`
	Location LocationMode  `json:"location"`
	Note     string        `json:"note,omitempty"`
	Payment  PaymentMethod `json:"payment"`
	Card     CardDetails   `json:"card,omitzero"`
}
