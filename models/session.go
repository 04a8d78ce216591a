package models

// DefaultSessionDuration is the fixed appointment length in minutes.
// Duration is not user-selectable.
const DefaultSessionDuration = 30

// SessionRequest is the payload sent to create an appointment. It is a
// pure function of (Barber, User, BookingDraft), constructed immediately
// before submission and not retained afterward.
type SessionRequest struct {
	BarberID        string  `json:"barber_id"`
	UserID          string  `json:"user_id"`
	Time            int64   `json:"time"` // appointment instant, Unix seconds
	Duration        int     `json:"duration"`
	AmountPaid      float64 `json:"amount_paid"`
	MeetingLocation string  `json:"meeting_location"`
}

// Session is the stored appointment record. The barber name and photo are
// snapshotted at creation time so listings survive barber profile edits.
type Session struct {
	ID              string  `bson:"_id,omitempty" json:"_id"`
	BarberID        string  `bson:"barber_id" json:"barber_id"`
	UserID          string  `bson:"user_id" json:"user_id"`
	BarberName      string  `bson:"barber_name" json:"barber_name"`
	BarberPhoto     string  `bson:"barber_photo" json:"barber_photo"`
	CreatedTime     int64   `bson:"created_time" json:"created_time"`
	AppointmentTime int64   `bson:"appointment_time" json:"appointment_time"`
	Duration        int     `bson:"duration" json:"duration"`
	AmountPaid      float64 `bson:"amount_paid" json:"amount_paid"`
	MeetingLocation string  `bson:"meeting_location" json:"meeting_location"`
}

// SessionResponse acknowledges a created session. Callers only rely on the
// success signal; the details are informational.
type SessionResponse struct {
	SessionID      string  `json:"session_id"`
	Message        string  `json:"message"`
	SessionDetails Session `json:"session_details"`
}

// SessionList is the response shape of the per-user and per-barber
// session listing endpoints.
type SessionList struct {
	UserID       string    `json:"user_id,omitempty"`
	BarberID     string    `json:"barber_id,omitempty"`
	SessionCount int       `json:"session_count"`
	Sessions     []Session `json:"sessions"`
}
