package booking

import (
	"fmt"
	"time"

	"barberly/models"
)

// AppointmentTime combines a calendar day and a time-slot label into a
// single appointment instant, expressed in whole Unix seconds. The day's
// own time-of-day is ignored; the slot's hour and minute are applied at
// local wall clock with seconds and sub-seconds zeroed. No timezone
// normalization happens beyond the day's location.
func AppointmentTime(day time.Time, slot string) (int64, error) {
	if day.IsZero() {
		return 0, NewValidationError("no appointment date selected")
	}
	if slot == "" {
		return 0, NewValidationError("no appointment time selected")
	}
	if !IsValidTimeSlot(slot) {
		return 0, fmt.Errorf("time %q is not a bookable slot", slot)
	}
	hour, minute, err := parseSlot(slot)
	if err != nil {
		return 0, err
	}
	at := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
	return at.Unix(), nil
}

// MeetingLocation resolves where the appointment takes place. A
// non-traveling barber's dorm wins regardless of the chosen mode; a
// traveling barber requires an explicit choice.
func MeetingLocation(barber *models.Barber, user *models.User, mode models.LocationMode) (string, error) {
	if !barber.WillTravel {
		return barber.Dorm, nil
	}
	switch mode {
	case models.LocationBarber:
		return barber.Dorm, nil
	case models.LocationClient:
		return fmt.Sprintf("Your Location (%s)", user.Dorm), nil
	case models.LocationUnset:
		return "", NewValidationError("no meeting location selected")
	default:
		return "", fmt.Errorf("unknown location mode %q", mode)
	}
}

// MeetingLocationLabel is the display form of the location choice, used by
// the booking summary. Unlike MeetingLocation it is total: an unresolved
// choice renders as "Not selected".
func MeetingLocationLabel(barber *models.Barber, user *models.User, mode models.LocationMode) string {
	loc, err := MeetingLocation(barber, user, mode)
	if err != nil {
		return "Not selected"
	}
	return loc
}

// BuildSessionRequest derives the submission payload from the barber, the
// current user, and the draft. It returns a ValidationError when the date,
// time slot, or meeting location is unresolved; no partial payload is ever
// produced. The amount charged is the barber's cost verbatim and the
// duration is fixed.
func BuildSessionRequest(barber *models.Barber, user *models.User, draft *models.BookingDraft) (*models.SessionRequest, error) {
	if draft.Date == nil || draft.TimeSlot == "" {
		return nil, NewValidationError("please select a date and time for your appointment")
	}
	at, err := AppointmentTime(*draft.Date, draft.TimeSlot)
	if err != nil {
		return nil, err
	}
	location, err := MeetingLocation(barber, user, draft.Location)
	if err != nil {
		return nil, err
	}
	return &models.SessionRequest{
		BarberID:        barber.ID,
		UserID:          user.ID,
		Time:            at,
		Duration:        models.DefaultSessionDuration,
		AmountPaid:      barber.Cost,
		MeetingLocation: location,
	}, nil
}
