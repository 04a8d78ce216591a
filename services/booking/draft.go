package booking

import (
	"time"

	"barberly/models"
)

// NewDraft creates an empty booking draft for the given barber. When the
// barber does not travel the location is fixed to the barber's side; when
// they do, the choice is left unset to force an explicit selection.
func NewDraft(barber *models.Barber) *models.BookingDraft {
	draft := &models.BookingDraft{
		Location: models.LocationBarber,
		Payment:  models.PaymentCard,
	}
	if barber.WillTravel {
		draft.Location = models.LocationUnset
	}
	return draft
}

// SetDate records the selected calendar day on the draft, truncated to
// midnight in its own location.
func SetDate(draft *models.BookingDraft, day time.Time) {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	draft.Date = &midnight
}

// Submittable reports whether the draft has everything a submission
// needs: a date, a time slot, and a resolved location for traveling
// barbers.
func Submittable(barber *models.Barber, draft *models.BookingDraft) bool {
	if draft.Date == nil || draft.TimeSlot == "" {
		return false
	}
	if barber.WillTravel && draft.Location == models.LocationUnset {
		return false
	}
	return true
}
