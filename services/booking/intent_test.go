package booking

import (
	"testing"
	"time"

	"barberly/models"

	"github.com/stretchr/testify/assert"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.Local)
}

func TestAppointmentTime(t *testing.T) {
	t.Run("combines day and slot at local wall clock", func(t *testing.T) {
		got, err := AppointmentTime(day(2024, time.June, 1), "14:00")
		assert.NoError(t, err)

		want := time.Date(2024, time.June, 1, 14, 0, 0, 0, time.Local).Unix()
		assert.Equal(t, want, got)
	})

	t.Run("ignores the day's own time of day", func(t *testing.T) {
		noon := time.Date(2024, time.June, 1, 12, 37, 55, 123, time.Local)
		fromNoon, err := AppointmentTime(noon, "09:30")
		assert.NoError(t, err)

		fromMidnight, err := AppointmentTime(day(2024, time.June, 1), "09:30")
		assert.NoError(t, err)
		assert.Equal(t, fromMidnight, fromNoon)
	})

	t.Run("zeroes seconds and sub-seconds", func(t *testing.T) {
		got, err := AppointmentTime(day(2024, time.June, 1), "10:30")
		assert.NoError(t, err)

		at := time.Unix(got, 0)
		assert.Equal(t, 0, at.Second())
		assert.Equal(t, 0, at.Nanosecond())
	})

	t.Run("deterministic for the same inputs", func(t *testing.T) {
		first, err := AppointmentTime(day(2025, time.March, 10), "11:00")
		assert.NoError(t, err)
		second, err := AppointmentTime(day(2025, time.March, 10), "11:00")
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("later slots on the same day yield later instants", func(t *testing.T) {
		d := day(2024, time.June, 1)
		var prev int64
		for i, slot := range AvailableTimes {
			got, err := AppointmentTime(d, slot)
			assert.NoError(t, err)
			if i > 0 {
				assert.Greater(t, got, prev, "slot %s should be after %s", slot, AvailableTimes[i-1])
			}
			prev = got
		}
	})

	t.Run("later days yield later instants slot for slot", func(t *testing.T) {
		early, err := AppointmentTime(day(2024, time.June, 1), "09:00")
		assert.NoError(t, err)
		late, err := AppointmentTime(day(2024, time.June, 2), "09:00")
		assert.NoError(t, err)
		assert.Greater(t, late, early)
	})

	t.Run("rejects a zero day", func(t *testing.T) {
		_, err := AppointmentTime(time.Time{}, "09:00")
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("rejects an empty slot", func(t *testing.T) {
		_, err := AppointmentTime(day(2024, time.June, 1), "")
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("rejects a label outside the slot table", func(t *testing.T) {
		_, err := AppointmentTime(day(2024, time.June, 1), "12:00")
		assert.Error(t, err)
	})
}

func TestMeetingLocation(t *testing.T) {
	stationary := &models.Barber{ID: "b1", Name: "Sam", Dorm: "Wilson", WillTravel: false}
	traveling := &models.Barber{ID: "b2", Name: "Alex", Dorm: "Wilson", WillTravel: true}
	user := &models.User{ID: "u1", Dorm: "Brody"}

	t.Run("non-traveling barber always meets at own dorm", func(t *testing.T) {
		for _, mode := range []models.LocationMode{
			models.LocationUnset,
			models.LocationBarber,
			models.LocationClient,
		} {
			loc, err := MeetingLocation(stationary, user, mode)
			assert.NoError(t, err)
			assert.Equal(t, "Wilson", loc)
		}
	})

	t.Run("traveling barber at barber side", func(t *testing.T) {
		loc, err := MeetingLocation(traveling, user, models.LocationBarber)
		assert.NoError(t, err)
		assert.Equal(t, "Wilson", loc)
	})

	t.Run("traveling barber at client side names the user's dorm", func(t *testing.T) {
		b := &models.Barber{ID: "b3", Dorm: "McDonnel", WillTravel: true}
		loc, err := MeetingLocation(b, user, models.LocationClient)
		assert.NoError(t, err)
		assert.Equal(t, "Your Location (Brody)", loc)
	})

	t.Run("traveling barber with no choice is an error", func(t *testing.T) {
		_, err := MeetingLocation(traveling, user, models.LocationUnset)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("label falls back to Not selected", func(t *testing.T) {
		assert.Equal(t, "Not selected", MeetingLocationLabel(traveling, user, models.LocationUnset))
		assert.Equal(t, "Wilson", MeetingLocationLabel(stationary, user, models.LocationUnset))
	})
}

func TestBuildSessionRequest(t *testing.T) {
	barber := &models.Barber{ID: "b1", Name: "Sam", Dorm: "Wilson", WillTravel: false, Cost: 25}
	user := &models.User{ID: "u1", Dorm: "Brody"}

	t.Run("derives the full payload", func(t *testing.T) {
		draft := NewDraft(barber)
		SetDate(draft, day(2024, time.September, 10))
		draft.TimeSlot = "10:30"

		req, err := BuildSessionRequest(barber, user, draft)
		assert.NoError(t, err)

		want := time.Date(2024, time.September, 10, 10, 30, 0, 0, time.Local).Unix()
		assert.Equal(t, "b1", req.BarberID)
		assert.Equal(t, "u1", req.UserID)
		assert.Equal(t, want, req.Time)
		assert.Equal(t, models.DefaultSessionDuration, req.Duration)
		assert.Equal(t, 25.0, req.AmountPaid)
		assert.Equal(t, "Wilson", req.MeetingLocation)
	})

	t.Run("missing date blocks the build", func(t *testing.T) {
		draft := NewDraft(barber)
		draft.TimeSlot = "14:00"

		_, err := BuildSessionRequest(barber, user, draft)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("missing time slot blocks the build", func(t *testing.T) {
		draft := NewDraft(barber)
		SetDate(draft, day(2024, time.June, 1))

		_, err := BuildSessionRequest(barber, user, draft)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("unresolved location for traveling barber blocks the build", func(t *testing.T) {
		traveling := &models.Barber{ID: "b2", Dorm: "Wilson", WillTravel: true, Cost: 30}
		draft := NewDraft(traveling)
		SetDate(draft, day(2024, time.June, 1))
		draft.TimeSlot = "09:00"

		_, err := BuildSessionRequest(traveling, user, draft)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestDraft(t *testing.T) {
	t.Run("stationary barber defaults to barber side", func(t *testing.T) {
		draft := NewDraft(&models.Barber{WillTravel: false})
		assert.Equal(t, models.LocationBarber, draft.Location)
		assert.Equal(t, models.PaymentCard, draft.Payment)
	})

	t.Run("traveling barber starts with no location", func(t *testing.T) {
		draft := NewDraft(&models.Barber{WillTravel: true})
		assert.Equal(t, models.LocationUnset, draft.Location)
	})

	t.Run("SetDate truncates to midnight", func(t *testing.T) {
		draft := NewDraft(&models.Barber{})
		SetDate(draft, time.Date(2024, time.June, 1, 16, 45, 12, 99, time.Local))

		assert.Equal(t, day(2024, time.June, 1), *draft.Date)
	})

	t.Run("Submittable requires date, slot, and a resolved location", func(t *testing.T) {
		traveling := &models.Barber{WillTravel: true}
		draft := NewDraft(traveling)
		assert.False(t, Submittable(traveling, draft))

		SetDate(draft, day(2024, time.June, 1))
		assert.False(t, Submittable(traveling, draft))

		draft.TimeSlot = "10:00"
		assert.False(t, Submittable(traveling, draft))

		draft.Location = models.LocationClient
		assert.True(t, Submittable(traveling, draft))
	})
}
