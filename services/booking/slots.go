package booking

import (
	"fmt"
	"strconv"
	"strings"
)

// AvailableTimes is the fixed set of bookable half-hour slots. The gap
// between 11:00 and 14:00 is policy, not computed availability.
var AvailableTimes = []string{
	"09:00",
	"09:30",
	"10:00",
	"10:30",
	"11:00",
	"14:00",
	"14:30",
	"15:00",
}

// IsValidTimeSlot reports whether slot is one of the bookable labels.
func IsValidTimeSlot(slot string) bool {
	for _, t := range AvailableTimes {
		if t == slot {
			return true
		}
	}
	return false
}

// parseSlot splits an "HH:MM" label into hour and minute components.
func parseSlot(slot string) (hour, minute int, err error) {
	parts := strings.Split(slot, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed time slot %q", slot)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed time slot %q: %w", slot, err)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed time slot %q: %w", slot, err)
	}
	return hour, minute, nil
}
