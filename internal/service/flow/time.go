package flow

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/reservon/booking-bot/pkg/errors"
)

// parseClock splits "H:MM" / "HH:MM" into hour and minute.
func parseClock(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, apperrors.Validation(fmt.Sprintf("invalid time %q", s))
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, apperrors.Validation(fmt.Sprintf("invalid hour in %q", s))
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, apperrors.Validation(fmt.Sprintf("invalid minute in %q", s))
	}
	return h, m, nil
}

// addClock advances a wall-clock time by a number of minutes, wrapping at
// midnight. The date is not tracked.
func addClock(hour, minute, durationMinutes int) (int, int) {
	total := hour*60 + minute + durationMinutes
	return (total / 60) % 24, total % 60
}

// formatClock renders "H:MM" as button labels do.
func formatClock(hour, minute int) string {
	return fmt.Sprintf("%d:%02d", hour, minute)
}

// formatClockPadded renders "HH:MM" as the booking payload expects.
func formatClockPadded(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// endTime computes the booking end from a "HH:MM" start and a duration.
func endTime(start string, durationMinutes int) (string, error) {
	h, m, err := parseClock(start)
	if err != nil {
		return "", err
	}
	eh, em := addClock(h, m, durationMinutes)
	return formatClockPadded(eh, em), nil
}

// nearestSlotGapMinutes is the candidate gap below which the later nearest
// slot is preferred over the earlier one.
const nearestSlotGapMinutes = 30

// resolveNearest picks one concrete time from the nearest-before/after
// candidates. Equal candidates or a gap under 30 minutes prefer the
// chronologically later one; otherwise "before" wins when present. Returns
// ok=false when neither candidate exists.
func resolveNearest(before, after *string) (string, bool) {
	switch {
	case before == nil && after == nil:
		return "", false
	case before == nil:
		return *after, true
	case after == nil:
		return *before, true
	}

	bh, bm, errB := parseClock(*before)
	ah, am, errA := parseClock(*after)
	if errB != nil || errA != nil {
		if errB == nil {
			return *before, true
		}
		if errA == nil {
			return *after, true
		}
		return "", false
	}

	b := bh*60 + bm
	a := ah*60 + am
	later := *after
	gap := a - b
	if gap < 0 {
		gap = -gap
		later = *before
	}
	if gap < nearestSlotGapMinutes {
		return later, true
	}
	return *before, true
}
