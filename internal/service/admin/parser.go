// Package admin implements the operator booking mode: phone verification,
// salon/barber selection and a free-text command parser that turns loosely
// formatted input like "10։30-10։40 11․02 Ashot" into a booking.
package admin

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/reservon/booking-bot/internal/model"
	apperrors "github.com/reservon/booking-bot/pkg/errors"
)

// timeSep is the Armenian colon operators habitually type; ASCII colons are
// normalized to it before classification so times never collide with date
// tokens.
const timeSep = "։"

// dateSep is the canonical in-token date separator; ASCII dots are folded
// into it.
const dateSep = "․"

var (
	clockColonRe = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
	clockRe      = regexp.MustCompile(`^\d{1,2}։\d{2}$`)
	dateRe       = regexp.MustCompile(`^\d{1,2}[․.]\d{2}([․.]\d{2,4})?$`)
	numberRe     = regexp.MustCompile(`^\d+$`)
)

// durationUnits are unit words that may trail a bare duration number and are
// swallowed with it.
var durationUnits = map[string]bool{
	"минут": true,
	"րոպե":  true,
}

// ParseCommand extracts start time, end time, duration, date and a free-form
// comment from an operator command. Tokens are classified first-match-wins;
// the first occurrence of each category binds, everything unclassified joins
// the comment. Only a missing start time is an error; malformed dates and
// durations degrade to defaults.
func ParseCommand(text string, now time.Time, defaultDuration int) (*model.AdminCommand, error) {
	tokens := strings.Fields(text)
	for i, tok := range tokens {
		tokens[i] = normalizeToken(tok)
	}

	var (
		start, end    string
		duration      = -1
		date          time.Time
		dateBound     bool
		commentTokens []string
	)

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if strings.Contains(tok, "-") && strings.Contains(tok, timeSep) {
			parts := strings.SplitN(tok, "-", 2)
			a, b := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
			if clockRe.MatchString(a) && clockRe.MatchString(b) {
				start, end = a, b
				continue
			}
		}
		if clockRe.MatchString(tok) {
			if start == "" {
				start = tok
				continue
			}
			if end == "" {
				end = tok
				continue
			}
		}
		if numberRe.MatchString(tok) && start != "" && duration < 0 {
			duration, _ = strconv.Atoi(tok)
			if i+1 < len(tokens) && durationUnits[strings.ToLower(tokens[i+1])] {
				i++
			}
			continue
		}
		if dateRe.MatchString(tok) && !dateBound {
			date = parseDate(tok, now)
			dateBound = true
			continue
		}
		commentTokens = append(commentTokens, tok)
	}

	if start == "" {
		return nil, apperrors.Parse("no start time in command")
	}

	startClock := strings.ReplaceAll(start, timeSep, ":")
	endClock := strings.ReplaceAll(end, timeSep, ":")

	if duration < 0 {
		if end != "" {
			duration = spanMinutes(startClock, endClock, defaultDuration)
		} else {
			duration = defaultDuration
		}
	}
	if !dateBound {
		date = now
	}
	date = nextOccurrence(date, startClock, now)

	return &model.AdminCommand{
		StartTime: startClock,
		EndTime:   endClock,
		Duration:  duration,
		Date:      date.Format("2006-01-02"),
		Comment:   strings.TrimSpace(strings.Join(commentTokens, " ")),
	}, nil
}

// normalizeToken folds ASCII colons in time-shaped tokens (and in each side
// of a dash range) into the distinguished time separator.
func normalizeToken(tok string) string {
	if clockColonRe.MatchString(tok) {
		return strings.ReplaceAll(tok, ":", timeSep)
	}
	if strings.Contains(tok, "-") {
		parts := strings.Split(tok, "-")
		if len(parts) == 2 {
			for i, p := range parts {
				if clockColonRe.MatchString(p) {
					parts[i] = strings.ReplaceAll(p, ":", timeSep)
				}
			}
			return strings.Join(parts, "-")
		}
	}
	return tok
}

// parseDate reads "DD.MM" or "DD.MM.YY[YY]" with either dot variant; 2-digit
// years land in the 2000s and a missing year means the current one. Anything
// that does not form a real calendar date falls back to today.
func parseDate(tok string, now time.Time) time.Time {
	tok = strings.ReplaceAll(tok, ".", dateSep)
	parts := strings.Split(tok, dateSep)
	if len(parts) < 2 {
		return now
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year := now.Year()
	if len(parts) == 3 {
		y, err := strconv.Atoi(parts[2])
		if err != nil {
			return now
		}
		if y < 100 {
			y += 2000
		}
		year = y
	}
	if err1 != nil || err2 != nil || month < 1 || month > 12 || day < 1 || day > 31 {
		return now
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
	// Reject normalized overflow like 31.02 → 03.03.
	if d.Day() != day || int(d.Month()) != month {
		return now
	}
	return d
}

// spanMinutes is end minus start in minutes, treating a non-positive span as
// crossing midnight.
func spanMinutes(start, end string, fallback int) int {
	sh, sm, err1 := splitClock(start)
	eh, em, err2 := splitClock(end)
	if err1 != nil || err2 != nil {
		return fallback
	}
	diff := (eh*60 + em) - (sh*60 + sm)
	if diff <= 0 {
		diff += 24 * 60
	}
	return diff
}

// nextOccurrence advances the date by one day when date+start is already in
// the past.
func nextOccurrence(date time.Time, start string, now time.Time) time.Time {
	h, m, err := splitClock(start)
	if err != nil {
		return date
	}
	at := time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, now.Location())
	if at.Before(now) {
		return date.AddDate(0, 0, 1)
	}
	return date
}

func splitClock(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h, m, nil
}
