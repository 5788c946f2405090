package admin

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// now fixed well before any parsed time so the next-occurrence rule does not
// kick in unless a test wants it to.
var parserNow = time.Date(2026, 2, 1, 8, 0, 0, 0, time.Local)

func TestParseCommandTimeRangeAndDate(t *testing.T) {
	cmd, err := ParseCommand("10:30-10:40 11.02", parserNow, 30)
	require.NoError(t, err)

	assert.Equal(t, "10:30", cmd.StartTime)
	assert.Equal(t, "10:40", cmd.EndTime)
	assert.Equal(t, 10, cmd.Duration)
	assert.Equal(t, "2026-02-11", cmd.Date)
	assert.Empty(t, cmd.Comment)
}

func TestParseCommandDurationAndComment(t *testing.T) {
	cmd, err := ParseCommand("15.02 10:30 20 Ashot 097242038", parserNow, 30)
	require.NoError(t, err)

	assert.Equal(t, "10:30", cmd.StartTime)
	assert.Empty(t, cmd.EndTime)
	assert.Equal(t, 20, cmd.Duration)
	assert.Equal(t, "2026-02-15", cmd.Date)
	assert.Equal(t, "Ashot 097242038", cmd.Comment)
}

func TestParseCommandArmenianSeparators(t *testing.T) {
	cmd, err := ParseCommand("11։40-12։00 15․02", parserNow, 30)
	require.NoError(t, err)

	assert.Equal(t, "11:40", cmd.StartTime)
	assert.Equal(t, "12:00", cmd.EndTime)
	assert.Equal(t, 20, cmd.Duration)
	assert.Equal(t, "2026-02-15", cmd.Date)
}

func TestParseCommandUnitWordIsSwallowed(t *testing.T) {
	cmd, err := ParseCommand("11:40 20 минут", parserNow, 30)
	require.NoError(t, err)
	assert.Equal(t, 20, cmd.Duration)
	assert.Empty(t, cmd.Comment)

	cmd, err = ParseCommand("11:40 25 րոպե", parserNow, 30)
	require.NoError(t, err)
	assert.Equal(t, 25, cmd.Duration)
	assert.Empty(t, cmd.Comment)
}

func TestParseCommandDefaultDuration(t *testing.T) {
	cmd, err := ParseCommand("11:40 05.03", parserNow, 30)
	require.NoError(t, err)
	assert.Equal(t, 30, cmd.Duration)
}

func TestParseCommandMidnightCrossing(t *testing.T) {
	cmd, err := ParseCommand("23:30-00:15 05.03", parserNow, 30)
	require.NoError(t, err)
	assert.Equal(t, 45, cmd.Duration)
}

func TestParseCommandTwoDigitYear(t *testing.T) {
	cmd, err := ParseCommand("10:00 15.02.27", parserNow, 30)
	require.NoError(t, err)
	assert.Equal(t, "2027-02-15", cmd.Date)
}

func TestParseCommandPastTimeAdvancesDay(t *testing.T) {
	now := time.Date(2026, 2, 10, 18, 0, 0, 0, time.Local)

	cmd, err := ParseCommand("10:00", now, 30)
	require.NoError(t, err)
	// 10:00 today is already gone; the booking means tomorrow.
	assert.Equal(t, "2026-02-11", cmd.Date)

	cmd, err = ParseCommand("19:00", now, 30)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-10", cmd.Date)
}

func TestParseCommandMalformedDateFallsBackToToday(t *testing.T) {
	cmd, err := ParseCommand("23:00 31.02", parserNow, 30)
	require.NoError(t, err)
	assert.Equal(t, parserNow.Format("2006-01-02"), cmd.Date)
}

func TestParseCommandNoStartTimeIsRejected(t *testing.T) {
	for _, input := range []string{"", "hello there", "15.02 20", "20 минут"} {
		_, err := ParseCommand(input, parserNow, 30)
		assert.Error(t, err, "expected %q to be rejected", input)
	}
}

func TestParseCommandSecondDateJoinsComment(t *testing.T) {
	cmd, err := ParseCommand("10:00 11.02 12.02", parserNow, 30)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-11", cmd.Date)
	assert.Equal(t, "12.02", cmd.Comment)
}

func TestParseCommandBareNumberBeforeStartIsComment(t *testing.T) {
	// A number can only be a duration once the start time is known.
	cmd, err := ParseCommand("20 10:00", parserNow, 30)
	require.NoError(t, err)
	assert.Equal(t, "10:00", cmd.StartTime)
	assert.Equal(t, 30, cmd.Duration)
	assert.Equal(t, "20", cmd.Comment)
}

func TestParseCommandOrderIndependence(t *testing.T) {
	a, err := ParseCommand("10:30-11:40 11.02", parserNow, 30)
	require.NoError(t, err)
	b, err := ParseCommand("11.02 10:30-11:40", parserNow, 30)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%+v", a), fmt.Sprintf("%+v", b))
}
