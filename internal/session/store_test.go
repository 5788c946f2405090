package session

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservon/booking-bot/internal/config"
	"github.com/reservon/booking-bot/internal/locale"
	"github.com/reservon/booking-bot/internal/model"
	"github.com/reservon/booking-bot/pkg/metrics"
)

// One registry-backed metrics instance for the whole package; promauto
// panics on duplicate registration.
var testMetrics = metrics.NewMetrics("session_test")

func TestGetCreatesSessionLazily(t *testing.T) {
	store := NewStore(config.SessionConfig{}, locale.LangHY, testMetrics)

	assert.Equal(t, 0, store.Len())

	s := store.Get(42)
	require.NotNil(t, s)
	assert.Equal(t, int64(42), s.UserID)
	assert.Equal(t, locale.LangHY, s.Language)
	assert.Equal(t, model.StateNone, s.State)
	assert.Equal(t, 1, store.Len())
}

func TestGetReturnsSameSession(t *testing.T) {
	store := NewStore(config.SessionConfig{}, "", testMetrics)

	s := store.Get(7)
	s.State = model.StateDate
	s.Date = "2026-03-10"
	store.Put(s)

	again := store.Get(7)
	assert.Same(t, s, again)
	assert.Equal(t, "2026-03-10", again.Date)
}

func TestDefaultLanguageFallback(t *testing.T) {
	store := NewStore(config.SessionConfig{}, "", testMetrics)
	assert.Equal(t, locale.DefaultLanguage, store.Get(1).Language)
}

func TestDelete(t *testing.T) {
	store := NewStore(config.SessionConfig{}, locale.LangRU, testMetrics)

	s := store.Get(9)
	s.State = model.StateConfirm
	store.Put(s)
	store.Delete(9)

	fresh := store.Get(9)
	assert.Equal(t, model.StateNone, fresh.State)
}

func TestSessionsAreIsolatedPerUser(t *testing.T) {
	store := NewStore(config.SessionConfig{TTLMinutes: 30, CleanupMinutes: 10}, locale.LangRU, testMetrics)

	a := store.Get(1)
	b := store.Get(2)
	a.SalonID = 5

	assert.Zero(t, b.SalonID)
	assert.Equal(t, 2, store.Len())
}

func TestActiveSessionsGaugeTracksEveryMutation(t *testing.T) {
	store := NewStore(config.SessionConfig{}, locale.LangRU, testMetrics)

	store.Get(100)
	assert.Equal(t, 1.0, testutil.ToFloat64(testMetrics.ActiveSessions))

	store.Get(101)
	assert.Equal(t, 2.0, testutil.ToFloat64(testMetrics.ActiveSessions))

	// A Put of an existing session changes nothing.
	store.Put(store.Get(100))
	assert.Equal(t, 2.0, testutil.ToFloat64(testMetrics.ActiveSessions))

	store.Delete(100)
	assert.Equal(t, 1.0, testutil.ToFloat64(testMetrics.ActiveSessions))
}
