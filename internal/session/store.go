// Package session owns per-user dialogue state. Sessions are process-local;
// eviction is a store policy, not something callers manage.
package session

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/reservon/booking-bot/internal/config"
	"github.com/reservon/booking-bot/internal/locale"
	"github.com/reservon/booking-bot/internal/model"
	"github.com/reservon/booking-bot/pkg/metrics"
)

// Repository is the session access contract injected into the flow and admin
// services.
type Repository interface {
	// Get returns the user's session, creating an empty one on first access.
	Get(userID int64) *model.Session
	// Put stores the session. Concurrent writes to one user's session are
	// last-write-wins; the transport serializes per-chat delivery so this
	// only matters for double-taps.
	Put(s *model.Session)
	Delete(userID int64)
	Len() int
}

// Store is a go-cache backed Repository with a configurable TTL. TTL 0 keeps
// sessions for the process lifetime.
type Store struct {
	c           *cache.Cache
	ttl         time.Duration
	defaultLang string
	metrics     *metrics.Metrics
}

func NewStore(cfg config.SessionConfig, defaultLang string, m *metrics.Metrics) *Store {
	ttl := time.Duration(cfg.TTLMinutes) * time.Minute
	cleanup := time.Duration(cfg.CleanupMinutes) * time.Minute
	if ttl == 0 {
		ttl = cache.NoExpiration
		cleanup = 0
	}
	if defaultLang == "" {
		defaultLang = locale.DefaultLanguage
	}
	return &Store{
		c:           cache.New(ttl, cleanup),
		ttl:         ttl,
		defaultLang: defaultLang,
		metrics:     m,
	}
}

func (s *Store) Get(userID int64) *model.Session {
	if v, ok := s.c.Get(key(userID)); ok {
		return v.(*model.Session)
	}
	sess := &model.Session{
		UserID:   userID,
		Language: s.defaultLang,
		State:    model.StateNone,
	}
	s.c.SetDefault(key(userID), sess)
	s.gauge()
	return sess
}

func (s *Store) Put(sess *model.Session) {
	s.c.SetDefault(key(sess.UserID), sess)
	s.gauge()
}

func (s *Store) Delete(userID int64) {
	s.c.Delete(key(userID))
	s.gauge()
}

func (s *Store) Len() int {
	return s.c.ItemCount()
}

// gauge reflects the current session count on every mutation, whichever
// dialogue created it.
func (s *Store) gauge() {
	s.metrics.ActiveSessions.Set(float64(s.c.ItemCount()))
}

func key(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
