// Package flow implements the booking dialogue state machine. Each operation
// takes the user's session, validates the event against the transition
// table, performs the step's side effects and returns a transport-neutral
// Reply. Remote and validation failures keep the session in its current
// state so the same action can be retried.
package flow

import (
	"context"
	"time"

	"github.com/reservon/booking-bot/internal/config"
	"github.com/reservon/booking-bot/internal/locale"
	"github.com/reservon/booking-bot/internal/model"
	"github.com/reservon/booking-bot/internal/session"
	apperrors "github.com/reservon/booking-bot/pkg/errors"
	"github.com/reservon/booking-bot/pkg/logger"
	"github.com/reservon/booking-bot/pkg/metrics"
)

// API is the booking/availability surface the flow depends on.
type API interface {
	Salons(ctx context.Context) ([]model.Salon, error)
	SalonDetail(ctx context.Context, salonID int64) (*model.SalonDetail, error)
	AvailableMinutes(ctx context.Context, req model.AvailabilityRequest) (*model.AvailabilityResponse, error)
	NearestSlot(ctx context.Context, req model.NearestSlotRequest) (*model.NearestSlotResponse, error)
	Book(ctx context.Context, salonID int64, req model.BookingRequest) (*model.BookingResponse, error)
}

type Service struct {
	sessions session.Repository
	api      API
	cfg      config.BookingConfig
	log      *logger.Logger
	metrics  *metrics.Metrics

	now func() time.Time
}

func NewService(sessions session.Repository, api API, cfg config.BookingConfig, log *logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		sessions: sessions,
		api:      api,
		cfg:      cfg,
		log:      log.WithComponent("flow"),
		metrics:  m,
		now:      time.Now,
	}
}

// Start handles /start: first contact begins with language selection, any
// later /start begins a fresh booking cycle at the salon list. Fields from a
// previous cycle stay in the session until the new cycle overwrites them.
func (f *Service) Start(ctx context.Context, userID int64) *Reply {
	s := f.sessions.Get(userID)
	defer f.sessions.Put(s)

	if s.State == model.StateNone {
		return f.promptLanguage(s, true)
	}
	return f.promptSalons(ctx, s)
}

// ChangeLanguage handles /language mid-flow: the current state is remembered
// so the dialogue resumes there after a language is picked.
func (f *Service) ChangeLanguage(ctx context.Context, userID int64) *Reply {
	s := f.sessions.Get(userID)
	defer f.sessions.Put(s)

	if s.State != model.StateNone && s.State != model.StateLanguage {
		s.ResumeState = s.State
	}
	return f.promptLanguage(s, false)
}

// HandleCallback dispatches an inline-button press. Events that are not
// legal in the session's current state are answered with a re-prompt and no
// state change.
func (f *Service) HandleCallback(ctx context.Context, userID int64, data string) *Reply {
	s := f.sessions.Get(userID)
	defer f.sessions.Put(s)

	ev, arg, ok := parseEvent(data)
	if !ok {
		return f.invalidOption(s)
	}
	if !allowed(ev, s.State) {
		f.log.WithUser(userID).Debug("event not legal in state", "event", string(ev), "state", string(s.State))
		return f.invalidOption(s)
	}
	f.metrics.FlowTransitions.WithLabelValues(string(s.State), string(ev)).Inc()

	switch ev {
	case evSalon:
		return f.selectSalon(ctx, s, arg)
	case evBarber:
		return f.selectBarber(s, arg)
	case evService:
		return f.toggleService(s, arg)
	case evServicesDone:
		return f.servicesDone(s)
	case evChangeBarber:
		s.State = model.StateBarber
		return f.promptBarbers(s)
	case evDay:
		return f.selectDate(ctx, s, arg)
	case evChangeServices:
		s.State = model.StateServices
		return f.promptServices(s)
	case evHour:
		return f.selectHour(ctx, s, arg)
	case evChangeDay:
		s.State = model.StateDate
		return f.promptDates(s)
	case evMinute:
		return f.selectMinute(s, arg)
	case evChangeHour:
		// Hours depend on live availability, so re-enter via the chosen date.
		return f.selectDate(ctx, s, s.Date)
	case evConfirm:
		return f.confirmBooking(ctx, s)
	case evCancel:
		return f.cancelBooking(s)
	}
	return f.invalidOption(s)
}

// HandleText dispatches free-text input; only the language and phone steps
// accept it.
func (f *Service) HandleText(ctx context.Context, userID int64, text string) *Reply {
	s := f.sessions.Get(userID)
	defer f.sessions.Put(s)

	switch s.State {
	case model.StateLanguage:
		return f.selectLanguage(ctx, s, text)
	case model.StatePhone:
		return f.phoneText(ctx, s, text)
	default:
		texts := locale.Texts(s.Language)
		return reply(textMessage(texts["start_hint"]))
	}
}

// HandleContact consumes a shared contact while the phone step is active.
func (f *Service) HandleContact(ctx context.Context, userID int64, phone string) *Reply {
	s := f.sessions.Get(userID)
	defer f.sessions.Put(s)

	if s.State != model.StatePhone {
		return f.invalidOption(s)
	}
	return f.phoneReceived(ctx, s, phone)
}

// invalidOption re-prompts without touching state.
func (f *Service) invalidOption(s *model.Session) *Reply {
	texts := locale.Texts(s.Language)
	return reply(textMessage(texts["invalid_option"]))
}

// remoteErrorReply reports a failed API call, verbatim where the server gave
// a readable message.
func (f *Service) remoteErrorReply(s *model.Session, err error) *Reply {
	f.metrics.FlowErrors.WithLabelValues("remote").Inc()
	f.log.WithUser(s.UserID).Error(err, "booking API call failed", "state", string(s.State))

	texts := locale.Texts(s.Language)
	return reply(textMessage(remoteMessage(err, texts)))
}

// remoteMessage extracts the server's own message from a remote error, or
// falls back to the generic localized one.
func remoteMessage(err error, texts map[string]string) string {
	if apperrors.IsRemote(err) {
		if app, ok := err.(*apperrors.AppError); ok && app.Err == nil && app.Message != "" {
			// The server said something concrete; relay it.
			return app.Message
		}
	}
	return texts["server_error"]
}

// totalDuration is the summed service duration, defaulting when no services
// were chosen.
func (f *Service) totalDuration(s *model.Session) int {
	if s.TotalDuration > 0 {
		return s.TotalDuration
	}
	return f.cfg.DefaultDuration
}
