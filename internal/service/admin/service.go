package admin

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/reservon/booking-bot/internal/config"
	"github.com/reservon/booking-bot/internal/model"
	"github.com/reservon/booking-bot/internal/service/flow"
	"github.com/reservon/booking-bot/internal/session"
	apperrors "github.com/reservon/booking-bot/pkg/errors"
	"github.com/reservon/booking-bot/pkg/logger"
	"github.com/reservon/booking-bot/pkg/metrics"
)

// Callback data for operator inline buttons.
const (
	salonDataPrefix  = "admin_salon_"
	barberDataPrefix = "admin_barber_"
	changeBarberData = "admin_change_barber"
)

// Operator-mode strings. The operator surface is Russian-only; customer-side
// localization does not apply here.
const (
	textAskPhone      = "Введите или поделитесь номером телефона для входа в админ панель:"
	textSharePhone    = "Поделиться номером телефона"
	textVerifyFailed  = "Ошибка проверки админ прав."
	textNotAdmin      = "Вы не являетесь администратором ни одного салона."
	textNoSalons      = "Нет салонов, за которые вы отвечаете."
	textChooseSalon   = "Выберите салон:"
	textSalonChosen   = "Салон выбран: "
	textSalonNotFound = "Салон не найден."
	textSalonFetch    = "Не удалось получить данные салона."
	textNoBarbers     = "В салоне нет зарегистрированных мастеров."
	textChooseBarber  = "Выберите мастера, от имени которого создать бронирование.\n\nПример команды: 14։10 15։00 20 Комментарий"
	textChangeBarber  = "Сменить мастера"
	textBarberChosen  = "Мастер выбран. Теперь отправьте время нового бронирования.\n\n" +
		"Примеры команды:\n" +
		"11։40-12։00\n" +
		"11։40 20 минут или 11։40 20\n" +
		"10։30-10։40 11․02 или 11․02 10։30-11։40\n" +
		"15․02 10։30 20\n\n" +
		"После любой даты можно добавить комментарий։ например 10։30 20 Ashot 097242038"
	textBadCommand    = "Неверный формат команды. Попробуйте ещё раз."
	textBookingDone   = "Бронирование успешно создано!"
	textNextCommand   = "Отправьте новую команду бронирования."
	textSessionEnded  = "Админ сессия завершена."
	textServerError   = "Ошибка запроса к серверу."
)

// API is the remote surface the operator mode needs.
type API interface {
	VerifyAdmin(ctx context.Context, phone string) (*model.AdminVerifyResponse, error)
	SalonDetail(ctx context.Context, salonID int64) (*model.SalonDetail, error)
	Book(ctx context.Context, salonID int64, req model.BookingRequest) (*model.BookingResponse, error)
}

// Service runs the operator booking dialogue on top of the shared session
// store. It is independent of the customer flow except for sharing the
// session record.
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
		log:      log.WithComponent("admin"),
		metrics:  m,
		now:      time.Now,
	}
}

// Active reports whether the user has an operator dialogue in progress, so
// the transport can route their input here instead of the customer flow.
func (a *Service) Active(userID int64) bool {
	s := a.sessions.Get(userID)
	return s.Admin != nil
}

// Start handles /admin. A returning operator with a verified phone skips
// straight past the steps already completed.
func (a *Service) Start(ctx context.Context, userID int64) *flow.Reply {
	s := a.sessions.Get(userID)
	defer a.sessions.Put(s)

	if s.Admin != nil && s.Admin.Phone != "" {
		if s.Admin.Salon != nil {
			return a.promptBarbers(ctx, s)
		}
		return a.verify(ctx, s, s.Admin.Phone)
	}

	s.Admin = &model.AdminSession{State: model.AdminStatePhone}
	return &flow.Reply{Messages: []flow.Message{{
		Text:          textAskPhone,
		Reply:         [][]flow.Button{{{Label: textSharePhone}}},
		ContactButton: true,
	}}}
}

// Cancel handles /cancel: the operator dialogue is discarded entirely.
func (a *Service) Cancel(userID int64) *flow.Reply {
	s := a.sessions.Get(userID)
	defer a.sessions.Put(s)

	s.Admin = nil
	return &flow.Reply{Messages: []flow.Message{{Text: textSessionEnded, RemoveReply: true}}}
}

// HandleText routes typed input by the operator dialogue's state.
func (a *Service) HandleText(ctx context.Context, userID int64, text string) *flow.Reply {
	s := a.sessions.Get(userID)
	defer a.sessions.Put(s)

	if s.Admin == nil {
		return nil
	}
	switch s.Admin.State {
	case model.AdminStatePhone:
		return a.verify(ctx, s, strings.TrimSpace(text))
	case model.AdminStateCommand:
		return a.command(ctx, s, strings.TrimSpace(text))
	default:
		return textReply(textBadCommand)
	}
}

// HandleContact consumes a shared contact during phone verification.
func (a *Service) HandleContact(ctx context.Context, userID int64, phone string) *flow.Reply {
	s := a.sessions.Get(userID)
	defer a.sessions.Put(s)

	if s.Admin == nil || s.Admin.State != model.AdminStatePhone {
		return nil
	}
	return a.verify(ctx, s, phone)
}

// HandleCallback dispatches operator inline-button presses.
func (a *Service) HandleCallback(ctx context.Context, userID int64, data string) *flow.Reply {
	s := a.sessions.Get(userID)
	defer a.sessions.Put(s)

	if s.Admin == nil {
		return nil
	}
	switch {
	case strings.HasPrefix(data, salonDataPrefix) && s.Admin.State == model.AdminStateSelectSalon:
		return a.selectSalon(ctx, s, strings.TrimPrefix(data, salonDataPrefix))
	case strings.HasPrefix(data, barberDataPrefix) && s.Admin.State == model.AdminStateBarber:
		return a.selectBarber(s, strings.TrimPrefix(data, barberDataPrefix))
	case data == changeBarberData && s.Admin.State == model.AdminStateCommand:
		return a.promptBarbers(ctx, s)
	}
	return textReply(textBadCommand)
}

// verify checks the phone against the admin roster and moves on to salon
// selection. Verification failures end the dialogue.
func (a *Service) verify(ctx context.Context, s *model.Session, phone string) *flow.Reply {
	if s.Admin == nil {
		s.Admin = &model.AdminSession{}
	}
	s.Admin.Phone = phone

	resp, err := a.api.VerifyAdmin(ctx, phone)
	if err != nil {
		a.log.WithUser(s.UserID).Error(err, "admin verification failed")
		s.Admin = nil
		return &flow.Reply{Messages: []flow.Message{{Text: textVerifyFailed, RemoveReply: true}}}
	}
	if !resp.Success {
		s.Admin = nil
		return &flow.Reply{Messages: []flow.Message{{Text: textNotAdmin, RemoveReply: true}}}
	}
	if len(resp.Salons) == 0 {
		s.Admin = nil
		return &flow.Reply{Messages: []flow.Message{{Text: textNoSalons, RemoveReply: true}}}
	}

	if len(resp.Salons) == 1 {
		salon := resp.Salons[0]
		s.Admin.Salon = &salon
		r := &flow.Reply{Messages: []flow.Message{{Text: textSalonChosen + salon.Name, RemoveReply: true}}}
		r.Messages = append(r.Messages, a.promptBarbers(ctx, s).Messages...)
		return r
	}

	s.Admin.Salons = resp.Salons
	s.Admin.State = model.AdminStateSelectSalon
	buttons := make([][]flow.Button, 0, len(resp.Salons))
	for _, salon := range resp.Salons {
		buttons = append(buttons, []flow.Button{{
			Label: salon.Name,
			Data:  salonDataPrefix + strconv.FormatInt(salon.ID, 10),
		}})
	}
	return &flow.Reply{Messages: []flow.Message{{Text: textChooseSalon, Inline: buttons, RemoveReply: true}}}
}

func (a *Service) selectSalon(ctx context.Context, s *model.Session, arg string) *flow.Reply {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return textReply(textSalonNotFound)
	}
	for i := range s.Admin.Salons {
		if s.Admin.Salons[i].ID == id {
			s.Admin.Salon = &s.Admin.Salons[i]
			r := textReply(textSalonChosen + s.Admin.Salon.Name)
			r.Messages = append(r.Messages, a.promptBarbers(ctx, s).Messages...)
			return r
		}
	}
	return textReply(textSalonNotFound)
}

// promptBarbers fetches the salon's live barber list and offers it; the
// booking is created on the chosen barber's behalf.
func (a *Service) promptBarbers(ctx context.Context, s *model.Session) *flow.Reply {
	if s.Admin.Salon == nil {
		s.Admin.State = model.AdminStatePhone
		return textReply(textSalonNotFound)
	}
	detail, err := a.api.SalonDetail(ctx, s.Admin.Salon.ID)
	if err != nil {
		a.log.WithUser(s.UserID).Error(err, "salon detail fetch failed", "salon_id", s.Admin.Salon.ID)
		s.Admin.State = model.AdminStateCommand
		return textReply(textSalonFetch)
	}
	if len(detail.Barbers) == 0 {
		s.Admin.State = model.AdminStateCommand
		return textReply(textNoBarbers)
	}

	s.Admin.State = model.AdminStateBarber
	buttons := make([][]flow.Button, 0, len(detail.Barbers))
	for _, b := range detail.Barbers {
		buttons = append(buttons, []flow.Button{{
			Label: b.Name,
			Data:  barberDataPrefix + strconv.FormatInt(b.ID, 10),
		}})
	}
	return &flow.Reply{Messages: []flow.Message{{Text: textChooseBarber, Inline: buttons}}}
}

func (a *Service) selectBarber(s *model.Session, arg string) *flow.Reply {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return textReply(textBadCommand)
	}
	s.Admin.BarberID = id
	s.Admin.State = model.AdminStateCommand
	return &flow.Reply{Messages: []flow.Message{{
		Text:   textBarberChosen,
		Inline: changeBarberMarkup(),
	}}}
}

// command parses a free-text booking command and submits it. The dialogue
// stays in command mode whatever the outcome so the operator can keep
// sending bookings.
func (a *Service) command(ctx context.Context, s *model.Session, text string) *flow.Reply {
	cmd, err := ParseCommand(text, a.now(), a.cfg.DefaultDuration)
	if err != nil {
		a.metrics.FlowErrors.WithLabelValues("parse").Inc()
		return &flow.Reply{Messages: []flow.Message{{Text: textBadCommand, Inline: changeBarberMarkup()}}}
	}
	if s.Admin.Salon == nil || s.Admin.Phone == "" {
		s.Admin = nil
		return textReply(textServerError)
	}

	var details []model.BookingDetail
	if s.Admin.BarberID != 0 {
		details = []model.BookingDetail{{
			CategoryID: 0,
			Services:   []model.ServiceEntry{},
			BarberID:   s.Admin.BarberID,
			Duration:   cmd.Duration,
		}}
	}

	phone := s.Admin.Phone
	if !strings.HasPrefix(phone, "+") {
		phone = "+" + phone
	}
	req := model.BookingRequest{
		SalonID:              s.Admin.Salon.ID,
		Date:                 cmd.Date,
		Time:                 cmd.StartTime,
		BookingDetails:       details,
		TotalServiceDuration: cmd.Duration,
		EndTime:              cmd.EndTime,
		UserComment:          cmd.Comment,
		SalonMod:             model.SalonModeCategory,
		PhoneNumber:          phone,
	}

	if _, err := a.api.Book(ctx, s.Admin.Salon.ID, req); err != nil {
		a.log.WithUser(s.UserID).Error(err, "operator booking failed", "salon_id", s.Admin.Salon.ID)
		msg := textServerError
		if app, ok := err.(*apperrors.AppError); ok && app.Err == nil && app.Message != "" {
			msg = app.Message
		}
		return &flow.Reply{Messages: []flow.Message{{Text: msg, Inline: changeBarberMarkup()}}}
	}

	return &flow.Reply{Messages: []flow.Message{
		{Text: textBookingDone, Inline: changeBarberMarkup()},
		{Text: textNextCommand, Inline: changeBarberMarkup()},
	}}
}

func changeBarberMarkup() [][]flow.Button {
	return [][]flow.Button{{{Label: textChangeBarber, Data: changeBarberData}}}
}

func textReply(text string) *flow.Reply {
	return &flow.Reply{Messages: []flow.Message{{Text: text}}}
}
