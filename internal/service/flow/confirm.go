package flow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/reservon/booking-bot/internal/locale"
	"github.com/reservon/booking-bot/internal/model"
)

// displayTimeSeparator replaces ":" in times shown to the user.
const displayTimeSeparator = "։"

// summaryReply renders the chosen date, time, barber and services and asks
// for final confirmation.
func (f *Service) summaryReply(s *model.Session) *Reply {
	texts := locale.Texts(s.Language)

	when := s.Date
	if t, err := time.Parse("2006-01-02", s.Date); err == nil {
		when = fmt.Sprintf("%d %s", t.Day(), locale.MonthName(s.Language, int(t.Month())))
	}
	clock := strings.ReplaceAll(s.Time, ":", displayTimeSeparator)

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s, %s", texts["summary_chosen"], when, clock)
	if s.ChosenBarber != nil {
		fmt.Fprintf(&b, "\n%s: %s", texts["summary_barber"], s.ChosenBarber.Name)
	}
	names := chosenServiceNames(s)
	if len(names) == 0 {
		fmt.Fprintf(&b, "\n%s: %s", texts["summary_services"], texts["summary_none"])
	} else {
		fmt.Fprintf(&b, "\n%s: %s", texts["summary_services"], strings.Join(names, ", "))
	}

	return reply(
		textMessage(b.String()),
		Message{
			Text: texts["final_confirmation"],
			Inline: [][]Button{{
				{Label: texts["confirm"], Data: dataConfirm},
				{Label: texts["cancel"], Data: dataCancel},
			}},
		},
	)
}

// confirmBooking handles the confirm press. A phone number is collected first
// if the session does not hold one yet; otherwise the booking goes straight
// to the server.
func (f *Service) confirmBooking(ctx context.Context, s *model.Session) *Reply {
	if s.Phone == "" {
		s.State = model.StatePhone
		texts := locale.Texts(s.Language)
		return reply(Message{
			Text: texts["ask_phone"],
			Reply: [][]Button{
				{{Label: texts["share_phone"]}},
				{{Label: texts["phone_cancel"]}},
			},
			ContactButton: true,
		})
	}
	return f.submit(ctx, s)
}

// cancelBooking backs out of the confirmation and returns to day selection;
// the barber and service choices stay intact.
func (f *Service) cancelBooking(s *model.Session) *Reply {
	texts := locale.Texts(s.Language)
	s.State = model.StateDate
	r := reply(Message{Text: texts["booking_cancelled"], RemoveReply: true})
	return r.append(f.promptDates(s))
}

// submit sends the booking to the server. A failed submission keeps the
// session at confirmation so the same booking can be retried or cancelled.
func (f *Service) submit(ctx context.Context, s *model.Session) *Reply {
	texts := locale.Texts(s.Language)

	if s.SalonID == 0 || s.Date == "" || s.Time == "" {
		f.metrics.FlowErrors.WithLabelValues("validation").Inc()
		f.log.WithUser(s.UserID).Warn("booking submitted without a complete selection",
			"salon_id", s.SalonID, "date", s.Date, "time", s.Time)
		s.State = model.StateConfirm
		return reply(textMessage(texts["booking_incomplete"]))
	}

	h, m, err := parseClock(s.Time)
	if err != nil {
		f.metrics.FlowErrors.WithLabelValues("validation").Inc()
		s.State = model.StateConfirm
		return reply(textMessage(texts["booking_incomplete"]))
	}
	start := formatClockPadded(h, m)
	duration := f.totalDuration(s)
	end, err := endTime(start, duration)
	if err != nil {
		s.State = model.StateConfirm
		return reply(textMessage(texts["booking_incomplete"]))
	}

	phone := s.Phone
	if phone != "" && !strings.HasPrefix(phone, "+") {
		phone = "+" + phone
	}

	req := model.BookingRequest{
		SalonID:              s.SalonID,
		Date:                 s.Date,
		Time:                 start,
		BookingDetails:       s.BookingDetails,
		TotalServiceDuration: duration,
		EndTime:              end,
		UserComment:          "",
		SalonMod:             model.SalonModeCategory,
		PhoneNumber:          phone,
	}

	if _, err := f.api.Book(ctx, s.SalonID, req); err != nil {
		f.log.WithUser(s.UserID).Error(err, "booking submission failed", "salon_id", s.SalonID)
		s.State = model.StateConfirm
		msg := texts["booking_failed"] + remoteMessage(err, texts)
		return reply(Message{Text: msg, RemoveReply: true})
	}

	s.State = model.StateDone
	return reply(Message{Text: texts["booking_done"], RemoveReply: true})
}

// phoneText handles typed input during the phone step. Only the cancel label
// means anything; everything else is a nudge back to the keyboard.
func (f *Service) phoneText(ctx context.Context, s *model.Session, text string) *Reply {
	texts := locale.Texts(s.Language)

	if text == texts["phone_cancel"] {
		s.State = model.StateConfirm
		r := reply(Message{Text: texts["booking_cancelled"], RemoveReply: true})
		return r.append(f.summaryReply(s))
	}
	return reply(textMessage(texts["phone_repeat"]))
}

// phoneReceived stores a shared contact and submits the booking.
func (f *Service) phoneReceived(ctx context.Context, s *model.Session, phone string) *Reply {
	texts := locale.Texts(s.Language)
	s.Phone = phone

	r := reply(
		Message{Text: texts["phone_received"] + phone, RemoveReply: true},
		textMessage(texts["booking_in_progress"]),
	)
	return r.append(f.submit(ctx, s))
}
