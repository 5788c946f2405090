package flow

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/reservon/booking-bot/internal/locale"
	"github.com/reservon/booking-bot/internal/model"
)

// promptDates offers a rolling window of days starting today.
func (f *Service) promptDates(s *model.Session) *Reply {
	texts := locale.Texts(s.Language)
	days := locale.ShortDays(s.Language)

	var buttons []Button
	now := f.now()
	for i := 0; i < f.cfg.ReserveDays; i++ {
		d := now.AddDate(0, 0, i)
		weekday := (int(d.Weekday()) + 6) % 7 // Monday-first index
		buttons = append(buttons, Button{
			Label: fmt.Sprintf("%s, %s", days[weekday], d.Format("02.01")),
			Data:  dataDayPrefix + d.Format("2006-01-02"),
		})
	}
	rows := grid(buttons, 3)
	rows = append(rows, []Button{{Label: texts["change_services"], Data: dataChangeSvc}})

	s.State = model.StateDate
	return reply(Message{Text: texts["ask_day"], Inline: rows})
}

// selectDate stores the date and narrows the candidate hours to those with
// at least one free minute. No free hours keeps the user on the date prompt.
func (f *Service) selectDate(ctx context.Context, s *model.Session, arg string) *Reply {
	texts := locale.Texts(s.Language)

	if _, err := time.Parse("2006-01-02", arg); err != nil {
		f.metrics.FlowErrors.WithLabelValues("validation").Inc()
		return f.invalidOption(s)
	}
	s.Date = arg

	hours := f.candidateHours()
	resp, err := f.api.AvailableMinutes(ctx, model.AvailabilityRequest{
		SalonID:              s.SalonID,
		Date:                 s.Date,
		Hours:                hours,
		BookingDetails:       s.BookingDetails,
		TotalServiceDuration: f.totalDuration(s),
	})
	if err != nil {
		return f.remoteErrorReply(s, err)
	}

	var buttons []Button
	for _, h := range hours {
		if len(resp.AvailableMinutes[strconv.Itoa(h)]) == 0 {
			continue
		}
		buttons = append(buttons, Button{
			Label: fmt.Sprintf("≈ %d:00", h),
			Data:  dataHourPrefix + strconv.Itoa(h),
		})
	}
	if len(buttons) == 0 {
		return reply(textMessage(texts["no_hours"]))
	}

	rows := grid(buttons, 2)
	rows = append(rows, []Button{
		{Label: texts["change_day"], Data: dataChangeDay},
		{Label: texts["change_services"], Data: dataChangeSvc},
	})

	s.State = model.StateHour
	return reply(Message{Text: texts["ask_hour"], Inline: rows})
}

// selectHour branches on the salon's appointment mode: manual renders exact
// minute buttons, auto resolves a single nearest slot and goes straight to
// confirmation.
func (f *Service) selectHour(ctx context.Context, s *model.Session, arg string) *Reply {
	hour, err := strconv.Atoi(arg)
	if err != nil || hour < 0 || hour > 23 {
		f.metrics.FlowErrors.WithLabelValues("validation").Inc()
		return f.invalidOption(s)
	}
	s.Hour = hour

	if s.AppointmentMode == model.AppointmentModeAuto {
		return f.selectHourAuto(ctx, s)
	}
	return f.selectHourManual(ctx, s)
}

func (f *Service) selectHourManual(ctx context.Context, s *model.Session) *Reply {
	texts := locale.Texts(s.Language)
	total := f.totalDuration(s)

	resp, err := f.api.AvailableMinutes(ctx, model.AvailabilityRequest{
		SalonID:              s.SalonID,
		Date:                 s.Date,
		Hours:                []int{s.Hour},
		BookingDetails:       s.BookingDetails,
		TotalServiceDuration: total,
	})
	if err != nil {
		return f.remoteErrorReply(s, err)
	}

	minutes := resp.AvailableMinutes[strconv.Itoa(s.Hour)]
	if len(minutes) == 0 {
		return reply(textMessage(texts["no_minutes"]))
	}

	var buttons []Button
	for _, m := range minutes {
		endH, endM := addClock(s.Hour, m, total)
		buttons = append(buttons, Button{
			Label: fmt.Sprintf("%s-%s", formatClock(s.Hour, m), formatClock(endH, endM)),
			Data:  dataMinutePrefix + fmt.Sprintf("%d:%02d", s.Hour, m),
		})
	}
	rows := grid(buttons, 2)
	rows = append(rows, []Button{
		{Label: texts["change_hour"], Data: dataChangeHour},
		{Label: texts["change_services"], Data: dataChangeSvc},
	})

	s.State = model.StateMinute
	return reply(Message{Text: texts["ask_minutes"], Inline: rows})
}

// selectHourAuto asks the nearest-slot endpoint with the chosen hour as a
// hint. The resolved time is treated as already selected and skips the
// minute step.
func (f *Service) selectHourAuto(ctx context.Context, s *model.Session) *Reply {
	texts := locale.Texts(s.Language)

	resp, err := f.api.NearestSlot(ctx, model.NearestSlotRequest{
		SalonID:              s.SalonID,
		Date:                 s.Date,
		ChosenHour:           s.Hour,
		BookingDetails:       s.BookingDetails,
		TotalServiceDuration: f.totalDuration(s),
	})
	if err != nil {
		return f.remoteErrorReply(s, err)
	}

	resolved, ok := resolveNearest(resp.NearestBefore, resp.NearestAfter)
	if !ok {
		return reply(textMessage(texts["no_slots"]))
	}

	s.Time = resolved
	s.State = model.StateConfirm
	return f.summaryReply(s)
}

func (f *Service) selectMinute(s *model.Session, arg string) *Reply {
	if _, _, err := parseClock(arg); err != nil {
		f.metrics.FlowErrors.WithLabelValues("validation").Inc()
		return f.invalidOption(s)
	}
	s.Time = arg
	s.State = model.StateConfirm
	return f.summaryReply(s)
}

// candidateHours is the fixed range availability is probed over.
func (f *Service) candidateHours() []int {
	var hours []int
	for h := f.cfg.FirstHour; h <= f.cfg.LastHour; h++ {
		hours = append(hours, h)
	}
	return hours
}
