package flow

import (
	"context"
	"strconv"

	"github.com/reservon/booking-bot/internal/locale"
	"github.com/reservon/booking-bot/internal/model"
)

// promptSalons renders the salon list fetched at prompt time; the list is
// not cached beyond this render.
func (f *Service) promptSalons(ctx context.Context, s *model.Session) *Reply {
	texts := locale.Texts(s.Language)

	salons, err := f.api.Salons(ctx)
	if err != nil {
		return f.remoteErrorReply(s, err)
	}

	var rows [][]Button
	for _, salon := range salons {
		rows = append(rows, []Button{{
			Label: salon.Name,
			Data:  dataSalonPrefix + strconv.FormatInt(salon.ID, 10),
		}})
	}

	s.State = model.StateSalon
	return reply(Message{Text: texts["ask_salon"], Inline: rows})
}

// selectSalon validates the pressed id against a fresh salon list, fetches
// the salon detail snapshot and advances to barber selection.
func (f *Service) selectSalon(ctx context.Context, s *model.Session, arg string) *Reply {
	texts := locale.Texts(s.Language)

	salonID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		f.metrics.FlowErrors.WithLabelValues("validation").Inc()
		return reply(textMessage(texts["salon_not_found"]))
	}

	salons, apiErr := f.api.Salons(ctx)
	if apiErr != nil {
		return f.remoteErrorReply(s, apiErr)
	}
	var chosen *model.Salon
	for i := range salons {
		if salons[i].ID == salonID {
			chosen = &salons[i]
			break
		}
	}
	if chosen == nil {
		f.metrics.FlowErrors.WithLabelValues("validation").Inc()
		return reply(textMessage(texts["salon_not_found"]))
	}

	detail, apiErr := f.api.SalonDetail(ctx, salonID)
	if apiErr != nil {
		return f.remoteErrorReply(s, apiErr)
	}

	s.SalonID = salonID
	s.SalonName = chosen.Name
	s.SalonMode = detail.Mode
	s.BarbersMode = detail.BarbersMode
	s.AppointmentMode = detail.AppointmentMode
	if s.SalonMode == "" {
		s.SalonMode = model.SalonModeCategory
	}
	if s.AppointmentMode == "" {
		s.AppointmentMode = model.AppointmentModeManual
	}
	s.Barbers = detail.Barbers
	s.CatalogServices = detail.Services
	s.State = model.StateBarber

	confirmation := textMessage(texts["salon_chosen"] + chosen.Name)
	return reply(confirmation).append(f.promptBarbers(s))
}
