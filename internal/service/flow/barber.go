package flow

import (
	"fmt"
	"strconv"

	"github.com/reservon/booking-bot/internal/locale"
	"github.com/reservon/booking-bot/internal/model"
)

// promptBarbers renders the barber snapshot. Salons with the rich
// presentation flag get one photo message per barber; the rest get a compact
// button grid.
func (f *Service) promptBarbers(s *model.Session) *Reply {
	texts := locale.Texts(s.Language)

	if s.BarbersMode == model.BarbersWithImages {
		r := &Reply{}
		for _, barber := range s.Barbers {
			r.Messages = append(r.Messages, Message{
				PhotoURL: barber.Avatar,
				Text:     fmt.Sprintf("<b>%s</b>\n%s", barber.Name, barber.Description),
				HTML:     true,
				Inline: [][]Button{{{
					Label: fmt.Sprintf("%s %s", texts["choose_barber_button"], barber.Name),
					Data:  dataBarberPrefix + strconv.FormatInt(barber.ID, 10),
				}}},
			})
		}
		if len(r.Messages) == 0 {
			return reply(textMessage(texts["barber_not_found"]))
		}
		return r
	}

	var buttons []Button
	for _, barber := range s.Barbers {
		buttons = append(buttons, Button{
			Label: barber.Name,
			Data:  dataBarberPrefix + strconv.FormatInt(barber.ID, 10),
		})
	}
	return reply(Message{Text: texts["ask_barber"], Inline: grid(buttons, 2)})
}

// selectBarber stores the full barber record and rebuilds the services
// snapshot for it. Chosen service ids that are invalid for the new barber
// are dropped, not carried over.
func (f *Service) selectBarber(s *model.Session, arg string) *Reply {
	texts := locale.Texts(s.Language)

	barberID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		f.metrics.FlowErrors.WithLabelValues("validation").Inc()
		return reply(textMessage(texts["barber_not_found"]))
	}
	barber, ok := s.BarberByID(barberID)
	if !ok {
		// Snapshot staleness: the keyboard outlived the data behind it.
		f.metrics.FlowErrors.WithLabelValues("consistency").Inc()
		f.log.WithUser(s.UserID).Warn("barber missing from snapshot", "barber_id", barberID)
		return reply(textMessage(texts["barber_not_found"])).append(f.promptBarbers(s))
	}

	chosen := *barber
	s.ChosenBarber = &chosen
	s.Services = servicesForBarber(s.SalonMode, &chosen, s.CatalogServices)
	s.ChosenServiceIDs = retainKnown(s.ChosenServiceIDs, s.Services)
	s.State = model.StateServices

	confirmation := textMessage(texts["barber_chosen"] + chosen.Name)
	return reply(confirmation).append(f.promptServices(s))
}

// servicesForBarber filters the catalog by the barber's categories in
// category mode, or takes the barber-owned list in barber mode.
func servicesForBarber(mode string, barber *model.Barber, catalog []model.Service) []model.Service {
	if mode == model.SalonModeBarber {
		return barber.BarberServices
	}
	allowed := make(map[int64]bool, len(barber.Categories))
	for _, c := range barber.Categories {
		allowed[c] = true
	}
	var out []model.Service
	for _, svc := range catalog {
		if allowed[svc.Category] {
			out = append(out, svc)
		}
	}
	return out
}

func retainKnown(chosen []int64, services []model.Service) []int64 {
	known := make(map[int64]bool, len(services))
	for _, svc := range services {
		known[svc.ID] = true
	}
	var out []int64
	for _, id := range chosen {
		if known[id] {
			out = append(out, id)
		}
	}
	return out
}
