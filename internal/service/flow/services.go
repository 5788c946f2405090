package flow

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reservon/booking-bot/internal/locale"
	"github.com/reservon/booking-bot/internal/model"
)

func (f *Service) promptServices(s *model.Session) *Reply {
	texts := locale.Texts(s.Language)
	return reply(Message{Text: texts["ask_services"], Inline: f.servicesKeyboard(s)})
}

// servicesKeyboard renders a toggle grid with check marks on chosen services
// and a fixed last row of done / change-barber.
func (f *Service) servicesKeyboard(s *model.Session) [][]Button {
	texts := locale.Texts(s.Language)

	var buttons []Button
	for _, svc := range s.Services {
		label := svc.Name
		if s.HasService(svc.ID) {
			label = "✅ " + label
		}
		buttons = append(buttons, Button{
			Label: label,
			Data:  dataServicePrefix + strconv.FormatInt(svc.ID, 10),
		})
	}
	rows := grid(buttons, 2)
	rows = append(rows, []Button{
		{Label: texts["done"], Data: dataServicesDone},
		{Label: texts["change_barber"], Data: dataChangeBarber},
	})
	return rows
}

// toggleService flips a service in the chosen set and re-renders the
// keyboard in place.
func (f *Service) toggleService(s *model.Session, arg string) *Reply {
	serviceID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		f.metrics.FlowErrors.WithLabelValues("validation").Inc()
		return f.invalidOption(s)
	}
	if _, ok := s.ServiceByID(serviceID); !ok {
		f.metrics.FlowErrors.WithLabelValues("consistency").Inc()
		return f.invalidOption(s)
	}

	s.ToggleService(serviceID)
	return reply(Message{EditMarkup: true, Inline: f.servicesKeyboard(s)})
}

// servicesDone assembles the booking detail from the chosen set and advances
// to date selection. Choosing nothing is legal and falls back to the default
// duration. The detail carries a single category id; when chosen services
// span categories the last one iterated wins, which callers must treat as a
// product constraint rather than silently regroup.
func (f *Service) servicesDone(s *model.Session) *Reply {
	texts := locale.Texts(s.Language)

	var confirmation Message
	if len(s.ChosenServiceIDs) > 0 {
		var (
			categoryID int64
			entries    []model.ServiceEntry
			names      []string
			total      int
			categories = map[int64]bool{}
		)
		for _, svc := range s.Services {
			if !s.HasService(svc.ID) {
				continue
			}
			categoryID = svc.Category
			categories[svc.Category] = true
			names = append(names, svc.Name)
			minutes := model.ParseDurationMinutes(svc.Duration)
			total += minutes
			entries = append(entries, model.ServiceEntry{
				ServiceID:  svc.ID,
				Duration:   minutes,
				CategoryID: svc.Category,
			})
		}
		if len(categories) > 1 {
			f.log.WithUser(s.UserID).Warn("chosen services span categories, last one wins",
				"categories", len(categories), "category_id", categoryID)
		}

		s.BookingDetails = []model.BookingDetail{{
			CategoryID: categoryID,
			Services:   entries,
			BarberID:   s.ChosenBarber.ID,
			Duration:   total,
		}}
		s.TotalDuration = total
		confirmation = textMessage(fmt.Sprintf("%s%s (%s ~%d %s)",
			texts["services_chosen"], strings.Join(names, ", "),
			texts["total_duration"], total, texts["minutes_suffix"]))
	} else {
		s.BookingDetails = nil
		s.TotalDuration = f.cfg.DefaultDuration
		confirmation = textMessage(texts["no_services_chosen"])
	}

	s.State = model.StateDate
	return reply(confirmation).append(f.promptDates(s))
}

// chosenServiceNames lists chosen service names in snapshot order.
func chosenServiceNames(s *model.Session) []string {
	var names []string
	for _, svc := range s.Services {
		if s.HasService(svc.ID) {
			names = append(names, svc.Name)
		}
	}
	return names
}
