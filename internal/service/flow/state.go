package flow

import (
	"strings"

	"github.com/reservon/booking-bot/internal/model"
)

// event is a user action decoded from callback-button data.
type event string

const (
	evSalon          event = "salon"
	evBarber         event = "barber"
	evService        event = "service"
	evServicesDone   event = "services_done"
	evChangeBarber   event = "change_barber"
	evDay            event = "day"
	evChangeServices event = "change_services"
	evHour           event = "hour"
	evChangeDay      event = "change_day"
	evMinute         event = "minute"
	evChangeHour     event = "change_hour"
	evConfirm        event = "confirm"
	evCancel         event = "cancel"
)

// Callback data prefixes. These are the wire values baked into inline
// keyboards, so changing them invalidates keyboards already on screen.
const (
	dataSalonPrefix   = "salon_"
	dataBarberPrefix  = "barber_"
	dataServicePrefix = "svc_"
	dataDayPrefix     = "day_"
	dataHourPrefix    = "hour_"
	dataMinutePrefix  = "min_"
	dataServicesDone  = "services_done"
	dataChangeBarber  = "change_barber"
	dataChangeDay     = "change_day"
	dataChangeHour    = "change_hour"
	dataChangeSvc     = "change_services"
	dataConfirm       = "confirm_booking"
	dataCancel        = "cancel_booking"
)

// parseEvent decodes callback data into an event and its argument.
func parseEvent(data string) (event, string, bool) {
	switch data {
	case dataServicesDone:
		return evServicesDone, "", true
	case dataChangeBarber:
		return evChangeBarber, "", true
	case dataChangeDay:
		return evChangeDay, "", true
	case dataChangeHour:
		return evChangeHour, "", true
	case dataChangeSvc:
		return evChangeServices, "", true
	case dataConfirm:
		return evConfirm, "", true
	case dataCancel:
		return evCancel, "", true
	}
	prefixes := []struct {
		prefix string
		ev     event
	}{
		{dataSalonPrefix, evSalon},
		{dataBarberPrefix, evBarber},
		{dataServicePrefix, evService},
		{dataDayPrefix, evDay},
		{dataHourPrefix, evHour},
		{dataMinutePrefix, evMinute},
	}
	for _, p := range prefixes {
		if strings.HasPrefix(data, p.prefix) {
			return p.ev, strings.TrimPrefix(data, p.prefix), true
		}
	}
	return "", "", false
}

// transitions is the authoritative table of which events are legal in which
// states. Revision events reach back to an earlier step without touching
// unrelated fields; everything else only moves forward.
var transitions = map[event][]model.State{
	evSalon:          {model.StateSalon},
	evBarber:         {model.StateBarber},
	evService:        {model.StateServices},
	evServicesDone:   {model.StateServices},
	evChangeBarber:   {model.StateServices},
	evDay:            {model.StateDate},
	evChangeServices: {model.StateDate, model.StateHour, model.StateMinute},
	evHour:           {model.StateHour},
	evChangeDay:      {model.StateHour},
	evMinute:         {model.StateMinute},
	evChangeHour:     {model.StateMinute},
	evConfirm:        {model.StateConfirm},
	evCancel:         {model.StateConfirm},
}

func allowed(ev event, state model.State) bool {
	for _, s := range transitions[ev] {
		if s == state {
			return true
		}
	}
	return false
}
