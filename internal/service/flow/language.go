package flow

import (
	"context"

	"github.com/reservon/booking-bot/internal/locale"
	"github.com/reservon/booking-bot/internal/model"
)

var languageKeyboard = [][]Button{{
	{Label: "Русский"},
	{Label: "Հայերեն"},
	{Label: "English"},
}}

func (f *Service) promptLanguage(s *model.Session, withWelcome bool) *Reply {
	texts := locale.Texts(s.Language)
	s.State = model.StateLanguage

	msg := Message{Text: texts["choose_language"], Reply: languageKeyboard}
	if withWelcome {
		return reply(textMessage(texts["welcome"]), msg)
	}
	return reply(msg)
}

// selectLanguage matches the pressed label against the fixed language set.
// A mismatch re-prompts in the user's current language; a match resumes the
// remembered mid-flow state, or starts at the salon list.
func (f *Service) selectLanguage(ctx context.Context, s *model.Session, label string) *Reply {
	code, ok := locale.LanguageCode(label)
	if !ok {
		f.metrics.FlowErrors.WithLabelValues("validation").Inc()
		texts := locale.Texts(s.Language)
		return reply(Message{Text: texts["select_language_error"], Reply: languageKeyboard})
	}

	s.Language = code
	texts := locale.Texts(code)
	confirmation := Message{Text: texts["language_set"], RemoveReply: true}

	resume := s.ResumeState
	s.ResumeState = ""
	return reply(confirmation).append(f.resumeAt(ctx, s, resume))
}

// resumeAt re-enters the prompt of the state the user was in before changing
// language. Hour and minute prompts depend on a live availability query for
// an already-picked value, so those resume from the date prompt instead.
func (f *Service) resumeAt(ctx context.Context, s *model.Session, state model.State) *Reply {
	switch state {
	case model.StateBarber:
		s.State = model.StateBarber
		return f.promptBarbers(s)
	case model.StateServices:
		s.State = model.StateServices
		return f.promptServices(s)
	case model.StateDate, model.StateHour, model.StateMinute:
		s.State = model.StateDate
		return f.promptDates(s)
	case model.StateConfirm:
		s.State = model.StateConfirm
		return f.summaryReply(s)
	default:
		return f.promptSalons(ctx, s)
	}
}
