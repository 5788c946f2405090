package telegram

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/reservon/booking-bot/internal/service/flow"
)

// render sends a reply that did not originate from an inline-button press,
// so there is no message whose keyboard could be edited in place.
func (h *Handler) render(ctx context.Context, b *bot.Bot, chatID int64, r *flow.Reply) {
	h.renderAt(ctx, b, chatID, 0, r)
}

// renderAt sends every message of a reply. messageID is the inline-keyboard
// message the user pressed, used for in-place markup edits; zero when the
// reply was not triggered by a button.
func (h *Handler) renderAt(ctx context.Context, b *bot.Bot, chatID int64, messageID int, r *flow.Reply) {
	if r == nil {
		return
	}
	for _, m := range r.Messages {
		if m.EditMarkup && messageID != 0 {
			if _, err := b.EditMessageReplyMarkup(ctx, &bot.EditMessageReplyMarkupParams{
				ChatID:      chatID,
				MessageID:   messageID,
				ReplyMarkup: inlineMarkup(m.Inline),
			}); err != nil {
				h.log.Warn("failed to edit reply markup", "error", err.Error())
			}
			continue
		}

		if m.PhotoURL != "" {
			params := &bot.SendPhotoParams{
				ChatID:      chatID,
				Photo:       &models.InputFileString{Data: m.PhotoURL},
				Caption:     m.Text,
				ReplyMarkup: markup(m),
			}
			if m.HTML {
				params.ParseMode = models.ParseModeHTML
			}
			if _, err := b.SendPhoto(ctx, params); err != nil {
				h.log.Warn("failed to send photo", "error", err.Error())
			}
			continue
		}

		params := &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        m.Text,
			ReplyMarkup: markup(m),
		}
		if m.HTML {
			params.ParseMode = models.ParseModeHTML
		}
		if _, err := b.SendMessage(ctx, params); err != nil {
			h.log.Warn("failed to send message", "error", err.Error())
		}
	}
}

// markup picks the single reply_markup a Telegram message can carry: an
// inline keyboard wins over a reply keyboard, which wins over removal.
func markup(m flow.Message) models.ReplyMarkup {
	switch {
	case len(m.Inline) > 0:
		return inlineMarkup(m.Inline)
	case len(m.Reply) > 0:
		return replyMarkup(m.Reply, m.ContactButton)
	case m.RemoveReply:
		return &models.ReplyKeyboardRemove{RemoveKeyboard: true}
	}
	return nil
}

func inlineMarkup(rows [][]flow.Button) *models.InlineKeyboardMarkup {
	kb := make([][]models.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		r := make([]models.InlineKeyboardButton, 0, len(row))
		for _, btn := range row {
			r = append(r, models.InlineKeyboardButton{Text: btn.Label, CallbackData: btn.Data})
		}
		kb = append(kb, r)
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: kb}
}

func replyMarkup(rows [][]flow.Button, contact bool) *models.ReplyKeyboardMarkup {
	kb := make([][]models.KeyboardButton, 0, len(rows))
	for i, row := range rows {
		r := make([]models.KeyboardButton, 0, len(row))
		for j, btn := range row {
			kb0 := models.KeyboardButton{Text: btn.Label}
			if contact && i == 0 && j == 0 {
				kb0.RequestContact = true
			}
			r = append(r, kb0)
		}
		kb = append(kb, r)
	}
	return &models.ReplyKeyboardMarkup{
		Keyboard:        kb,
		ResizeKeyboard:  true,
		OneTimeKeyboard: true,
	}
}
