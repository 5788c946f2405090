// Package telegram wires the dialogue services to the Telegram Bot API. It
// owns no booking logic: updates are routed to the customer flow or the
// operator mode, and the returned replies are rendered into chat messages.
package telegram

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/reservon/booking-bot/internal/service/admin"
	"github.com/reservon/booking-bot/internal/service/flow"
	"github.com/reservon/booking-bot/pkg/logger"
)

// adminDataPrefix marks callback payloads owned by the operator mode.
const adminDataPrefix = "admin_"

type Handler struct {
	flow  *flow.Service
	admin *admin.Service
	log   *logger.Logger
}

func NewHandler(flowSvc *flow.Service, adminSvc *admin.Service, log *logger.Logger) *Handler {
	return &Handler{
		flow:  flowSvc,
		admin: adminSvc,
		log:   log.WithComponent("telegram"),
	}
}

// Options returns the bot options wiring the default update handler.
func (h *Handler) Options() []bot.Option {
	return []bot.Option{
		bot.WithDefaultHandler(h.handleUpdate),
	}
}

// Register attaches the command handlers and publishes the command menu.
func (h *Handler) Register(ctx context.Context, b *bot.Bot) {
	b.RegisterHandler(bot.HandlerTypeMessageText, "start", bot.MatchTypeCommand, h.handleStart)
	b.RegisterHandler(bot.HandlerTypeMessageText, "language", bot.MatchTypeCommand, h.handleLanguage)
	b.RegisterHandler(bot.HandlerTypeMessageText, "admin", bot.MatchTypeCommand, h.handleAdmin)
	b.RegisterHandler(bot.HandlerTypeMessageText, "cancel", bot.MatchTypeCommand, h.handleCancel)

	if _, err := b.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: []models.BotCommand{
			{Command: "start", Description: "Начать бронирование"},
			{Command: "language", Description: "Сменить язык"},
		},
	}); err != nil {
		h.log.Warn("failed to publish command menu", "error", err.Error())
	}
}

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.render(ctx, b, update.Message.Chat.ID, h.flow.Start(ctx, update.Message.From.ID))
}

func (h *Handler) handleLanguage(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.render(ctx, b, update.Message.Chat.ID, h.flow.ChangeLanguage(ctx, update.Message.From.ID))
}

func (h *Handler) handleAdmin(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.render(ctx, b, update.Message.Chat.ID, h.admin.Start(ctx, update.Message.From.ID))
}

// handleCancel ends an operator session; outside one it does nothing, like
// any unknown command.
func (h *Handler) handleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.admin.Active(update.Message.From.ID) {
		return
	}
	h.render(ctx, b, update.Message.Chat.ID, h.admin.Cancel(update.Message.From.ID))
}

// handleUpdate is the default handler: contacts, free text and inline-button
// presses. An active operator session takes precedence over the customer
// flow for the same user.
func (h *Handler) handleUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery != nil {
		h.handleCallback(ctx, b, update.CallbackQuery)
		return
	}
	if update.Message == nil {
		return
	}

	msg := update.Message
	userID := msg.From.ID

	if msg.Contact != nil {
		var r *flow.Reply
		if h.admin.Active(userID) {
			r = h.admin.HandleContact(ctx, userID, msg.Contact.PhoneNumber)
		} else {
			r = h.flow.HandleContact(ctx, userID, msg.Contact.PhoneNumber)
		}
		h.render(ctx, b, msg.Chat.ID, r)
		return
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" || strings.HasPrefix(text, "/") {
		return
	}
	var r *flow.Reply
	if h.admin.Active(userID) {
		r = h.admin.HandleText(ctx, userID, text)
	} else {
		r = h.flow.HandleText(ctx, userID, text)
	}
	h.render(ctx, b, msg.Chat.ID, r)
}

func (h *Handler) handleCallback(ctx context.Context, b *bot.Bot, cq *models.CallbackQuery) {
	if _, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: cq.ID,
	}); err != nil {
		h.log.Warn("failed to answer callback query", "error", err.Error())
	}
	if cq.Message.Message == nil {
		// Message too old for Telegram to reference; nothing to act on.
		return
	}

	userID := cq.From.ID
	chatID := cq.Message.Message.Chat.ID
	messageID := cq.Message.Message.ID

	var r *flow.Reply
	if strings.HasPrefix(cq.Data, adminDataPrefix) && h.admin.Active(userID) {
		r = h.admin.HandleCallback(ctx, userID, cq.Data)
	} else {
		r = h.flow.HandleCallback(ctx, userID, cq.Data)
	}
	h.renderAt(ctx, b, chatID, messageID, r)
}
