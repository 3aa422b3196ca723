package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// sendMessage отправляет HTML-сообщение и логирует если не удалось
func (h *Handlers) sendMessage(ctx context.Context, b *bot.Bot, chatID int64, text string, markup *models.InlineKeyboardMarkup) {
	params := &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	}
	if markup != nil {
		params.ReplyMarkup = markup
	}

	if _, err := b.SendMessage(ctx, params); err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}

// sendError отправляет сообщение об ошибке, если сервис не сообщил о ней сам
func (h *Handlers) sendError(ctx context.Context, b *bot.Bot, chatID int64, err error) {
	if notified(err) {
		return
	}
	h.sendMessage(ctx, b, chatID, ErrorMessage(err), nil)
}

// CommandArgs возвращает аргументы команды: "/approve 1" -> ["1"]
func CommandArgs(text string) []string {
	fields := strings.Fields(text)
	if len(fields) <= 1 {
		return nil
	}
	return fields[1:]
}

// firstArg возвращает первый аргумент команды или ErrMissingArgument
func firstArg(text string) (string, error) {
	args := CommandArgs(text)
	if len(args) == 0 {
		return "", ErrMissingArgument
	}
	return args[0], nil
}
