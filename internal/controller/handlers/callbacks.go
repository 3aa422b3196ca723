package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleCallbackQuery обрабатывает кнопки одобрения и отклонения заявок
func (h *Handlers) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	query := update.CallbackQuery
	if query == nil {
		return
	}

	// Сразу отвечаем, чтобы у кнопки пропали часики: транзакция может идти долго
	if _, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: query.ID}); err != nil {
		h.logger.Warn("Failed to answer callback query", zap.Error(err))
	}

	msg := query.Message.Message
	if msg == nil {
		return
	}

	action, id, ok := ParseCallback(query.Data)
	if !ok {
		h.logger.Warn("Unknown callback data", zap.String("data", query.Data))
		return
	}

	// Убираем кнопки, чтобы заявку не обработали дважды
	if _, err := b.EditMessageReplyMarkup(ctx, &bot.EditMessageReplyMarkupParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
	}); err != nil {
		h.logger.Warn("Failed to remove request keyboard", zap.Error(err))
	}

	switch action {
	case "approve":
		h.approve(ctx, b, msg.Chat.ID, id)
	case "reject":
		h.reject(ctx, b, msg.Chat.ID, id)
	}
}
