package handlers

import (
	"context"

	"github.com/Freeeeeet/health_wallet/internal/notify"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ChatContext кладёт чат апдейта в контекст, чтобы уведомления сервисов уходили туда же
func ChatContext(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if chatID, ok := chatOf(update); ok {
			ctx = notify.WithChatID(ctx, chatID)
		}
		next(ctx, b, update)
	}
}

// OwnerOnly пропускает только апдейты из чата владельца кошелька.
// Нулевой ownerChatID отключает проверку.
func OwnerOnly(ownerChatID int64, logger *zap.Logger) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if ownerChatID != 0 {
				chatID, ok := chatOf(update)
				if !ok || chatID != ownerChatID {
					logger.Warn("Ignoring update from foreign chat", zap.Int64("chat_id", chatID))
					return
				}
			}
			next(ctx, b, update)
		}
	}
}

// RecordHistory пишет входящие команды, подписи файлов и нажатия кнопок в историю чата
func (h *Handlers) RecordHistory(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		h.chatService.RecordUser(updateText(update))
		next(ctx, b, update)
	}
}

func updateText(update *models.Update) string {
	switch {
	case update == nil:
		return ""
	case update.Message != nil && update.Message.Text != "":
		return update.Message.Text
	case update.Message != nil && update.Message.Document != nil:
		if update.Message.Caption != "" {
			return update.Message.Document.FileName + " " + update.Message.Caption
		}
		return update.Message.Document.FileName
	case update.CallbackQuery != nil:
		return update.CallbackQuery.Data
	default:
		return ""
	}
}

func chatOf(update *models.Update) (int64, bool) {
	switch {
	case update == nil:
		return 0, false
	case update.Message != nil:
		return update.Message.Chat.ID, true
	case update.CallbackQuery != nil && update.CallbackQuery.Message.Message != nil:
		return update.CallbackQuery.Message.Message.Chat.ID, true
	default:
		return 0, false
	}
}
