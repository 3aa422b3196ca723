package notify

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// MessageSender - часть *bot.Bot, нужная для отправки сообщений
type MessageSender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// TelegramNotifier отправляет уведомления в чат.
// Чат берётся из контекста, иначе используется чат по умолчанию.
type TelegramNotifier struct {
	sender        MessageSender
	defaultChatID int64
	logger        *zap.Logger
}

func NewTelegramNotifier(sender MessageSender, defaultChatID int64, logger *zap.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		sender:        sender,
		defaultChatID: defaultChatID,
		logger:        logger,
	}
}

func (t *TelegramNotifier) Notify(ctx context.Context, n Notice) {
	chatID, ok := ChatIDFrom(ctx)
	if !ok {
		chatID = t.defaultChatID
	}
	if chatID == 0 {
		return
	}

	_, err := t.sender.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   Emoji(n.Level) + " " + n.Text,
	})
	if err != nil {
		t.logger.Error("Failed to send notice",
			zap.Int64("chat_id", chatID),
			zap.String("text", n.Text),
			zap.Error(err),
		)
	}
}

// Emoji возвращает значок для уровня уведомления
func Emoji(level Level) string {
	switch level {
	case LevelSuccess:
		return "✅"
	case LevelWarning:
		return "⚠️"
	case LevelError:
		return "❌"
	default:
		return "ℹ️"
	}
}
