package handlers

import (
	"strings"

	"github.com/go-telegram/bot/models"
)

// Callback data заявок: approve:<id>, reject:<id>
const (
	CallbackApprove = "approve:"
	CallbackReject  = "reject:"
)

// Builder упрощает создание inline клавиатур
type Builder struct {
	rows [][]models.InlineKeyboardButton
}

func NewBuilder() *Builder {
	return &Builder{
		rows: make([][]models.InlineKeyboardButton, 0),
	}
}

// Row добавляет новый ряд кнопок
func (b *Builder) Row(buttons ...models.InlineKeyboardButton) *Builder {
	if len(buttons) > 0 {
		b.rows = append(b.rows, buttons)
	}
	return b
}

func (b *Builder) Build() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: b.rows,
	}
}

// Button создаёт кнопку
func Button(text, callbackData string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text:         text,
		CallbackData: callbackData,
	}
}

// URLButton создаёт кнопку с URL
func URLButton(text, url string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text: text,
		URL:  url,
	}
}

// RequestKeyboard - кнопки одобрения и отклонения заявки
func RequestKeyboard(requestID string) *models.InlineKeyboardMarkup {
	return NewBuilder().
		Row(
			Button("✅ Approve", CallbackApprove+requestID),
			Button("❌ Reject", CallbackReject+requestID),
		).
		Build()
}

// ExplorerKeyboard - ссылка на транзакцию в обозревателе блоков
func ExplorerKeyboard(explorerURL, txHash string) *models.InlineKeyboardMarkup {
	if explorerURL == "" || txHash == "" {
		return nil
	}
	return NewBuilder().
		Row(URLButton("🔗 View transaction", strings.TrimSuffix(explorerURL, "/")+"/tx/"+txHash)).
		Build()
}

// ParseCallback разбирает callback data заявки
func ParseCallback(data string) (action, requestID string, ok bool) {
	for _, prefix := range []string{CallbackApprove, CallbackReject} {
		if id, found := strings.CutPrefix(data, prefix); found && id != "" {
			return strings.TrimSuffix(prefix, ":"), id, true
		}
	}
	return "", "", false
}
