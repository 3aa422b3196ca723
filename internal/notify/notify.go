// Package notify delivers transient user-visible notices.
package notify

import (
	"context"
	"fmt"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

type Notice struct {
	Level Level
	Text  string
}

// Notifier показывает уведомление пользователю. Ошибки доставки не возвращаются.
type Notifier interface {
	Notify(ctx context.Context, n Notice)
}

func Info(ctx context.Context, n Notifier, format string, args ...any) {
	n.Notify(ctx, Notice{Level: LevelInfo, Text: fmt.Sprintf(format, args...)})
}

func Success(ctx context.Context, n Notifier, format string, args ...any) {
	n.Notify(ctx, Notice{Level: LevelSuccess, Text: fmt.Sprintf(format, args...)})
}

func Warning(ctx context.Context, n Notifier, format string, args ...any) {
	n.Notify(ctx, Notice{Level: LevelWarning, Text: fmt.Sprintf(format, args...)})
}

func Error(ctx context.Context, n Notifier, format string, args ...any) {
	n.Notify(ctx, Notice{Level: LevelError, Text: fmt.Sprintf(format, args...)})
}

// Multi рассылает уведомление всем получателям по порядку
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notice) {
	for _, target := range m {
		target.Notify(ctx, n)
	}
}

type chatIDKey struct{}

// WithChatID привязывает уведомления к чату, из которого пришла команда
func WithChatID(ctx context.Context, chatID int64) context.Context {
	return context.WithValue(ctx, chatIDKey{}, chatID)
}

func ChatIDFrom(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(chatIDKey{}).(int64)
	return id, ok
}
