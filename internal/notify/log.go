package notify

import (
	"context"

	"go.uber.org/zap"
)

// LogNotifier пишет уведомления в лог
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (l *LogNotifier) Notify(_ context.Context, n Notice) {
	fields := []zap.Field{zap.String("level", string(n.Level)), zap.String("text", n.Text)}

	switch n.Level {
	case LevelError:
		l.logger.Error("Notice", fields...)
	case LevelWarning:
		l.logger.Warn("Notice", fields...)
	default:
		l.logger.Info("Notice", fields...)
	}
}
