package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSender struct {
	sent []*bot.SendMessageParams
	err  error
}

func (f *fakeSender) SendMessage(_ context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	f.sent = append(f.sent, params)
	return &models.Message{}, f.err
}

func TestTelegramNotifier_UsesChatFromContext(t *testing.T) {
	sender := &fakeSender{}
	n := NewTelegramNotifier(sender, 100, zap.NewNop())

	Warning(WithChatID(context.Background(), 42), n, "Network busy, retrying in %ds...", 2)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, int64(42), sender.sent[0].ChatID)
	assert.Equal(t, "⚠️ Network busy, retrying in 2s...", sender.sent[0].Text)
}

func TestTelegramNotifier_DefaultChat(t *testing.T) {
	sender := &fakeSender{}
	n := NewTelegramNotifier(sender, 100, zap.NewNop())

	Success(context.Background(), n, "done")

	require.Len(t, sender.sent, 1)
	assert.Equal(t, int64(100), sender.sent[0].ChatID)
}

func TestTelegramNotifier_NoChatConfigured(t *testing.T) {
	sender := &fakeSender{}
	n := NewTelegramNotifier(sender, 0, zap.NewNop())

	Info(context.Background(), n, "dropped")

	assert.Empty(t, sender.sent)
}

func TestTelegramNotifier_SendErrorIsSwallowed(t *testing.T) {
	sender := &fakeSender{err: errors.New("boom")}
	n := NewTelegramNotifier(sender, 1, zap.NewNop())

	assert.NotPanics(t, func() { Error(context.Background(), n, "x") })
}

type recorder struct{ notices []Notice }

func (r *recorder) Notify(_ context.Context, n Notice) { r.notices = append(r.notices, n) }

func TestMulti(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	Multi{a, b, NewLogNotifier(zap.NewNop())}.Notify(context.Background(), Notice{Level: LevelInfo, Text: "hi"})

	assert.Len(t, a.notices, 1)
	assert.Len(t, b.notices, 1)
}
