package service

import (
	"context"
	"time"

	"github.com/Freeeeeet/health_wallet/internal/model"
	"github.com/Freeeeeet/health_wallet/internal/notify"
	"github.com/Freeeeeet/health_wallet/internal/state"
)

// ChatService ведёт историю чата: команды пользователя и уведомления бота.
// История сохраняется вместе с остальным состоянием по расписанию.
type ChatService struct {
	state *state.AppState
	now   func() time.Time
}

func NewChatService(st *state.AppState) *ChatService {
	return &ChatService{state: st, now: time.Now}
}

// RecordUser добавляет сообщение пользователя
func (s *ChatService) RecordUser(text string) {
	if text == "" {
		return
	}
	s.state.AppendChat(model.ChatMessage{Role: model.ChatRoleUser, Text: text, Timestamp: s.now()})
}

// Notify записывает уведомление как ответ бота
func (s *ChatService) Notify(_ context.Context, n notify.Notice) {
	if n.Text == "" {
		return
	}
	s.state.AppendChat(model.ChatMessage{Role: model.ChatRoleBot, Text: n.Text, Timestamp: s.now()})
}

// History возвращает последние limit сообщений, старые первыми
func (s *ChatService) History(limit int) []model.ChatMessage {
	history := s.state.ChatHistory()
	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}
	return history
}
