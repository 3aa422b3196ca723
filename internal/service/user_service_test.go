package service

import (
	"context"
	"testing"
	"time"

	"github.com/Freeeeeet/health_wallet/internal/model"
	"github.com/Freeeeeet/health_wallet/internal/notify"
	"github.com/Freeeeeet/health_wallet/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserService_RegisterUser(t *testing.T) {
	st := state.New()
	saver := &fakeSaver{}
	s := NewUserService(st, saver, zap.NewNop())
	s.now = func() time.Time { return fixedNow }

	assert.Equal(t, AnonymousPatientID, s.PatientID())

	user := s.RegisterUser(context.Background(), 42, "jdoe", "John", "Doe")
	assert.Equal(t, "tg_42", user.ID)
	assert.Equal(t, "John Doe", user.Name)
	assert.Equal(t, model.RolePatient, user.Role)
	assert.Equal(t, fixedNow, user.LoginTime)

	require.NotNil(t, st.CurrentUser())
	assert.Equal(t, "tg_42", s.PatientID())
	assert.Equal(t, 1, saver.saves)

	// без имени используется username
	user = s.RegisterUser(context.Background(), 7, "nameless", "", "")
	assert.Equal(t, "nameless", user.Name)
	assert.Equal(t, "tg_7", s.PatientID())
}

func TestChatService_RecordsCommandsAndNotices(t *testing.T) {
	st := state.New()
	chat := NewChatService(st)
	chat.now = func() time.Time { return fixedNow }

	chat.RecordUser("/approve 1")
	chat.RecordUser("")
	notify.Success(context.Background(), chat, "Access Approved on Blockchain!")

	history := chat.History(0)
	require.Len(t, history, 2)
	assert.Equal(t, model.ChatMessage{Role: model.ChatRoleUser, Text: "/approve 1", Timestamp: fixedNow}, history[0])
	assert.Equal(t, model.ChatRoleBot, history[1].Role)
	assert.Equal(t, "Access Approved on Blockchain!", history[1].Text)

	last := chat.History(1)
	require.Len(t, last, 1)
	assert.Equal(t, model.ChatRoleBot, last[0].Role)
}
