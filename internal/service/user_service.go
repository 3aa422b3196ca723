package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/health_wallet/internal/model"
	"github.com/Freeeeeet/health_wallet/internal/state"
	"go.uber.org/zap"
)

// AnonymousPatientID отправляется бэкенду анализа, пока пользователь не представился
const AnonymousPatientID = "anonymous"

type UserService struct {
	state  *state.AppState
	saver  StateSaver
	logger *zap.Logger
	now    func() time.Time
}

func NewUserService(st *state.AppState, saver StateSaver, logger *zap.Logger) *UserService {
	return &UserService{
		state:  st,
		saver:  saver,
		logger: logger,
		now:    time.Now,
	}
}

// RegisterUser делает пользователя Telegram текущим пациентом кошелька
func (s *UserService) RegisterUser(ctx context.Context, telegramID int64, username, firstName, lastName string) *model.User {
	name := strings.TrimSpace(firstName + " " + lastName)
	if name == "" {
		name = username
	}

	user := &model.User{
		ID:        fmt.Sprintf("tg_%d", telegramID),
		Name:      name,
		Role:      model.RolePatient,
		LoginTime: s.now(),
	}

	if existing := s.state.CurrentUser(); existing != nil && existing.ID == user.ID {
		user.Email = existing.Email
		s.logger.Info("User updated", zap.Int64("telegram_id", telegramID), zap.String("username", username))
	} else {
		s.logger.Info("User registered", zap.Int64("telegram_id", telegramID), zap.String("username", username))
	}

	s.state.SetCurrentUser(user)
	s.saver.SaveAsync(ctx, s.state)
	return user
}

// PatientID - id текущего пользователя или AnonymousPatientID
func (s *UserService) PatientID() string {
	if u := s.state.CurrentUser(); u != nil && u.ID != "" {
		return u.ID
	}
	return AnonymousPatientID
}
