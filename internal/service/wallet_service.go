package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/health_wallet/internal/notify"
	"github.com/Freeeeeet/health_wallet/internal/state"
	"github.com/Freeeeeet/health_wallet/internal/wallet"
	"go.uber.org/zap"
)

type WalletService struct {
	provider wallet.Provider
	network  ChainEnsurer
	state    *state.AppState
	saver    StateSaver
	notifier notify.Notifier
	logger   *zap.Logger
}

func NewWalletService(
	provider wallet.Provider,
	network ChainEnsurer,
	st *state.AppState,
	saver StateSaver,
	notifier notify.Notifier,
	logger *zap.Logger,
) *WalletService {
	return &WalletService{
		provider: provider,
		network:  network,
		state:    st,
		saver:    saver,
		notifier: notifier,
		logger:   logger,
	}
}

// Connect запрашивает аккаунты у кошелька, запоминает первый и переключает сеть.
// Ошибка переключения сети не отменяет подключение: о ней уже сообщено.
func (s *WalletService) Connect(ctx context.Context) (string, error) {
	address, err := wallet.RequestAccounts(ctx, s.provider)
	if err != nil {
		if errors.Is(err, wallet.ErrUserRejected) {
			notify.Info(ctx, s.notifier, "Wallet connection rejected by user")
		} else {
			notify.Error(ctx, s.notifier, "Failed to connect wallet")
		}
		s.logger.Warn("Failed to connect wallet", zap.Error(err))
		return "", fmt.Errorf("connect wallet: %w", err)
	}

	s.state.ConnectWallet(address)
	s.saver.SaveAsync(ctx, s.state)

	s.logger.Info("Wallet connected", zap.String("address", address))
	notify.Success(ctx, s.notifier, "Wallet connected successfully! %s", ShortAddress(address))

	if err := s.network.EnsureChain(ctx); err != nil {
		s.logger.Warn("Wallet connected on a different network", zap.Error(err))
	}

	return address, nil
}

func (s *WalletService) Disconnect(ctx context.Context) {
	s.state.DisconnectWallet()
	s.saver.SaveAsync(ctx, s.state)

	s.logger.Info("Wallet disconnected")
	notify.Info(ctx, s.notifier, "Wallet disconnected")
}

// Address возвращает адрес подключённого кошелька
func (s *WalletService) Address() (string, bool) {
	w := s.state.Wallet()
	return w.Address, w.Connected && w.Address != ""
}

// ShortAddress сокращает адрес до вида 0x1234...abcd
func ShortAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}
