package wallet

import (
	"context"
	"fmt"
	"strings"

	"github.com/Freeeeeet/health_wallet/internal/model"
	"github.com/Freeeeeet/health_wallet/internal/notify"
	"go.uber.org/zap"
)

// NetworkAdapter следит, чтобы кошелёк был в нужной сети
type NetworkAdapter struct {
	provider Provider
	chain    model.Chain
	notifier notify.Notifier
	logger   *zap.Logger
}

func NewNetworkAdapter(provider Provider, chain model.Chain, notifier notify.Notifier, logger *zap.Logger) *NetworkAdapter {
	return &NetworkAdapter{
		provider: provider,
		chain:    chain,
		notifier: notifier,
		logger:   logger,
	}
}

func (n *NetworkAdapter) Chain() model.Chain {
	return n.chain
}

// EnsureChain переключает кошелёк на целевую сеть.
// Если сеть неизвестна кошельку (4902), сначала добавляет её.
func (n *NetworkAdapter) EnsureChain(ctx context.Context) error {
	current, err := ChainID(ctx, n.provider)
	if err == nil && strings.EqualFold(current, n.chain.ChainID) {
		return nil
	}
	if err != nil {
		n.logger.Warn("Failed to read current chain, switching anyway", zap.Error(err))
	}

	_, err = n.provider.Request(ctx, "wallet_switchEthereumChain", map[string]string{"chainId": n.chain.ChainID})
	if err == nil {
		n.logger.Info("Switched network", zap.String("chain_id", n.chain.ChainID))
		return nil
	}

	if !hasCode(err, CodeUnknownChain) {
		n.logger.Error("Failed to switch network", zap.String("chain_id", n.chain.ChainID), zap.Error(err))
		notify.Error(ctx, n.notifier, "Failed to switch network")
		return fmt.Errorf("%w: %v", ErrChainSwitchFailed, err)
	}

	if _, err := n.provider.Request(ctx, "wallet_addEthereumChain", n.chain); err != nil {
		n.logger.Error("Failed to add network", zap.String("chain_id", n.chain.ChainID), zap.Error(err))
		notify.Error(ctx, n.notifier, "Failed to add network")
		return fmt.Errorf("%w: add chain: %v", ErrChainSwitchFailed, err)
	}

	n.logger.Info("Added network", zap.String("chain_id", n.chain.ChainID), zap.String("name", n.chain.ChainName))
	return nil
}
