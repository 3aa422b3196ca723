package wallet

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

// Provider - EIP-1193 запрос к кошельку
type Provider interface {
	Request(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

// RPCProvider ходит к кошельку по JSON-RPC
type RPCProvider struct {
	client *rpc.Client
	url    string
}

func NewRPCProvider(client *rpc.Client, url string) *RPCProvider {
	return &RPCProvider{client: client, url: url}
}

func (p *RPCProvider) Request(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	var result json.RawMessage
	if err := p.client.CallContext(ctx, &result, method, params...); err != nil {
		return nil, err
	}
	return result, nil
}

func (p *RPCProvider) URL() string {
	return p.url
}

func (p *RPCProvider) Close() {
	p.client.Close()
}

// DialProvider подключается к первому отвечающему провайдеру из списка
func DialProvider(ctx context.Context, urls []string, logger *zap.Logger) (*RPCProvider, error) {
	for _, url := range urls {
		client, err := rpc.DialContext(ctx, url)
		if err != nil {
			logger.Warn("Failed to dial wallet provider", zap.String("url", url), zap.Error(err))
			continue
		}

		provider := NewRPCProvider(client, url)
		chainID, err := ChainID(ctx, provider)
		if err != nil {
			logger.Warn("Wallet provider did not answer eth_chainId", zap.String("url", url), zap.Error(err))
			client.Close()
			continue
		}

		logger.Info("Wallet provider connected",
			zap.String("url", url),
			zap.String("chain_id", chainID),
		)
		return provider, nil
	}

	return nil, fmt.Errorf("dial provider: %w", ErrNoProvider)
}

// ChainID возвращает текущую сеть кошелька
func ChainID(ctx context.Context, p Provider) (string, error) {
	raw, err := p.Request(ctx, "eth_chainId")
	if err != nil {
		return "", fmt.Errorf("get chain id: %w", err)
	}

	var id string
	if err := json.Unmarshal(raw, &id); err != nil {
		return "", fmt.Errorf("decode chain id: %w", err)
	}
	return id, nil
}

// RequestAccounts запрашивает доступ к аккаунтам и возвращает первый
func RequestAccounts(ctx context.Context, p Provider) (string, error) {
	raw, err := p.Request(ctx, "eth_requestAccounts")
	if err != nil {
		if hasCode(err, CodeUserRejected) {
			return "", fmt.Errorf("request accounts: %w", ErrUserRejected)
		}
		return "", fmt.Errorf("request accounts: %w", err)
	}

	var accounts []string
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return "", fmt.Errorf("decode accounts: %w", err)
	}
	if len(accounts) == 0 {
		return "", ErrNoAccounts
	}
	return accounts[0], nil
}
