package wallet

import (
	"context"
	"testing"

	"github.com/Freeeeeet/health_wallet/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testChain() model.Chain {
	return model.Chain{
		ChainID:   "0x1FB7",
		ChainName: "Shardeum Atomium (Mezame)",
		RPCURLs:   []string{"https://api-mezame.shardeum.org/"},
		NativeCurrency: model.NativeCurrency{
			Name:     "SHARDEUM",
			Symbol:   "SHM",
			Decimals: 18,
		},
	}
}

func TestEnsureChain_AlreadyOnTarget(t *testing.T) {
	provider := &fakeProvider{handle: func(method string, _ []any) (any, error) {
		return "0x1fb7", nil
	}}
	n := NewNetworkAdapter(provider, testChain(), &noticeRecorder{}, zap.NewNop())

	require.NoError(t, n.EnsureChain(context.Background()))
	require.NoError(t, n.EnsureChain(context.Background()))

	assert.Equal(t, []string{"eth_chainId", "eth_chainId"}, provider.methods())
}

func TestEnsureChain_Switches(t *testing.T) {
	provider := &fakeProvider{handle: func(method string, _ []any) (any, error) {
		if method == "eth_chainId" {
			return "0x1", nil
		}
		return nil, nil
	}}
	n := NewNetworkAdapter(provider, testChain(), &noticeRecorder{}, zap.NewNop())

	require.NoError(t, n.EnsureChain(context.Background()))

	assert.Equal(t, []string{"eth_chainId", "wallet_switchEthereumChain"}, provider.methods())
	assert.Equal(t, map[string]string{"chainId": "0x1FB7"}, provider.calls[1].Params[0])
}

func TestEnsureChain_AddsUnknownChain(t *testing.T) {
	provider := &fakeProvider{handle: func(method string, _ []any) (any, error) {
		switch method {
		case "eth_chainId":
			return "0x1", nil
		case "wallet_switchEthereumChain":
			return nil, &ProviderError{Code: CodeUnknownChain, Message: "Unrecognized chain ID"}
		}
		return nil, nil
	}}
	n := NewNetworkAdapter(provider, testChain(), &noticeRecorder{}, zap.NewNop())

	require.NoError(t, n.EnsureChain(context.Background()))

	assert.Equal(t, []string{"eth_chainId", "wallet_switchEthereumChain", "wallet_addEthereumChain"}, provider.methods())
	assert.Equal(t, testChain(), provider.calls[2].Params[0])
}

func TestEnsureChain_AddFails(t *testing.T) {
	provider := &fakeProvider{handle: func(method string, _ []any) (any, error) {
		switch method {
		case "eth_chainId":
			return "0x1", nil
		case "wallet_switchEthereumChain":
			return nil, &ProviderError{Code: CodeUnknownChain, Message: "Unrecognized chain ID"}
		default:
			return nil, &ProviderError{Code: CodeUserRejected, Message: "rejected"}
		}
	}}
	notices := &noticeRecorder{}
	n := NewNetworkAdapter(provider, testChain(), notices, zap.NewNop())

	err := n.EnsureChain(context.Background())

	require.ErrorIs(t, err, ErrChainSwitchFailed)
	assert.Equal(t, []string{"Failed to add network"}, notices.texts())
}

func TestEnsureChain_SwitchFails(t *testing.T) {
	provider := &fakeProvider{handle: func(method string, _ []any) (any, error) {
		if method == "eth_chainId" {
			return "0x1", nil
		}
		return nil, &ProviderError{Code: CodeUserRejected, Message: "rejected"}
	}}
	notices := &noticeRecorder{}
	n := NewNetworkAdapter(provider, testChain(), notices, zap.NewNop())

	err := n.EnsureChain(context.Background())

	require.ErrorIs(t, err, ErrChainSwitchFailed)
	assert.Equal(t, []string{"Failed to switch network"}, notices.texts())
	assert.NotContains(t, provider.methods(), "wallet_addEthereumChain")
}
