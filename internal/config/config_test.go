package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("WALLET_PROVIDER_URLS", "")
	t.Setenv("TX_MAX_ATTEMPTS", "")
	t.Setenv("CHAIN_ID", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageLevelDB, cfg.StorageDriver)
	assert.Equal(t, []string{"http://127.0.0.1:8545"}, cfg.ProviderURLs)
	assert.Equal(t, 3, cfg.TxMaxAttempts)
	assert.Equal(t, "0x1FB7", cfg.Chain.ChainID)
	assert.Equal(t, 18, cfg.Chain.NativeCurrency.Decimals)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("WALLET_PROVIDER_URLS", " http://a:8545 , http://b:8545,")
	t.Setenv("CHAIN_RPC_URLS", "http://rpc1,http://rpc2")
	t.Setenv("TX_MAX_ATTEMPTS", "5")
	t.Setenv("TELEGRAM_CHAT_ID", "-1001")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"http://a:8545", "http://b:8545"}, cfg.ProviderURLs)
	assert.Equal(t, []string{"http://rpc1", "http://rpc2"}, cfg.Chain.RPCURLs)
	assert.Equal(t, 5, cfg.TxMaxAttempts)
	assert.Equal(t, int64(-1001), cfg.TelegramChatID)
}

func TestLoad_PostgresRequiresDSN(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", StoragePostgres)
	t.Setenv("DB_DSN", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidNumbers(t *testing.T) {
	t.Setenv("TX_MAX_ATTEMPTS", "three")

	_, err := Load()
	assert.Error(t, err)
}
