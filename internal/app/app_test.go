package app

import (
	"context"
	"testing"
	"time"

	"github.com/Freeeeeet/health_wallet/internal/config"
	"github.com/Freeeeeet/health_wallet/internal/model"
	"github.com/Freeeeeet/health_wallet/internal/repository"
	"github.com/Freeeeeet/health_wallet/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"go.uber.org/zap"
)

func newMemStorage(t *testing.T) *repository.LevelDBStorage {
	t.Helper()
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	require.NoError(t, err)
	s := repository.NewLevelDBStorage(db)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNewLogger(t *testing.T) {
	for _, env := range []string{"production", "development"} {
		logger, err := NewLogger(env, "test")
		require.NoError(t, err)
		assert.NotNil(t, logger)
	}
}

func TestScheduler_SavesPeriodicallyAndOnStop(t *testing.T) {
	ctx := context.Background()
	store := newMemStorage(t)
	persister := state.NewPersister(store, zap.NewNop())

	st := state.New()
	st.ConnectWallet("0x742d35Cc6634C0532925a3b8D4C9db96C4b5Da5A")

	s := NewScheduler(persister, st, 5*time.Millisecond, zap.NewNop())
	s.Start(ctx)

	require.Eventually(t, func() bool {
		_, err := store.Get(ctx, repository.KeyWalletAddress)
		return err == nil
	}, time.Second, 5*time.Millisecond)

	st.AppendAudit(model.AuditLogEntry{Action: model.AuditActionApproved, Doctor: "Dr. Test", Record: "Blood Test"})
	s.Stop(ctx)
	// повторная остановка безопасна
	s.Stop(ctx)

	restored := state.New()
	require.NoError(t, persister.Load(ctx, restored))
	assert.True(t, restored.Wallet().Connected)
	require.Len(t, restored.AuditLog(), 1)
	assert.Equal(t, "Dr. Test", restored.AuditLog()[0].Doctor)
}

func TestScheduler_DefaultInterval(t *testing.T) {
	s := NewScheduler(nil, state.New(), 0, zap.NewNop())
	assert.Equal(t, DefaultSaveInterval, s.interval)
}

func TestOpenStorage_LevelDB(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{StorageDriver: config.StorageLevelDB, StoragePath: t.TempDir()}

	s, err := OpenStorage(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set(ctx, repository.KeyUser, []byte(`{}`)))
}

func TestOpenStorage_UnknownDriver(t *testing.T) {
	_, err := OpenStorage(context.Background(), &config.Config{StorageDriver: "redis"}, zap.NewNop())
	assert.Error(t, err)
}
