package state

import (
	"context"
	"testing"
	"time"

	"github.com/Freeeeeet/health_wallet/internal/model"
	"github.com/Freeeeeet/health_wallet/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"go.uber.org/zap"
)

func memStorage(t *testing.T) *repository.LevelDBStorage {
	t.Helper()
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	require.NoError(t, err)
	s := repository.NewLevelDBStorage(db)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPersister_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := memStorage(t)
	p := NewPersister(store, zap.NewNop())

	src := seeded(t)
	src.SetCurrentUser(&model.User{ID: "u1", Email: "a@b.c", Role: model.RolePatient})
	src.ConnectWallet("0xabc")
	_, err := src.ApproveRequest("1", "0xhash", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	src.AppendChat(model.ChatMessage{Role: "user", Text: "hi"})

	require.NoError(t, p.Save(ctx, src))

	dst := New()
	require.NoError(t, p.Load(ctx, dst))

	assert.Equal(t, "u1", dst.CurrentUser().ID)
	assert.Equal(t, model.WalletSession{Connected: true, Address: "0xabc"}, dst.Wallet())
	assert.Len(t, dst.PendingRequests(), 1)
	require.Len(t, dst.ApprovedRequests(), 1)
	assert.Equal(t, "0xhash", dst.ApprovedRequests()[0].TxHash)
	assert.Len(t, dst.AuditLog(), 1)
	assert.Len(t, dst.ChatHistory(), 1)
}

func TestPersister_DisconnectRemovesWalletKeys(t *testing.T) {
	ctx := context.Background()
	store := memStorage(t)
	p := NewPersister(store, zap.NewNop())

	s := New()
	s.ConnectWallet("0xabc")
	require.NoError(t, p.Save(ctx, s))

	s.DisconnectWallet()
	require.NoError(t, p.Save(ctx, s))

	_, err := store.Get(ctx, repository.KeyWalletAddress)
	assert.True(t, repository.IsNotFound(err))
	_, err = store.Get(ctx, repository.KeyWalletConnected)
	assert.True(t, repository.IsNotFound(err))
}

func TestPersister_LoadEmptyAndCorrupted(t *testing.T) {
	ctx := context.Background()
	store := memStorage(t)
	p := NewPersister(store, zap.NewNop())

	require.NoError(t, store.Set(ctx, repository.KeyAuditLogs, []byte("{not json")))
	require.NoError(t, store.Set(ctx, repository.KeyAccessRequests, []byte(`[{"id":"1","doctorName":"Dr. X"}]`)))

	s := New()
	require.NoError(t, p.Load(ctx, s))

	assert.Nil(t, s.CurrentUser())
	assert.Empty(t, s.AuditLog())
	require.Len(t, s.PendingRequests(), 1)

	req, ok := s.FindPending("1")
	require.True(t, ok)
	assert.True(t, req.IsPending())
}
