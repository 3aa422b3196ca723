package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

func newMemLevelDB(t *testing.T) *LevelDBStorage {
	t.Helper()
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	require.NoError(t, err)
	s := NewLevelDBStorage(db)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLevelDBStorage_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	s := newMemLevelDB(t)

	_, err := s.Get(ctx, KeyAuditLogs)
	assert.True(t, IsNotFound(err))

	require.NoError(t, s.Set(ctx, KeyAuditLogs, []byte(`[{"action":"Approved"}]`)))

	v, err := s.Get(ctx, KeyAuditLogs)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"action":"Approved"}]`, string(v))

	require.NoError(t, s.Set(ctx, KeyAuditLogs, []byte(`[]`)))
	v, err = s.Get(ctx, KeyAuditLogs)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(v))

	require.NoError(t, s.Remove(ctx, KeyAuditLogs))
	_, err = s.Get(ctx, KeyAuditLogs)
	assert.True(t, IsNotFound(err))

	// повторное удаление не ошибка
	assert.NoError(t, s.Remove(ctx, KeyAuditLogs))
}

func TestOpenLevelDB_File(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := OpenLevelDB(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, KeyWalletAddress, []byte(`"0xabc"`)))
	require.NoError(t, s.Close())

	s, err = OpenLevelDB(dir)
	require.NoError(t, err)
	defer s.Close()

	v, err := s.Get(ctx, KeyWalletAddress)
	require.NoError(t, err)
	assert.Equal(t, `"0xabc"`, string(v))
}
