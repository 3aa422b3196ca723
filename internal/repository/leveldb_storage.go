package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
)

// LevelDBStorage хранит значения в локальной LevelDB
type LevelDBStorage struct {
	db *leveldb.DB
}

// OpenLevelDB открывает (или создаёт) базу по пути
func OpenLevelDB(path string) (*LevelDBStorage, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open leveldb: %w", err)
	}
	return &LevelDBStorage{db: db}, nil
}

// NewLevelDBStorage оборачивает уже открытую базу
func NewLevelDBStorage(db *leveldb.DB) *LevelDBStorage {
	return &LevelDBStorage{db: db}
}

func (s *LevelDBStorage) Get(_ context.Context, key string) ([]byte, error) {
	v, err := s.db.Get([]byte(key), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return v, nil
}

func (s *LevelDBStorage) Set(_ context.Context, key string, value []byte) error {
	if err := s.db.Put([]byte(key), value, nil); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

func (s *LevelDBStorage) Remove(_ context.Context, key string) error {
	// Delete несуществующего ключа в LevelDB не ошибка
	if err := s.db.Delete([]byte(key), nil); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *LevelDBStorage) Close() error {
	return s.db.Close()
}
