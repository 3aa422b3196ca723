package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStorage хранит значения в таблице local_storage
type PostgresStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresStorage создаёт хранилище поверх пула соединений
func NewPostgresStorage(pool *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{pool: pool}
}

// Pool возвращает пул соединений
func (s *PostgresStorage) Pool() *pgxpool.Pool {
	return s.pool
}

func (s *PostgresStorage) Get(ctx context.Context, key string) ([]byte, error) {
	query := `
		SELECT value
		FROM local_storage
		WHERE key = $1
	`

	var value []byte
	err := s.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}

	return value, nil
}

func (s *PostgresStorage) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO local_storage (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	if _, err := s.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	return nil
}

func (s *PostgresStorage) Remove(ctx context.Context, key string) error {
	query := `
		DELETE FROM local_storage
		WHERE key = $1
	`

	if _, err := s.pool.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}

	return nil
}

// Close закрывает пул соединений
func (s *PostgresStorage) Close() error {
	s.pool.Close()
	return nil
}
