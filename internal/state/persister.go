package state

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Freeeeeet/health_wallet/internal/model"
	"github.com/Freeeeeet/health_wallet/internal/repository"
	"go.uber.org/zap"
)

// Persister сохраняет AppState в локальное хранилище и загружает обратно
type Persister struct {
	storage repository.Storage
	logger  *zap.Logger
}

func NewPersister(storage repository.Storage, logger *zap.Logger) *Persister {
	return &Persister{storage: storage, logger: logger}
}

// Save записывает все ключи состояния
func (p *Persister) Save(ctx context.Context, s *AppState) error {
	snap := s.Snapshot()

	values := map[string]any{
		repository.KeyMedicalRecords:   nonNil(snap.MedicalRecords),
		repository.KeyAuditLogs:        nonNil(snap.AuditLogs),
		repository.KeyAccessRequests:   nonNil(snap.AccessRequests),
		repository.KeyApprovedRequests: nonNil(snap.ApprovedRequests),
		repository.KeyChatHistory:      nonNil(snap.ChatHistory),
	}

	if snap.User != nil {
		values[repository.KeyUser] = snap.User
	} else if err := p.storage.Remove(ctx, repository.KeyUser); err != nil {
		return err
	}

	if snap.Wallet.Connected {
		values[repository.KeyWalletConnected] = true
		values[repository.KeyWalletAddress] = snap.Wallet.Address
	} else {
		for _, key := range []string{repository.KeyWalletConnected, repository.KeyWalletAddress} {
			if err := p.storage.Remove(ctx, key); err != nil {
				return err
			}
		}
	}

	for key, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", key, err)
		}
		if err := p.storage.Set(ctx, key, data); err != nil {
			return fmt.Errorf("save state: %w", err)
		}
	}

	return nil
}

// SaveAsync сохраняет состояние, ошибка только логируется
func (p *Persister) SaveAsync(ctx context.Context, s *AppState) {
	if err := p.Save(ctx, s); err != nil {
		p.logger.Warn("Failed to persist state", zap.Error(err))
	}
}

// Load восстанавливает состояние. Отсутствующие ключи оставляют поле пустым.
func (p *Persister) Load(ctx context.Context, s *AppState) error {
	var snap Snapshot

	targets := []struct {
		key string
		dst any
	}{
		{repository.KeyUser, &snap.User},
		{repository.KeyMedicalRecords, &snap.MedicalRecords},
		{repository.KeyAuditLogs, &snap.AuditLogs},
		{repository.KeyAccessRequests, &snap.AccessRequests},
		{repository.KeyApprovedRequests, &snap.ApprovedRequests},
		{repository.KeyChatHistory, &snap.ChatHistory},
		{repository.KeyWalletConnected, &snap.Wallet.Connected},
		{repository.KeyWalletAddress, &snap.Wallet.Address},
	}

	for _, t := range targets {
		if err := p.load(ctx, t.key, t.dst); err != nil {
			return err
		}
	}

	if !snap.Wallet.Connected {
		snap.Wallet = model.WalletSession{}
	}

	s.Restore(snap)
	return nil
}

func (p *Persister) load(ctx context.Context, key string, dst any) error {
	data, err := p.storage.Get(ctx, key)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("load state: %w", err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		// битое значение не должно ронять приложение
		p.logger.Warn("Skipping corrupted state key", zap.String("key", key), zap.Error(err))
	}
	return nil
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
