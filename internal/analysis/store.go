// Package analysis implements the mock AI analysis backend.
package analysis

import (
	"errors"
	"sort"
	"sync"

	"github.com/Freeeeeet/health_wallet/internal/model"
)

var ErrNotFound = errors.New("analysis not found")

// Store - заявки на анализ в памяти процесса
type Store struct {
	mu    sync.RWMutex
	items map[string]model.Analysis
}

func NewStore() *Store {
	return &Store{items: make(map[string]model.Analysis)}
}

func (s *Store) Create(a model.Analysis) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[a.ID] = a
}

func (s *Store) Get(id string) (model.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.items[id]
	if !ok {
		return model.Analysis{}, ErrNotFound
	}
	return a, nil
}

// Update применяет fn к заявке под блокировкой
func (s *Store) Update(id string, fn func(a *model.Analysis)) (model.Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.items[id]
	if !ok {
		return model.Analysis{}, ErrNotFound
	}
	fn(&a)
	s.items[id] = a
	return a, nil
}

// ByWallet возвращает анализы кошелька, новые первыми
func (s *Store) ByWallet(address string) []model.Analysis {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Analysis, 0)
	for _, a := range s.items {
		if a.WalletAddress == address {
			out = append(out, a)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].UploadTime.After(out[j].UploadTime)
	})
	return out
}
