package app

import (
	"context"
	"sync"
	"time"

	"github.com/Freeeeeet/health_wallet/internal/state"
	"go.uber.org/zap"
)

// DefaultSaveInterval - период автосохранения состояния
const DefaultSaveInterval = 30 * time.Second

// Scheduler периодически сохраняет состояние кошелька
type Scheduler struct {
	persister *state.Persister
	state     *state.AppState
	interval  time.Duration
	logger    *zap.Logger
	stopChan  chan struct{}
	wg        sync.WaitGroup
	stopOnce  sync.Once
}

func NewScheduler(persister *state.Persister, st *state.AppState, interval time.Duration, logger *zap.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultSaveInterval
	}
	return &Scheduler{
		persister: persister,
		state:     st,
		interval:  interval,
		logger:    logger,
		stopChan:  make(chan struct{}),
	}
}

// Start запускает автосохранение
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler", zap.Duration("save_interval", s.interval))

	s.wg.Add(1)
	go s.runSaveTask(ctx)
}

// Stop останавливает автосохранение и сохраняет состояние последний раз
func (s *Scheduler) Stop(ctx context.Context) {
	s.stopOnce.Do(func() {
		s.logger.Info("Stopping background scheduler")
		close(s.stopChan)
		s.wg.Wait()

		if err := s.persister.Save(ctx, s.state); err != nil {
			s.logger.Error("Failed to save state on shutdown", zap.Error(err))
			return
		}
		s.logger.Info("State saved on shutdown")
	})
}

func (s *Scheduler) runSaveTask(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.save(ctx)
		case <-s.stopChan:
			s.logger.Info("Save task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Save task cancelled")
			return
		}
	}
}

func (s *Scheduler) save(ctx context.Context) {
	if err := s.persister.Save(ctx, s.state); err != nil {
		s.logger.Error("Failed to save state", zap.Error(err))
		return
	}
	s.logger.Debug("State saved")
}
