package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Freeeeeet/health_wallet/internal/notify"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = 2 * time.Second
)

// Tx - параметры eth_sendTransaction
type Tx struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Data  string `json:"data,omitempty"`
	Value string `json:"value,omitempty"`
	Gas   string `json:"gas,omitempty"`
}

// Submitter отправляет транзакцию с повторами и экспоненциальной паузой.
// Отказ пользователя (4001) не повторяется.
type Submitter struct {
	provider    Provider
	notifier    notify.Notifier
	logger      *zap.Logger
	maxAttempts int
	baseDelay   time.Duration
}

func NewSubmitter(provider Provider, notifier notify.Notifier, logger *zap.Logger, maxAttempts int, baseDelay time.Duration) *Submitter {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	if baseDelay <= 0 {
		baseDelay = DefaultBaseDelay
	}
	return &Submitter{
		provider:    provider,
		notifier:    notifier,
		logger:      logger,
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
	}
}

// Send возвращает хэш транзакции
func (s *Submitter) Send(ctx context.Context, tx Tx) (string, error) {
	backoff := s.backoff(ctx)

	var (
		txHash  string
		attempt int
		lastErr error
	)

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		raw, err := s.provider.Request(ctx, "eth_sendTransaction", tx)
		if err != nil {
			lastErr = err
			if hasCode(err, CodeUserRejected) {
				return ErrUserRejected
			}
			s.logger.Warn("Transaction attempt failed",
				zap.Int("attempt", attempt),
				zap.Int("max_attempts", s.maxAttempts),
				zap.String("to", tx.To),
				zap.Error(err),
			)
			return retry.RetryableError(err)
		}

		// Провайдер принял транзакцию: повтор отправил бы её ещё раз
		if err := json.Unmarshal(raw, &txHash); err != nil {
			return fmt.Errorf("%w: decode tx hash: %w", ErrSubmissionFailed, err)
		}
		return nil
	})

	switch {
	case err == nil:
		s.logger.Info("Transaction sent",
			zap.String("tx_hash", txHash),
			zap.String("to", tx.To),
			zap.Int("attempts", attempt),
		)
		return txHash, nil
	case errors.Is(err, ErrUserRejected):
		return "", ErrUserRejected
	case errors.Is(err, ErrSubmissionFailed):
		s.logger.Error("Transaction accepted but result is unreadable", zap.String("to", tx.To), zap.Error(err))
		return "", err
	case ctx.Err() != nil:
		return "", fmt.Errorf("send transaction: %w", ctx.Err())
	default:
		if lastErr == nil {
			lastErr = err
		}
		return "", fmt.Errorf("%w: %w", ErrSubmissionFailed, lastErr)
	}
}

// backoff: base, 2*base, 4*base... не больше maxAttempts-1 пауз.
// Перед каждой паузой пользователь видит предупреждение.
func (s *Submitter) backoff(ctx context.Context) retry.Backoff {
	b := retry.WithMaxRetries(uint64(s.maxAttempts-1), retry.NewExponential(s.baseDelay))

	return retry.BackoffFunc(func() (time.Duration, bool) {
		next, stop := b.Next()
		if stop {
			return 0, true
		}
		notify.Warning(ctx, s.notifier, "Network busy, retrying in %s...", next)
		return next, false
	})
}
