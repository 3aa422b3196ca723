package analysis

import (
	"context"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// PaymentVerifier проверяет, что транзакция оплатила анализ
type PaymentVerifier interface {
	Verify(ctx context.Context, txHash, price string) (bool, error)
}

// MockVerifier ничего не проверяет в сети: ждёт delay и принимает
// платёж с вероятностью successRate
type MockVerifier struct {
	delay       time.Duration
	successRate float64
	logger      *zap.Logger
}

func NewMockVerifier(delay time.Duration, successRate float64, logger *zap.Logger) *MockVerifier {
	return &MockVerifier{
		delay:       delay,
		successRate: successRate,
		logger:      logger,
	}
}

func (v *MockVerifier) Verify(ctx context.Context, txHash, price string) (bool, error) {
	v.logger.Info("Verifying transaction",
		zap.String("tx_hash", txHash),
		zap.String("price", price),
	)

	timer := time.NewTimer(v.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-timer.C:
	}

	return rand.Float64() < v.successRate, nil
}
