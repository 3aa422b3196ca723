package app

import (
	"context"
	"strings"
	"time"

	"github.com/Freeeeeet/health_wallet/internal/client"
	"github.com/Freeeeeet/health_wallet/internal/model"
	"go.uber.org/zap"
)

// BackendStatus - результат проверки мок-бэкендов при старте
type BackendStatus struct {
	AnalysisUp    bool
	DoctorUp      bool
	ChainMismatch bool
}

// CheckBackends проверяет доступность бэкендов и совпадение сети.
// Недоступный бэкенд не мешает старту кошелька.
func CheckBackends(ctx context.Context, analysis *client.AnalysisClient, doctor *client.DoctorClient, chain model.Chain, logger *zap.Logger) BackendStatus {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var status BackendStatus

	remote, err := analysis.Config(ctx)
	if err != nil {
		logger.Warn("⚠️ AI analysis backend unavailable", zap.Error(err))
	} else {
		status.AnalysisUp = true
		if !strings.EqualFold(remote.ChainID, chain.ChainID) {
			status.ChainMismatch = true
			logger.Warn("⚠️ AI analysis backend uses a different chain",
				zap.String("backend_chain_id", remote.ChainID),
				zap.String("wallet_chain_id", chain.ChainID),
			)
		}
	}

	if _, err := doctor.Health(ctx); err != nil {
		logger.Warn("⚠️ Doctor backend unavailable", zap.Error(err))
	} else {
		status.DoctorUp = true
	}

	logger.Info("Backends checked",
		zap.Bool("analysis", status.AnalysisUp),
		zap.Bool("doctor", status.DoctorUp),
	)
	return status
}
