package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Freeeeeet/health_wallet/internal/analysis"
	"github.com/Freeeeeet/health_wallet/internal/app"
	"github.com/Freeeeeet/health_wallet/internal/config"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Мок проверки оплаты: 2 секунды и 90% успешных платежей
const (
	verifyDelay       = 2 * time.Second
	verifySuccessRate = 0.9
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := app.NewLogger(cfg.Environment, "analysis-backend")
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	handler := analysis.NewHandler(
		analysis.NewStore(),
		analysis.NewFileStore(cfg.UploadDir),
		analysis.NewMockVerifier(verifyDelay, verifySuccessRate, logger),
		cfg.Chain,
		logger,
	)

	server := &http.Server{
		Addr:    ":" + cfg.AnalysisPort,
		Handler: analysis.NewRouter(handler, logger),
	}

	go func() {
		logger.Info("🚀 AI Analysis Backend running", zap.String("port", cfg.AnalysisPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
		return
	}
	logger.Info("Server shut down")
}
