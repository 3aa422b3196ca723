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

	"github.com/Freeeeeet/health_wallet/internal/app"
	"github.com/Freeeeeet/health_wallet/internal/config"
	"github.com/Freeeeeet/health_wallet/internal/doctor"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := app.NewLogger(cfg.Environment, "doctor-backend")
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	handler := doctor.NewHandler(doctor.NewStore(), logger)

	server := &http.Server{
		Addr:    ":" + cfg.DoctorPort,
		Handler: doctor.NewRouter(handler, logger),
	}

	go func() {
		logger.Info("🏥 Doctor Backend running", zap.String("port", cfg.DoctorPort))
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
