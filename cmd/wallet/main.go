package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Freeeeeet/health_wallet/internal/app"
	"github.com/Freeeeeet/health_wallet/internal/client"
	"github.com/Freeeeeet/health_wallet/internal/config"
	"github.com/Freeeeeet/health_wallet/internal/controller"
	"github.com/Freeeeeet/health_wallet/internal/controller/handlers"
	"github.com/Freeeeeet/health_wallet/internal/notify"
	"github.com/Freeeeeet/health_wallet/internal/service"
	"github.com/Freeeeeet/health_wallet/internal/state"
	"github.com/Freeeeeet/health_wallet/internal/wallet"
	"github.com/go-telegram/bot"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := app.NewLogger(cfg.Environment, "wallet")
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Wallet stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting health records wallet",
		zap.String("environment", cfg.Environment),
		zap.String("storage", cfg.StorageDriver),
		zap.String("chain_id", cfg.Chain.ChainID),
	)

	// Локальное хранилище и восстановление состояния
	storage, err := app.OpenStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer storage.Close()

	appState := state.New()
	persister := state.NewPersister(storage, logger)
	if err := persister.Load(ctx, appState); err != nil {
		return err
	}

	// Кошелёк
	provider, err := wallet.DialProvider(ctx, cfg.ProviderURLs, logger)
	if err != nil {
		return err
	}
	defer provider.Close()

	// Уведомления: всегда в лог и историю чата, в Telegram если задан токен
	chatService := service.NewChatService(appState)
	notifiers := notify.Multi{notify.NewLogNotifier(logger), chatService}

	var telegram *bot.Bot
	if cfg.TelegramToken != "" {
		telegram, err = bot.New(cfg.TelegramToken, controller.Options(cfg.TelegramChatID, logger)...)
		if err != nil {
			return err
		}
		notifiers = append(notifiers, notify.NewTelegramNotifier(telegram, cfg.TelegramChatID, logger))
	}

	// Сервисы
	network := wallet.NewNetworkAdapter(provider, cfg.Chain, notifiers, logger)
	submitter := wallet.NewSubmitter(provider, notifiers, logger, cfg.TxMaxAttempts, wallet.DefaultBaseDelay)

	httpClient := &http.Client{Timeout: 30 * time.Second}
	analysisClient := client.NewAnalysisClient(cfg.AnalysisBackendURL, httpClient)
	doctorClient := client.NewDoctorClient(cfg.DoctorBackendURL, httpClient)

	walletService := service.NewWalletService(provider, network, appState, persister, notifiers, logger)
	accessService := service.NewAccessService(appState, walletService, network, submitter, persister, notifiers, logger, cfg.ContractAddress)
	userService := service.NewUserService(appState, persister, logger)
	recordService := service.NewRecordService(appState, persister, notifiers, logger)
	analysisService := service.NewAnalysisService(
		appState,
		walletService,
		network,
		submitter,
		analysisClient,
		persister,
		notifiers,
		logger,
		cfg.TreasuryAddress,
		cfg.Chain.NativeCurrency.Decimals,
	)

	accessService.SeedSamples(ctx)
	app.CheckBackends(ctx, analysisClient, doctorClient, cfg.Chain, logger)

	// Автосохранение состояния
	scheduler := app.NewScheduler(persister, appState, app.DefaultSaveInterval, logger)
	scheduler.Start(ctx)
	defer scheduler.Stop(context.Background())

	if telegram == nil {
		logger.Warn("⚠️ TELEGRAM_TOKEN not set, running without bot")
		<-ctx.Done()
		logger.Info("Shutting down...")
		return nil
	}

	var explorerURL string
	if len(cfg.Chain.BlockExplorerURLs) > 0 {
		explorerURL = cfg.Chain.BlockExplorerURLs[0]
	}

	botController := controller.NewBotController(
		telegram,
		handlers.NewHandlers(walletService, accessService, recordService, analysisService, userService, chatService, explorerURL, logger),
		logger,
	)
	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Warn("Failed to register bot commands menu", zap.Error(err))
	}

	// Блокируется до сигнала
	botController.Start(ctx)
	logger.Info("Shutting down...")
	return nil
}
