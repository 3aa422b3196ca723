package handlers

import (
	"net/http"

	"github.com/Freeeeeet/health_wallet/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	walletService   *service.WalletService
	accessService   *service.AccessService
	recordService   *service.RecordService
	analysisService *service.AnalysisService
	userService     *service.UserService
	chatService     *service.ChatService
	http            *http.Client
	explorerURL     string
	logger          *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	walletService *service.WalletService,
	accessService *service.AccessService,
	recordService *service.RecordService,
	analysisService *service.AnalysisService,
	userService *service.UserService,
	chatService *service.ChatService,
	explorerURL string,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		walletService:   walletService,
		accessService:   accessService,
		recordService:   recordService,
		analysisService: analysisService,
		userService:     userService,
		chatService:     chatService,
		http:            &http.Client{},
		explorerURL:     explorerURL,
		logger:          logger,
	}
}
