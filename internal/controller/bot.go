package controller

import (
	"context"

	"github.com/Freeeeeet/health_wallet/internal/controller/handlers"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot      *bot.Bot
	handlers *handlers.Handlers
	logger   *zap.Logger
}

func NewBotController(botInstance *bot.Bot, cmdHandlers *handlers.Handlers, logger *zap.Logger) *BotController {
	return &BotController{
		bot:      botInstance,
		handlers: cmdHandlers,
		logger:   logger,
	}
}

// Options - опции бота: контекст чата и ограничение владельцем
func Options(ownerChatID int64, logger *zap.Logger) []bot.Option {
	return []bot.Option{
		bot.WithMiddlewares(handlers.OwnerOnly(ownerChatID, logger), handlers.ChatContext),
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			logger.Debug("Unhandled update", zap.Int64("update_id", update.ID))
		}),
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	h := c.handlers

	commands := map[string]bot.HandlerFunc{
		"/start":      h.HandleStart,
		"/help":       h.HandleHelp,
		"/connect":    h.HandleConnect,
		"/disconnect": h.HandleDisconnect,
		"/pending":    h.HandlePending,
		"/approved":   h.HandleApproved,
		"/records":    h.HandleRecords,
		"/analyses":   h.HandleAnalyses,
		"/history":    h.HandleHistory,
	}
	for pattern, handler := range commands {
		c.bot.RegisterHandler(bot.HandlerTypeMessageText, pattern, bot.MatchTypeExact, handler, h.RecordHistory)
	}

	// Команды с аргументами
	withArgs := map[string]bot.HandlerFunc{
		"/approve ": h.HandleApprove,
		"/reject ":  h.HandleReject,
		"/view ":    h.HandleView,
		"/share ":   h.HandleShare,
		"/delete ":  h.HandleDelete,
		"/audit":    h.HandleAudit,
	}
	for pattern, handler := range withArgs {
		c.bot.RegisterHandler(bot.HandlerTypeMessageText, pattern, bot.MatchTypePrefix, handler, h.RecordHistory)
	}

	// Файлы: загрузка записей и AI анализ
	c.bot.RegisterHandlerMatchFunc(handlers.MatchDocument, h.HandleDocument, h.RecordHistory)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, h.HandleCallbackQuery, h.RecordHistory)

	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🏥 Dashboard"},
		{Command: "help", Description: "❓ Commands"},
		{Command: "connect", Description: "🔗 Connect wallet"},
		{Command: "disconnect", Description: "🔌 Disconnect wallet"},
		{Command: "pending", Description: "⏳ Pending access requests"},
		{Command: "approved", Description: "✅ Approved access requests"},
		{Command: "audit", Description: "📜 Access history"},
		{Command: "records", Description: "📁 Medical records"},
		{Command: "analyses", Description: "🤖 AI analysis history"},
		{Command: "history", Description: "💬 Recent chat"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота и блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
}
