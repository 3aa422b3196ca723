package handlers

import (
	"context"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/Freeeeeet/health_wallet/internal/model"
	"github.com/Freeeeeet/health_wallet/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const (
	// DefaultAuditLimit - сколько записей журнала показывает /audit без аргумента
	DefaultAuditLimit = 10
	// DefaultHistoryLimit - сколько сообщений показывает /history
	DefaultHistoryLimit = 20
)

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	if from := update.Message.From; from != nil {
		h.userService.RegisterUser(ctx, from.ID, from.Username, from.FirstName, from.LastName)
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, h.dashboardText(), nil)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, HelpText, nil)
}

// HelpText - справка по командам
const HelpText = "📚 <b>Commands</b>\n\n" +
	"<b>Wallet</b>\n" +
	"/connect - Connect wallet\n" +
	"/disconnect - Disconnect wallet\n\n" +
	"<b>Access requests</b>\n" +
	"/pending - Pending doctor requests\n" +
	"/approved - Approved requests\n" +
	"/approve &lt;id&gt; - Grant access on blockchain\n" +
	"/reject &lt;id&gt; - Reject request\n" +
	"/audit [n] - Access history\n" +
	"/history - Recent chat\n\n" +
	"<b>Records</b>\n" +
	"/records - My medical records\n" +
	"/view &lt;id&gt; - Mark record as viewed\n" +
	"/share &lt;id&gt; - Share record\n" +
	"/delete &lt;id&gt; - Delete record\n" +
	"Send a file to upload it as a private record.\n\n" +
	"<b>AI analysis</b>\n" +
	"Send a report with caption <code>/analyze basic|detailed|comprehensive</code>\n" +
	"/analyses - Analysis history"

func (h *Handlers) dashboardText() string {
	wallet := "🔴 Wallet not connected. Use /connect"
	if address, ok := h.walletService.Address(); ok {
		wallet = "🟢 Wallet: <code>" + service.ShortAddress(address) + "</code>"
	}

	stats := h.accessService.Stats()
	return fmt.Sprintf(
		"🏥 <b>Health Records Wallet</b>\n\n"+
			"%s\n\n"+
			"⏳ Pending requests: %d\n"+
			"✅ Approved requests: %d\n"+
			"📁 Records: %d\n\n"+
			"/help - Commands",
		wallet,
		stats.Pending,
		stats.Approved,
		len(h.recordService.List()),
	)
}

// ============ Кошелёк ============

// HandleConnect обрабатывает команду /connect
func (h *Handlers) HandleConnect(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	// Результат подключения сервис сообщает сам
	if _, err := h.walletService.Connect(ctx); err != nil {
		h.logger.Warn("Connect command failed", zap.Error(err))
	}
}

// HandleDisconnect обрабатывает команду /disconnect
func (h *Handlers) HandleDisconnect(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.walletService.Disconnect(ctx)
}

// ============ Заявки на доступ ============

// HandlePending показывает ожидающие заявки с кнопками
func (h *Handlers) HandlePending(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	pending := h.accessService.Pending()
	if len(pending) == 0 {
		h.sendMessage(ctx, b, chatID, "📭 No pending access requests", nil)
		return
	}

	for _, req := range pending {
		h.sendMessage(ctx, b, chatID, FormatRequest(req), RequestKeyboard(req.ID))
	}
}

// HandleApproved показывает одобренные заявки
func (h *Handlers) HandleApproved(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	approved := h.accessService.Approved()
	if len(approved) == 0 {
		h.sendMessage(ctx, b, chatID, "📭 No approved requests yet", nil)
		return
	}

	for _, req := range approved {
		h.sendMessage(ctx, b, chatID, FormatRequest(req), ExplorerKeyboard(h.explorerURL, req.TxHash))
	}
}

// HandleApprove обрабатывает команду /approve <id>
func (h *Handlers) HandleApprove(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	id, err := firstArg(update.Message.Text)
	if err != nil {
		h.sendError(ctx, b, update.Message.Chat.ID, err)
		return
	}
	h.approve(ctx, b, update.Message.Chat.ID, id)
}

// HandleReject обрабатывает команду /reject <id>
func (h *Handlers) HandleReject(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	id, err := firstArg(update.Message.Text)
	if err != nil {
		h.sendError(ctx, b, update.Message.Chat.ID, err)
		return
	}
	h.reject(ctx, b, update.Message.Chat.ID, id)
}

func (h *Handlers) approve(ctx context.Context, b *bot.Bot, chatID int64, id string) {
	approved, err := h.accessService.Approve(ctx, id)
	if err != nil {
		h.logger.Warn("Approve failed", zap.String("request_id", id), zap.Error(err))
		h.sendError(ctx, b, chatID, err)
		return
	}

	h.sendMessage(ctx, b, chatID, FormatRequest(approved), ExplorerKeyboard(h.explorerURL, approved.TxHash))
}

func (h *Handlers) reject(ctx context.Context, b *bot.Bot, chatID int64, id string) {
	if _, err := h.accessService.Reject(ctx, id); err != nil {
		h.logger.Warn("Reject failed", zap.String("request_id", id), zap.Error(err))
		h.sendError(ctx, b, chatID, err)
	}
}

// HandleAudit показывает последние записи журнала: /audit [n]
func (h *Handlers) HandleAudit(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	limit := DefaultAuditLimit
	if args := CommandArgs(update.Message.Text); len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			limit = n
		}
	}

	h.sendMessage(ctx, b, chatID, AuditText(h.accessService.AuditLog(), limit), nil)
}

// ============ Медицинские записи ============

// HandleRecords показывает медицинские записи
func (h *Handlers) HandleRecords(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	records := h.recordService.List()
	if len(records) == 0 {
		h.sendMessage(ctx, b, chatID, "📭 No medical records yet. Send a file to upload one.", nil)
		return
	}

	parts := make([]string, 0, len(records))
	for _, r := range records {
		parts = append(parts, FormatRecord(r))
	}
	h.sendMessage(ctx, b, chatID, "📁 <b>Medical records</b>\n\n"+strings.Join(parts, "\n\n"), nil)
}

// HandleView обрабатывает /view <id>
func (h *Handlers) HandleView(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.recordCommand(ctx, b, update, func(id string) error {
		_, err := h.recordService.View(ctx, id)
		return err
	})
}

// HandleShare обрабатывает /share <id>
func (h *Handlers) HandleShare(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.recordCommand(ctx, b, update, func(id string) error {
		_, err := h.recordService.Share(ctx, id)
		return err
	})
}

// HandleDelete обрабатывает /delete <id>
func (h *Handlers) HandleDelete(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.recordCommand(ctx, b, update, func(id string) error {
		return h.recordService.Delete(ctx, id)
	})
}

func (h *Handlers) recordCommand(ctx context.Context, b *bot.Bot, update *models.Update, run func(id string) error) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	id, err := firstArg(update.Message.Text)
	if err == nil {
		err = run(id)
	}
	if err != nil {
		h.sendError(ctx, b, chatID, err)
	}
}

// ============ AI анализ ============

// HandleAnalyses показывает историю анализов кошелька
func (h *Handlers) HandleAnalyses(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	analyses, err := h.analysisService.History(ctx)
	if err != nil {
		h.logger.Warn("Failed to load analysis history", zap.Error(err))
		h.sendMessage(ctx, b, chatID, ErrorMessage(err), nil)
		return
	}
	if len(analyses) == 0 {
		h.sendMessage(ctx, b, chatID, "📭 No analyses yet", nil)
		return
	}

	for _, a := range analyses {
		h.sendMessage(ctx, b, chatID, FormatAnalysis(a), nil)
	}
}

// HandleHistory показывает последние сообщения чата
func (h *Handlers) HandleHistory(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, HistoryText(h.chatService.History(DefaultHistoryLimit)), nil)
}

// HistoryText собирает историю чата, старые сообщения первыми
func HistoryText(messages []model.ChatMessage) string {
	if len(messages) == 0 {
		return "📭 Chat history is empty"
	}

	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		who := "🤖"
		if m.Role == model.ChatRoleUser {
			who = "👤"
		}
		lines = append(lines, fmt.Sprintf("%s <i>%s</i> %s", who, FormatDateTime(m.Timestamp), html.EscapeString(m.Text)))
	}
	return "💬 <b>Chat history</b>\n\n" + strings.Join(lines, "\n")
}

// AuditText собирает последние limit записей журнала
func AuditText(entries []model.AuditLogEntry, limit int) string {
	if len(entries) == 0 {
		return "📭 Audit log is empty"
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, FormatAuditEntry(e))
	}
	return "📜 <b>Access history</b>\n\n" + strings.Join(lines, "\n")
}
