package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Freeeeeet/health_wallet/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// AnalyzeCommand - подпись к файлу, запускающая AI анализ
const AnalyzeCommand = "/analyze"

// MatchDocument - сообщения с файлом
func MatchDocument(update *models.Update) bool {
	return update.Message != nil && update.Message.Document != nil
}

// HandleDocument загружает файл как запись или отправляет на AI анализ,
// если в подписи указана команда /analyze <type>
func (h *Handlers) HandleDocument(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !MatchDocument(update) {
		return
	}
	chatID := update.Message.Chat.ID
	doc := update.Message.Document

	if analysisType, ok := AnalysisTypeFromCaption(update.Message.Caption); ok {
		h.analyze(ctx, b, chatID, doc, analysisType)
		return
	}

	records, err := h.recordService.Upload(ctx, []service.UploadedFile{{Name: doc.FileName, Size: doc.FileSize}})
	if err != nil {
		h.sendError(ctx, b, chatID, err)
		return
	}
	for _, r := range records {
		h.sendMessage(ctx, b, chatID, "📤 Uploaded\n\n"+FormatRecord(r), nil)
	}
}

// AnalysisTypeFromCaption разбирает "/analyze <type>". Без типа используется basic.
func AnalysisTypeFromCaption(caption string) (string, bool) {
	fields := strings.Fields(caption)
	if len(fields) == 0 || fields[0] != AnalyzeCommand {
		return "", false
	}
	if len(fields) == 1 {
		return "basic", true
	}
	return strings.ToLower(fields[1]), true
}

func (h *Handlers) analyze(ctx context.Context, b *bot.Bot, chatID int64, doc *models.Document, analysisType string) {
	if doc.FileSize > service.MaxRecordSize {
		h.sendError(ctx, b, chatID, service.ErrFileTooLarge)
		return
	}

	h.sendMessage(ctx, b, chatID, "⏳ Uploading report for AI analysis...", nil)

	body, err := h.download(ctx, b, doc.FileID)
	if err != nil {
		h.logger.Error("Failed to download document", zap.String("file_id", doc.FileID), zap.Error(err))
		h.sendMessage(ctx, b, chatID, "❌ Failed to download file", nil)
		return
	}
	defer body.Close()

	analysis, err := h.analysisService.PayAndAnalyze(ctx, service.AnalysisFile{
		Name:    doc.FileName,
		Size:    doc.FileSize,
		Content: body,
	}, analysisType)
	if err != nil {
		h.logger.Warn("AI analysis failed", zap.String("file", doc.FileName), zap.Error(err))
		h.sendError(ctx, b, chatID, err)
		return
	}

	h.sendMessage(ctx, b, chatID, FormatAnalysis(*analysis), ExplorerKeyboard(h.explorerURL, analysis.TransactionHash))
}

// download скачивает файл с серверов Telegram
func (h *Handlers) download(ctx context.Context, b *bot.Bot, fileID string) (io.ReadCloser, error) {
	file, err := b.GetFile(ctx, &bot.GetFileParams{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.FileDownloadLink(file), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := h.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("download file: unexpected status %d", resp.StatusCode)
	}
	return resp.Body, nil
}
