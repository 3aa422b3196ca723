package handlers

import (
	"errors"

	"github.com/Freeeeeet/health_wallet/internal/client"
	"github.com/Freeeeeet/health_wallet/internal/service"
	"github.com/Freeeeeet/health_wallet/internal/state"
	"github.com/Freeeeeet/health_wallet/internal/wallet"
)

var ErrMissingArgument = errors.New("missing argument")

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingArgument):
		return "❌ Missing argument. See /help"
	case errors.Is(err, state.ErrRequestNotFound):
		return "❌ Access request not found"
	case errors.Is(err, state.ErrRecordNotFound):
		return "❌ Medical record not found"
	case errors.Is(err, service.ErrFileTooLarge):
		return "❌ File size exceeds 10MB limit"
	case errors.Is(err, service.ErrUnsupportedFile):
		return "❌ Only PDF, JPG, PNG and DOCX reports are accepted"
	case errors.Is(err, service.ErrUnknownAnalysisType):
		return "❌ Unknown analysis type. Use basic, detailed or comprehensive"
	case errors.Is(err, wallet.ErrWalletNotConnected):
		return "⚠️ Wallet not connected. Use /connect"
	case errors.Is(err, wallet.ErrUserRejected):
		return "ℹ️ Transaction rejected by user"
	case errors.Is(err, wallet.ErrChainSwitchFailed):
		return "❌ Failed to switch network"
	case errors.Is(err, wallet.ErrSubmissionFailed):
		return "❌ Transaction failed"
	case errors.Is(err, client.ErrTimeout):
		return "⏳ Analysis timeout"
	case errors.Is(err, client.ErrAnalysisFailed):
		return "❌ Analysis failed"
	default:
		return "❌ Something went wrong"
	}
}

// notified - ошибки, о которых сервисы уже сообщили через уведомления
func notified(err error) bool {
	return errors.Is(err, wallet.ErrWalletNotConnected) ||
		errors.Is(err, wallet.ErrUserRejected) ||
		errors.Is(err, wallet.ErrChainSwitchFailed) ||
		errors.Is(err, wallet.ErrSubmissionFailed) ||
		errors.Is(err, wallet.ErrNoAccounts) ||
		errors.Is(err, client.ErrTimeout) ||
		errors.Is(err, client.ErrAnalysisFailed) ||
		errors.Is(err, service.ErrFileTooLarge) ||
		errors.Is(err, service.ErrUnsupportedFile)
}
