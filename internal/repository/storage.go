package repository

import (
	"context"
	"errors"
)

// ErrNotFound возвращается, когда ключа нет в хранилище
var ErrNotFound = errors.New("key not found")

// Storage - key/value хранилище JSON-значений ("local storage" кошелька)
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Ключи локального хранилища
const (
	KeyUser             = "dhrw_user"
	KeyWalletConnected  = "dhrw_wallet_connected"
	KeyWalletAddress    = "dhrw_wallet_address"
	KeyMedicalRecords   = "dhrw_medical_records"
	KeyAuditLogs        = "dhrw_audit_logs"
	KeyAccessRequests   = "dhrw_access_requests"
	KeyApprovedRequests = "dhrw_approved_requests"
	KeyChatHistory      = "dhrw_chat_history"
)

// IsNotFound проверяет является ли ошибка "ключ не найден"
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
