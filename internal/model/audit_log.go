package model

import "time"

// AuditLogEntry is a single record of a state-changing action.
// Entries are append-only and never mutated once written.
type AuditLogEntry struct {
	Action    string    `json:"action"`
	Doctor    string    `json:"doctor"`
	Record    string    `json:"record"`
	Timestamp time.Time `json:"timestamp"`
	IPAddress string    `json:"ipAddress,omitempty"`
	TxHash    string    `json:"txHash,omitempty"`
}

// Audit actions
const (
	AuditActionApproved   = "Approved"
	AuditActionRejected   = "Rejected"
	AuditActionUploaded   = "Uploaded"
	AuditActionViewed     = "Viewed"
	AuditActionShared     = "Shared"
	AuditActionDeleted    = "Deleted"
	AuditActionDownloaded = "Downloaded"
	AuditActionAnalysis   = "AI Analysis"
)

// LocalIPAddress is recorded for actions performed from this device
const LocalIPAddress = "192.168.1.100"
