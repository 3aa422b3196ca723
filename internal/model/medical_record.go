package model

import (
	"path/filepath"
	"strings"
	"time"
)

type RecordStatus string

const (
	RecordStatusPrivate RecordStatus = "Private"
	RecordStatusShared  RecordStatus = "Shared"
)

// MedicalRecord is an uploaded file owned by the patient
type MedicalRecord struct {
	ID         string       `json:"id"`
	FileName   string       `json:"fileName"`
	FileSize   int64        `json:"fileSize"`
	UploadDate time.Time    `json:"uploadDate"`
	Status     RecordStatus `json:"status"`
	Type       string       `json:"type"`
}

// FileType classifies a file name by extension
func FileType(fileName string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), ".")) {
	case "pdf":
		return "pdf"
	case "jpg", "jpeg", "png", "gif":
		return "image"
	case "doc", "docx":
		return "document"
	default:
		return "file"
	}
}
