package handlers

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/Freeeeeet/health_wallet/internal/model"
	"github.com/Freeeeeet/health_wallet/internal/service"
)

// FormatDateTime форматирует дату и время
func FormatDateTime(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}

// FormatFileSize форматирует размер файла
func FormatFileSize(size int64) string {
	const unit = 1024
	switch {
	case size < unit:
		return fmt.Sprintf("%d B", size)
	case size < unit*unit:
		return fmt.Sprintf("%.1f KB", float64(size)/unit)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(unit*unit))
	}
}

// FormatRequest форматирует заявку врача
func FormatRequest(r model.AccessRequest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "👨‍⚕️ <b>%s</b>\n", html.EscapeString(r.DoctorName))
	fmt.Fprintf(&sb, "🩺 %s\n", html.EscapeString(r.Specialization))
	fmt.Fprintf(&sb, "📄 %s\n", html.EscapeString(r.RequestedRecord))
	fmt.Fprintf(&sb, "📅 %s", r.RequestDate)

	if r.ApprovedDate != nil {
		fmt.Fprintf(&sb, "\n✅ Approved %s", FormatDateTime(*r.ApprovedDate))
	}
	if r.TxHash != "" {
		fmt.Fprintf(&sb, "\n🔗 <code>%s</code>", r.TxHash)
	}
	return sb.String()
}

// FormatAuditEntry форматирует запись журнала аудита
func FormatAuditEntry(e model.AuditLogEntry) string {
	line := fmt.Sprintf("%s %s · %s · %s · %s",
		auditEmoji(e.Action),
		e.Action,
		html.EscapeString(e.Doctor),
		html.EscapeString(e.Record),
		FormatDateTime(e.Timestamp),
	)
	if e.TxHash != "" {
		line += " · " + service.ShortAddress(e.TxHash)
	}
	return line
}

// FormatRecord форматирует медицинскую запись
func FormatRecord(r model.MedicalRecord) string {
	status := "🔒"
	if r.Status == model.RecordStatusShared {
		status = "🔓"
	}
	return fmt.Sprintf("%s <b>%s</b> (%s, %s)\n<code>%s</code> · %s",
		status,
		html.EscapeString(r.FileName),
		r.Type,
		FormatFileSize(r.FileSize),
		r.ID,
		FormatDateTime(r.UploadDate),
	)
}

// FormatAnalysis форматирует анализ с результатом, если он готов
func FormatAnalysis(a model.Analysis) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🤖 <b>%s</b> · %s · %s SHM\n", html.EscapeString(a.OriginalName), a.AnalysisType, a.Price)
	fmt.Fprintf(&sb, "📊 Status: %s", a.Status)

	if a.Result == nil {
		return sb.String()
	}

	fmt.Fprintf(&sb, "\n\n%s\n🎯 Confidence: %.0f%%", html.EscapeString(a.Result.Analysis), a.Result.Confidence*100)
	if len(a.Result.Recommendations) > 0 {
		sb.WriteString("\n\n<b>Recommendations</b>")
		for _, rec := range a.Result.Recommendations {
			fmt.Fprintf(&sb, "\n• %s", html.EscapeString(rec))
		}
	}
	if len(a.Result.RiskFactors) > 0 {
		sb.WriteString("\n\n<b>Risk factors</b>")
		for _, rf := range a.Result.RiskFactors {
			fmt.Fprintf(&sb, "\n• %s: %s", html.EscapeString(rf.Factor), rf.Level)
		}
	}
	if a.Result.Disclaimer != "" {
		fmt.Fprintf(&sb, "\n\n<i>%s</i>", html.EscapeString(a.Result.Disclaimer))
	}
	return sb.String()
}

func auditEmoji(action string) string {
	switch action {
	case model.AuditActionApproved:
		return "✅"
	case model.AuditActionRejected:
		return "❌"
	case model.AuditActionUploaded:
		return "📤"
	case model.AuditActionViewed:
		return "👁"
	case model.AuditActionShared:
		return "🔓"
	case model.AuditActionDeleted:
		return "🗑"
	case model.AuditActionDownloaded:
		return "📥"
	case model.AuditActionAnalysis:
		return "🤖"
	default:
		return "•"
	}
}
