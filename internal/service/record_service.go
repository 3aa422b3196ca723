package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Freeeeeet/health_wallet/internal/model"
	"github.com/Freeeeeet/health_wallet/internal/notify"
	"github.com/Freeeeeet/health_wallet/internal/state"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxRecordSize - ограничение на размер загружаемого файла
const MaxRecordSize = 10 * 1024 * 1024

var ErrFileTooLarge = errors.New("file size exceeds 10MB limit")

// UploadedFile - метаданные загружаемого файла
type UploadedFile struct {
	Name string
	Size int64
}

type RecordService struct {
	state    *state.AppState
	saver    StateSaver
	notifier notify.Notifier
	logger   *zap.Logger
	now      func() time.Time
}

func NewRecordService(st *state.AppState, saver StateSaver, notifier notify.Notifier, logger *zap.Logger) *RecordService {
	return &RecordService{
		state:    st,
		saver:    saver,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *RecordService) List() []model.MedicalRecord {
	return s.state.MedicalRecords()
}

// Upload добавляет файлы как приватные записи. Если хоть один файл слишком большой, не добавляется ничего.
func (s *RecordService) Upload(ctx context.Context, files []UploadedFile) ([]model.MedicalRecord, error) {
	for _, f := range files {
		if f.Size > MaxRecordSize {
			notify.Error(ctx, s.notifier, "File size exceeds 10MB limit")
			return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, f.Name)
		}
	}

	now := s.now()
	records := make([]model.MedicalRecord, 0, len(files))
	for _, f := range files {
		records = append(records, model.MedicalRecord{
			ID:         uuid.NewString(),
			FileName:   f.Name,
			FileSize:   f.Size,
			UploadDate: now,
			Status:     model.RecordStatusPrivate,
			Type:       model.FileType(f.Name),
		})
	}

	s.state.AddRecords(records, func(r model.MedicalRecord) model.AuditLogEntry {
		return s.ownAction(model.AuditActionUploaded, r.FileName, now)
	})
	s.saver.SaveAsync(ctx, s.state)

	s.logger.Info("Medical records uploaded", zap.Int("count", len(records)))
	notify.Success(ctx, s.notifier, "Files uploaded successfully!")

	return records, nil
}

func (s *RecordService) View(ctx context.Context, id string) (model.MedicalRecord, error) {
	record, ok := s.state.FindRecord(id)
	if !ok {
		return model.MedicalRecord{}, fmt.Errorf("%w: %s", state.ErrRecordNotFound, id)
	}

	s.state.AppendAudit(s.ownAction(model.AuditActionViewed, record.FileName, s.now()))
	s.saver.SaveAsync(ctx, s.state)

	notify.Info(ctx, s.notifier, "Viewing %s", record.FileName)
	return record, nil
}

func (s *RecordService) Share(ctx context.Context, id string) (model.MedicalRecord, error) {
	record, err := s.state.SetRecordStatus(id, model.RecordStatusShared)
	if err != nil {
		return model.MedicalRecord{}, err
	}

	entry := s.ownAction(model.AuditActionShared, record.FileName, s.now())
	entry.Doctor = "System"
	s.state.AppendAudit(entry)
	s.saver.SaveAsync(ctx, s.state)

	notify.Info(ctx, s.notifier, "Sharing options for %s", record.FileName)
	return record, nil
}

func (s *RecordService) Delete(ctx context.Context, id string) error {
	record, err := s.state.DeleteRecord(id)
	if err != nil {
		return err
	}

	s.state.AppendAudit(s.ownAction(model.AuditActionDeleted, record.FileName, s.now()))
	s.saver.SaveAsync(ctx, s.state)

	s.logger.Info("Medical record deleted", zap.String("record_id", id))
	notify.Success(ctx, s.notifier, "Record deleted successfully")
	return nil
}

func (s *RecordService) ownAction(action, fileName string, at time.Time) model.AuditLogEntry {
	return model.AuditLogEntry{
		Action:    action,
		Doctor:    "You",
		Record:    fileName,
		Timestamp: at,
		IPAddress: model.LocalIPAddress,
	}
}
