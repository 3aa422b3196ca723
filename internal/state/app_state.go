package state

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Freeeeeet/health_wallet/internal/model"
)

var (
	ErrRequestNotFound  = errors.New("access request not found")
	ErrDuplicateRequest = errors.New("access request already exists")
	ErrRecordNotFound   = errors.New("medical record not found")
)

// AppState - состояние кошелька пациента. Меняется только через методы.
type AppState struct {
	mu sync.RWMutex

	user     *model.User
	wallet   model.WalletSession
	records  []model.MedicalRecord
	audit    []model.AuditLogEntry
	pending  []model.AccessRequest
	approved []model.AccessRequest
	chat     []model.ChatMessage
}

// Snapshot - копия состояния для сохранения
type Snapshot struct {
	User             *model.User
	Wallet           model.WalletSession
	MedicalRecords   []model.MedicalRecord
	AuditLogs        []model.AuditLogEntry
	AccessRequests   []model.AccessRequest
	ApprovedRequests []model.AccessRequest
	ChatHistory      []model.ChatMessage
}

func New() *AppState {
	return &AppState{}
}

// Snapshot возвращает копию всего состояния
func (s *AppState) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		User:             copyUser(s.user),
		Wallet:           s.wallet,
		MedicalRecords:   cloneSlice(s.records),
		AuditLogs:        cloneSlice(s.audit),
		AccessRequests:   cloneSlice(s.pending),
		ApprovedRequests: cloneSlice(s.approved),
		ChatHistory:      cloneSlice(s.chat),
	}
}

// Restore заменяет состояние содержимым снимка
func (s *AppState) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = copyUser(snap.User)
	s.wallet = snap.Wallet
	s.records = cloneSlice(snap.MedicalRecords)
	s.audit = cloneSlice(snap.AuditLogs)
	s.pending = cloneSlice(snap.AccessRequests)
	s.approved = cloneSlice(snap.ApprovedRequests)
	s.chat = cloneSlice(snap.ChatHistory)
}

// ============ Пользователь и кошелёк ============

func (s *AppState) CurrentUser() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyUser(s.user)
}

func (s *AppState) SetCurrentUser(u *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = copyUser(u)
}

func (s *AppState) Wallet() model.WalletSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wallet
}

func (s *AppState) ConnectWallet(address string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wallet = model.WalletSession{Connected: true, Address: address}
}

func (s *AppState) DisconnectWallet() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wallet = model.WalletSession{}
}

// ============ Журнал аудита ============

// AuditLog возвращает записи, новые первыми
func (s *AppState) AuditLog() []model.AuditLogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.audit)
}

// AppendAudit добавляет запись в начало журнала
func (s *AppState) AppendAudit(entry model.AuditLogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prependAudit(entry)
}

// SeedAudit заполняет пустой журнал
func (s *AppState) SeedAudit(entries []model.AuditLogEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.audit) > 0 {
		return false
	}
	s.audit = cloneSlice(entries)
	return true
}

func (s *AppState) prependAudit(entry model.AuditLogEntry) {
	s.audit = append([]model.AuditLogEntry{entry}, s.audit...)
}

// ============ Заявки на доступ ============

func (s *AppState) PendingRequests() []model.AccessRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.pending)
}

func (s *AppState) ApprovedRequests() []model.AccessRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.approved)
}

// FindPending ищет заявку среди ожидающих
func (s *AppState) FindPending(id string) (model.AccessRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := indexOf(s.pending, id); i >= 0 {
		return s.pending[i], true
	}
	return model.AccessRequest{}, false
}

// AddPending добавляет новую заявку. id не должен встречаться ни в одном списке.
func (s *AppState) AddPending(req model.AccessRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if indexOf(s.pending, req.ID) >= 0 || indexOf(s.approved, req.ID) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateRequest, req.ID)
	}

	req.Status = model.RequestStatusPending
	s.pending = append(s.pending, req)
	return nil
}

// SeedRequests заполняет пустые списки демонстрационными заявками
func (s *AppState) SeedRequests(pending, approved []model.AccessRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		s.pending = cloneSlice(pending)
	}
	if len(s.approved) == 0 {
		s.approved = cloneSlice(approved)
	}
}

// ApproveRequest переносит заявку из pending в approved и пишет запись аудита.
// Обе операции выполняются под одной блокировкой.
func (s *AppState) ApproveRequest(id, txHash string, at time.Time) (model.AccessRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.pending, id)
	if i < 0 {
		return model.AccessRequest{}, fmt.Errorf("%w: %s", ErrRequestNotFound, id)
	}

	req := s.pending[i]
	s.pending = append(s.pending[:i:i], s.pending[i+1:]...)

	approvedAt := at
	req.Status = model.RequestStatusApproved
	req.ApprovedDate = &approvedAt
	req.TxHash = txHash
	s.approved = append(s.approved, req)

	s.prependAudit(model.AuditLogEntry{
		Action:    model.AuditActionApproved,
		Doctor:    req.DoctorName,
		Record:    req.RequestedRecord,
		Timestamp: at,
		TxHash:    txHash,
	})

	return req, nil
}

// RejectRequest убирает заявку из pending и пишет запись аудита
func (s *AppState) RejectRequest(id string, at time.Time) (model.AccessRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.pending, id)
	if i < 0 {
		return model.AccessRequest{}, fmt.Errorf("%w: %s", ErrRequestNotFound, id)
	}

	req := s.pending[i]
	s.pending = append(s.pending[:i:i], s.pending[i+1:]...)
	req.Status = model.RequestStatusRejected

	s.prependAudit(model.AuditLogEntry{
		Action:    model.AuditActionRejected,
		Doctor:    req.DoctorName,
		Record:    req.RequestedRecord,
		Timestamp: at,
	})

	return req, nil
}

// ============ Медицинские записи ============

func (s *AppState) MedicalRecords() []model.MedicalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.records)
}

func (s *AppState) FindRecord(id string) (model.MedicalRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return model.MedicalRecord{}, false
}

// AddRecords добавляет записи и по одной записи аудита на каждую
func (s *AppState) AddRecords(records []model.MedicalRecord, audit func(model.MedicalRecord) model.AuditLogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		s.records = append(s.records, r)
		if audit != nil {
			s.prependAudit(audit(r))
		}
	}
}

// SetRecordStatus меняет статус записи
func (s *AppState) SetRecordStatus(id string, status model.RecordStatus) (model.MedicalRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			s.records[i].Status = status
			return s.records[i], nil
		}
	}
	return model.MedicalRecord{}, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
}

// DeleteRecord удаляет запись
func (s *AppState) DeleteRecord(id string) (model.MedicalRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.records {
		if r.ID == id {
			s.records = append(s.records[:i:i], s.records[i+1:]...)
			return r, nil
		}
	}
	return model.MedicalRecord{}, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
}

// ============ Чат ============

func (s *AppState) ChatHistory() []model.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.chat)
}

// MaxChatHistory - сколько последних сообщений чата хранится
const MaxChatHistory = 200

// AppendChat добавляет сообщение в конец истории, старые сверх MaxChatHistory отбрасываются
func (s *AppState) AppendChat(msg model.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = append(s.chat, msg)
	if over := len(s.chat) - MaxChatHistory; over > 0 {
		s.chat = append(s.chat[:0:0], s.chat[over:]...)
	}
}

func indexOf(list []model.AccessRequest, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

func copyUser(u *model.User) *model.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
