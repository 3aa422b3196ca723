package state

import (
	"fmt"
	"testing"
	"time"

	"github.com/Freeeeeet/health_wallet/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) *AppState {
	t.Helper()
	s := New()
	require.NoError(t, s.AddPending(model.AccessRequest{ID: "1", DoctorName: "Dr. Rahul Sharma", RequestedRecord: "ECG_Report.pdf"}))
	require.NoError(t, s.AddPending(model.AccessRequest{ID: "2", DoctorName: "Dr. Meera Iyer", RequestedRecord: "MRI_Scan.pdf"}))
	return s
}

func TestApproveRequest_MovesAndAudits(t *testing.T) {
	s := seeded(t)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	req, err := s.ApproveRequest("1", "0xhash", at)
	require.NoError(t, err)

	assert.Equal(t, model.RequestStatusApproved, req.Status)
	assert.Equal(t, "0xhash", req.TxHash)
	require.NotNil(t, req.ApprovedDate)
	assert.True(t, req.ApprovedDate.Equal(at))

	_, stillPending := s.FindPending("1")
	assert.False(t, stillPending)

	approved := s.ApprovedRequests()
	require.Len(t, approved, 1)
	assert.Equal(t, "1", approved[0].ID)

	audit := s.AuditLog()
	require.Len(t, audit, 1)
	assert.Equal(t, model.AuditActionApproved, audit[0].Action)
	assert.Equal(t, "Dr. Rahul Sharma", audit[0].Doctor)
	assert.Equal(t, "ECG_Report.pdf", audit[0].Record)
	assert.Equal(t, "0xhash", audit[0].TxHash)
}

func TestApproveRequest_Unknown(t *testing.T) {
	s := seeded(t)

	_, err := s.ApproveRequest("nope", "0xhash", time.Now())
	assert.ErrorIs(t, err, ErrRequestNotFound)
	assert.Len(t, s.PendingRequests(), 2)
	assert.Empty(t, s.AuditLog())
}

func TestApproveRequest_Twice(t *testing.T) {
	s := seeded(t)

	_, err := s.ApproveRequest("1", "0xa", time.Now())
	require.NoError(t, err)
	_, err = s.ApproveRequest("1", "0xb", time.Now())
	assert.ErrorIs(t, err, ErrRequestNotFound)

	assert.Len(t, s.ApprovedRequests(), 1)
	assert.Len(t, s.AuditLog(), 1)
}

func TestRejectRequest(t *testing.T) {
	s := seeded(t)

	req, err := s.RejectRequest("2", time.Now())
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusRejected, req.Status)

	assert.Len(t, s.PendingRequests(), 1)
	assert.Empty(t, s.ApprovedRequests())

	audit := s.AuditLog()
	require.Len(t, audit, 1)
	assert.Equal(t, model.AuditActionRejected, audit[0].Action)
	assert.Empty(t, audit[0].TxHash)

	_, err = s.RejectRequest("2", time.Now())
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestAddPending_RejectsDuplicateAcrossCollections(t *testing.T) {
	s := seeded(t)
	_, err := s.ApproveRequest("1", "0xa", time.Now())
	require.NoError(t, err)

	assert.ErrorIs(t, s.AddPending(model.AccessRequest{ID: "1"}), ErrDuplicateRequest)
	assert.ErrorIs(t, s.AddPending(model.AccessRequest{ID: "2"}), ErrDuplicateRequest)
}

func TestAuditLog_NewestFirstAndCopied(t *testing.T) {
	s := New()
	s.AppendAudit(model.AuditLogEntry{Action: "first"})
	s.AppendAudit(model.AuditLogEntry{Action: "second"})

	log := s.AuditLog()
	require.Len(t, log, 2)
	assert.Equal(t, "second", log[0].Action)

	log[0].Action = "tampered"
	assert.Equal(t, "second", s.AuditLog()[0].Action)
}

func TestSeedAudit_OnlyWhenEmpty(t *testing.T) {
	s := New()
	assert.True(t, s.SeedAudit([]model.AuditLogEntry{{Action: "Viewed"}}))
	assert.False(t, s.SeedAudit([]model.AuditLogEntry{{Action: "Other"}}))
	assert.Len(t, s.AuditLog(), 1)
}

func TestRecords(t *testing.T) {
	s := New()
	s.AddRecords([]model.MedicalRecord{{ID: "r1", FileName: "a.pdf", Status: model.RecordStatusPrivate}}, func(r model.MedicalRecord) model.AuditLogEntry {
		return model.AuditLogEntry{Action: model.AuditActionUploaded, Record: r.FileName}
	})

	rec, err := s.SetRecordStatus("r1", model.RecordStatusShared)
	require.NoError(t, err)
	assert.Equal(t, model.RecordStatusShared, rec.Status)

	_, err = s.DeleteRecord("r1")
	require.NoError(t, err)
	assert.Empty(t, s.MedicalRecords())

	_, err = s.DeleteRecord("r1")
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.Len(t, s.AuditLog(), 1)
}

func TestWalletSession(t *testing.T) {
	s := New()
	assert.False(t, s.Wallet().Connected)

	s.ConnectWallet("0xabc")
	assert.Equal(t, model.WalletSession{Connected: true, Address: "0xabc"}, s.Wallet())

	s.DisconnectWallet()
	assert.Equal(t, model.WalletSession{}, s.Wallet())
}

func TestAppendChat_KeepsNewestMessages(t *testing.T) {
	s := New()
	for i := 0; i < MaxChatHistory+5; i++ {
		s.AppendChat(model.ChatMessage{Role: model.ChatRoleUser, Text: fmt.Sprintf("msg %d", i)})
	}

	history := s.ChatHistory()
	require.Len(t, history, MaxChatHistory)
	assert.Equal(t, "msg 5", history[0].Text)
	assert.Equal(t, fmt.Sprintf("msg %d", MaxChatHistory+4), history[len(history)-1].Text)
}
