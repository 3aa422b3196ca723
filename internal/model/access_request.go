package model

import "time"

// AccessRequest represents a doctor's request to view one of the patient's records
type AccessRequest struct {
	ID              string     `json:"id"`
	DoctorName      string     `json:"doctorName"`
	Specialization  string     `json:"specialization"`
	RequestedRecord string     `json:"requestedRecord"`
	RequestDate     string     `json:"requestDate"`
	DoctorAddress   string     `json:"doctorAddress,omitempty"`
	Status          string     `json:"status,omitempty"` // 'pending', 'approved', 'rejected'
	ApprovedDate    *time.Time `json:"approvedDate,omitempty"`
	TxHash          string     `json:"txHash,omitempty"`
}

// Request status constants
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// IsPending checks if request is pending.
// Stored sample requests carry no status and are treated as pending.
func (r *AccessRequest) IsPending() bool {
	return r.Status == RequestStatusPending || r.Status == ""
}

// IsApproved checks if request is approved
func (r *AccessRequest) IsApproved() bool {
	return r.Status == RequestStatusApproved
}

// IsRejected checks if request is rejected
func (r *AccessRequest) IsRejected() bool {
	return r.Status == RequestStatusRejected
}
