package model

import "time"

type Doctor struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	Name             string     `json:"name"`
	Phone            string     `json:"phone,omitempty"`
	LicenseNumber    string     `json:"licenseNumber"`
	Specialization   string     `json:"specialization"`
	Hospital         string     `json:"hospital"`
	Experience       int        `json:"experience"`
	Verified         bool       `json:"verified"`
	LoginTime        *time.Time `json:"loginTime,omitempty"`
	RegistrationTime *time.Time `json:"registrationTime,omitempty"`
	LastUpdated      *time.Time `json:"lastUpdated,omitempty"`
}

// DoctorAccessRequest is the doctor-side view of an access request
type DoctorAccessRequest struct {
	ID                   string     `json:"id"`
	DoctorID             string     `json:"doctorId"`
	DoctorName           string     `json:"doctorName"`
	DoctorSpecialization string     `json:"doctorSpecialization"`
	DoctorHospital       string     `json:"doctorHospital"`
	PatientIdentifier    string     `json:"patientIdentifier"`
	Duration             string     `json:"duration"`
	Reason               string     `json:"reason"`
	Type                 string     `json:"type"`
	Priority             string     `json:"priority"`
	Status               string     `json:"status"`
	RequestDate          time.Time  `json:"requestDate"`
	ExpiryDate           *time.Time `json:"expiryDate"`
	ApprovalDate         *time.Time `json:"approvalDate"`
	CancelledDate        *time.Time `json:"cancelledDate,omitempty"`
	PatientResponse      *string    `json:"patientResponse"`
}

// RequestStatusCancelled exists only on the doctor side
const RequestStatusCancelled = "cancelled"

type Consultation struct {
	ID          string    `json:"id"`
	DoctorID    string    `json:"doctorId"`
	PatientID   string    `json:"patientId"`
	PatientName string    `json:"patientName,omitempty"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Time        string    `json:"time"` // HH:MM
	Type        string    `json:"type"`
	Notes       string    `json:"notes"`
	Duration    int       `json:"duration"`
	Status      string    `json:"status"`
	CreatedDate time.Time `json:"createdDate"`
}

const ConsultationStatusScheduled = "scheduled"

type Notification struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	Message  string    `json:"message"`
	Time     time.Time `json:"time"`
	Read     bool      `json:"read"`
	Priority string    `json:"priority"`
}

type PatientRecordSummary struct {
	PatientID         string     `json:"patientId"`
	PatientName       string     `json:"patientName"`
	AccessGrantedDate *time.Time `json:"accessGrantedDate"`
	AccessExpiryDate  *time.Time `json:"accessExpiryDate"`
	RecordsCount      int        `json:"recordsCount"`
	LastAccessed      time.Time  `json:"lastAccessed"`
	Conditions        []string   `json:"conditions"`
	AccessType        string     `json:"accessType"`
}

type WeeklyGrowth struct {
	Patients      int `json:"patients"`
	Consultations int `json:"consultations"`
}

type DashboardStats struct {
	TotalPatients      int          `json:"totalPatients"`
	PendingRequests    int          `json:"pendingRequests"`
	TodayConsultations int          `json:"todayConsultations"`
	RecordsAccessed    int          `json:"recordsAccessed"`
	WeeklyGrowth       WeeklyGrowth `json:"weeklyGrowth"`
}
