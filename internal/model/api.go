package model

// HealthResponse is returned by GET /health of both backends
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx backend response
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a bare success acknowledgement
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ============ Analysis backend ============

type UploadResponse struct {
	Success      bool   `json:"success"`
	AnalysisID   string `json:"analysisId"`
	Filename     string `json:"filename"`
	AnalysisType string `json:"analysisType"`
	Price        string `json:"price"`
	Message      string `json:"message"`
}

type VerifyPaymentRequest struct {
	AnalysisID      string `json:"analysisId"`
	TransactionHash string `json:"transactionHash"`
	WalletAddress   string `json:"walletAddress"`
}

type VerifyPaymentResponse struct {
	Success    bool            `json:"success"`
	AnalysisID string          `json:"analysisId"`
	Status     AnalysisStatus  `json:"status"`
	Result     *AnalysisResult `json:"result,omitempty"`
}

// ============ Doctor backend ============

type DoctorLoginRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	LicenseNumber string `json:"licenseNumber,omitempty"`
	HospitalName  string `json:"hospitalName,omitempty"`
}

type DoctorLoginResponse struct {
	Success bool    `json:"success"`
	Doctor  *Doctor `json:"doctor"`
	Token   string  `json:"token"`
}

type DoctorRegisterRequest struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Password       string `json:"password"`
	LicenseNumber  string `json:"licenseNumber"`
	Specialization string `json:"specialization"`
	HospitalName   string `json:"hospitalName"`
	Experience     int    `json:"experience"`
}

type DoctorRegisterResponse struct {
	Success bool    `json:"success"`
	Doctor  *Doctor `json:"doctor"`
	Message string  `json:"message"`
}

type CreateAccessRequest struct {
	DoctorID          string `json:"doctorId"`
	PatientIdentifier string `json:"patientIdentifier"`
	Duration          string `json:"duration"`
	Reason            string `json:"reason"`
	Type              string `json:"type"`
	Priority          string `json:"priority"`
}

type CreateAccessResponse struct {
	Success   bool   `json:"success"`
	RequestID string `json:"requestId"`
	Message   string `json:"message"`
}

type AccessRequestsResponse struct {
	Success  bool                  `json:"success"`
	Requests []DoctorAccessRequest `json:"requests"`
	Total    int                   `json:"total"`
}

type PatientRecordsResponse struct {
	Success  bool                   `json:"success"`
	Patients []PatientRecordSummary `json:"patients"`
	Total    int                    `json:"total"`
}

type DashboardStatsResponse struct {
	Success bool           `json:"success"`
	Stats   DashboardStats `json:"stats"`
}

type NotificationsResponse struct {
	Success       bool           `json:"success"`
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unreadCount"`
}

type CreateConsultationRequest struct {
	DoctorID  string `json:"doctorId"`
	PatientID string `json:"patientId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Type      string `json:"type"`
	Notes     string `json:"notes"`
	Duration  int    `json:"duration,omitempty"`
}

type CreateConsultationResponse struct {
	Success        bool   `json:"success"`
	ConsultationID string `json:"consultationId"`
	Message        string `json:"message"`
}

type ConsultationsResponse struct {
	Success       bool           `json:"success"`
	Consultations []Consultation `json:"consultations"`
	Total         int            `json:"total"`
}

// DoctorProfileUpdate carries the editable profile fields; empty values are left unchanged
type DoctorProfileUpdate struct {
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	Hospital       string `json:"hospital,omitempty"`
	Experience     *int   `json:"experience,omitempty"`
}

type DoctorProfileResponse struct {
	Success bool    `json:"success"`
	Doctor  *Doctor `json:"doctor"`
	Message string  `json:"message"`
}
