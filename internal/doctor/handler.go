package doctor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Freeeeeet/health_wallet/internal/model"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	store  *Store
	logger *zap.Logger
	now    func() time.Time
}

func NewHandler(store *Store, logger *zap.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func newID(prefix string) string {
	return prefix + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

// GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.HealthResponse{Status: "OK", Message: "Doctor Backend API is running"})
}

// POST /api/doctor/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.DoctorLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	now := h.now()
	doctor := model.Doctor{
		ID:             newID("DR_"),
		Email:          req.Email,
		Name:           "Dr. John Smith",
		Phone:          "+1 (555) 123-4567",
		LicenseNumber:  orDefault(req.LicenseNumber, "MD123456789"),
		Specialization: "Cardiology",
		Hospital:       orDefault(req.HospitalName, "City General Hospital"),
		Experience:     10,
		Verified:       true,
		LoginTime:      &now,
	}
	h.store.SaveDoctor(doctor)

	h.logger.Info("👨‍⚕️ Doctor logged in", zap.String("doctor_id", doctor.ID), zap.String("email", doctor.Email))

	writeJSON(w, http.StatusOK, model.DoctorLoginResponse{
		Success: true,
		Doctor:  &doctor,
		Token:   "mock_jwt_token_" + doctor.ID,
	})
}

// POST /api/doctor/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.DoctorRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	now := h.now()
	doctor := model.Doctor{
		ID:               newID("DR_"),
		Email:            req.Email,
		Name:             req.FullName,
		Phone:            req.Phone,
		LicenseNumber:    req.LicenseNumber,
		Specialization:   req.Specialization,
		Hospital:         req.HospitalName,
		Experience:       req.Experience,
		Verified:         false,
		RegistrationTime: &now,
	}
	h.store.SaveDoctor(doctor)

	h.logger.Info("Doctor registered", zap.String("doctor_id", doctor.ID))

	writeJSON(w, http.StatusOK, model.DoctorRegisterResponse{
		Success: true,
		Doctor:  &doctor,
		Message: "Registration successful. Verification pending.",
	})
}

// POST /api/doctor/access-request
func (h *Handler) CreateAccessRequest(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	doctor, err := h.store.Doctor(req.DoctorID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Doctor not found")
		return
	}

	accessRequest := model.DoctorAccessRequest{
		ID:                   newID("REQ_"),
		DoctorID:             doctor.ID,
		DoctorName:           doctor.Name,
		DoctorSpecialization: doctor.Specialization,
		DoctorHospital:       doctor.Hospital,
		PatientIdentifier:    req.PatientIdentifier,
		Duration:             req.Duration,
		Reason:               req.Reason,
		Type:                 req.Type,
		Priority:             req.Priority,
		Status:               model.RequestStatusPending,
		RequestDate:          h.now(),
	}
	h.store.SaveRequest(accessRequest)

	h.logger.Info("Access request submitted",
		zap.String("request_id", accessRequest.ID),
		zap.String("doctor", doctor.Name),
		zap.String("patient", req.PatientIdentifier),
		zap.String("priority", req.Priority),
	)

	writeJSON(w, http.StatusOK, model.CreateAccessResponse{
		Success:   true,
		RequestID: accessRequest.ID,
		Message:   "Access request submitted successfully",
	})
}

// GET /api/doctor/{doctorId}/access-requests?status=&limit=
func (h *Handler) AccessRequests(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]
	requests := limit(h.store.Requests(doctorID, r.URL.Query().Get("status")), queryInt(r, "limit", 50))

	writeJSON(w, http.StatusOK, model.AccessRequestsResponse{
		Success:  true,
		Requests: requests,
		Total:    len(requests),
	})
}

// DELETE /api/doctor/access-request/{requestId}
func (h *Handler) CancelAccessRequest(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["requestId"]

	err := h.store.CancelRequest(id, h.now())
	switch {
	case errors.Is(err, ErrRequestNotFound):
		writeError(w, http.StatusNotFound, "Request not found")
		return
	case errors.Is(err, ErrNotPending):
		writeError(w, http.StatusBadRequest, "Cannot cancel non-pending request")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Failed to cancel request")
		return
	}

	h.logger.Info("Access request cancelled", zap.String("request_id", id))
	writeJSON(w, http.StatusOK, model.MessageResponse{Success: true, Message: "Access request cancelled successfully"})
}

// GET /api/doctor/{doctorId}/patient-records
func (h *Handler) PatientRecords(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]
	now := h.now()

	patients := make([]model.PatientRecordSummary, 0)
	for _, req := range h.store.Requests(doctorID, model.RequestStatusApproved) {
		if req.ExpiryDate != nil && !req.ExpiryDate.After(now) {
			continue
		}
		patients = append(patients, model.PatientRecordSummary{
			PatientID:         req.PatientIdentifier,
			PatientName:       PatientName(req.PatientIdentifier),
			AccessGrantedDate: req.ApprovalDate,
			AccessExpiryDate:  req.ExpiryDate,
			RecordsCount:      5 + int(now.UnixNano()%20),
			LastAccessed:      now,
			Conditions:        mockConditions(),
			AccessType:        req.Type,
		})
	}

	writeJSON(w, http.StatusOK, model.PatientRecordsResponse{
		Success:  true,
		Patients: patients,
		Total:    len(patients),
	})
}

// GET /api/doctor/{doctorId}/dashboard-stats
func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]

	approved := len(h.store.Requests(doctorID, model.RequestStatusApproved))
	pending := len(h.store.Requests(doctorID, model.RequestStatusPending))
	today := len(h.store.Consultations(doctorID, h.now().Format(time.DateOnly), ""))

	writeJSON(w, http.StatusOK, model.DashboardStatsResponse{
		Success: true,
		Stats: model.DashboardStats{
			TotalPatients:      approved,
			PendingRequests:    pending,
			TodayConsultations: today,
			RecordsAccessed:    approved * 12,
			WeeklyGrowth: model.WeeklyGrowth{
				Patients:      approved,
				Consultations: today,
			},
		},
	})
}

// GET /api/doctor/{doctorId}/notifications?unreadOnly=&limit=
func (h *Handler) Notifications(w http.ResponseWriter, r *http.Request) {
	unreadOnly, _ := strconv.ParseBool(r.URL.Query().Get("unreadOnly"))

	all := mockNotifications(h.now())
	unread := 0
	filtered := make([]model.Notification, 0, len(all))
	for _, n := range all {
		if !n.Read {
			unread++
		}
		if unreadOnly && n.Read {
			continue
		}
		filtered = append(filtered, n)
	}

	writeJSON(w, http.StatusOK, model.NotificationsResponse{
		Success:       true,
		Notifications: limit(filtered, queryInt(r, "limit", 20)),
		UnreadCount:   unread,
	})
}

// POST /api/doctor/consultation
func (h *Handler) ScheduleConsultation(w http.ResponseWriter, r *http.Request) {
	var req model.CreateConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Duration == 0 {
		req.Duration = 30
	}

	consultation := model.Consultation{
		ID:          newID("CONS_"),
		DoctorID:    req.DoctorID,
		PatientID:   req.PatientID,
		Date:        req.Date,
		Time:        req.Time,
		Type:        req.Type,
		Notes:       req.Notes,
		Duration:    req.Duration,
		Status:      model.ConsultationStatusScheduled,
		CreatedDate: h.now(),
	}
	h.store.SaveConsultation(consultation)

	h.logger.Info("📅 Consultation scheduled",
		zap.String("consultation_id", consultation.ID),
		zap.String("date", req.Date),
		zap.String("time", req.Time),
	)

	writeJSON(w, http.StatusOK, model.CreateConsultationResponse{
		Success:        true,
		ConsultationID: consultation.ID,
		Message:        "Consultation scheduled successfully",
	})
}

// GET /api/doctor/{doctorId}/consultations?date=&status=&limit=
func (h *Handler) Consultations(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]
	q := r.URL.Query()

	consultations := limit(h.store.Consultations(doctorID, q.Get("date"), q.Get("status")), queryInt(r, "limit", 50))
	for i := range consultations {
		consultations[i].PatientName = PatientName(consultations[i].PatientID)
	}

	writeJSON(w, http.StatusOK, model.ConsultationsResponse{
		Success:       true,
		Consultations: consultations,
		Total:         len(consultations),
	})
}

// PUT /api/doctor/{doctorId}/profile
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	doctorID := mux.Vars(r)["doctorId"]

	var req model.DoctorProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	now := h.now()
	doctor, err := h.store.UpdateDoctor(doctorID, func(d *model.Doctor) {
		d.Name = orDefault(req.Name, d.Name)
		d.Email = orDefault(req.Email, d.Email)
		d.Phone = orDefault(req.Phone, d.Phone)
		d.Specialization = orDefault(req.Specialization, d.Specialization)
		d.Hospital = orDefault(req.Hospital, d.Hospital)
		if req.Experience != nil {
			d.Experience = *req.Experience
		}
		d.LastUpdated = &now
	})
	if err != nil {
		writeError(w, http.StatusNotFound, "Doctor not found")
		return
	}

	writeJSON(w, http.StatusOK, model.DoctorProfileResponse{
		Success: true,
		Doctor:  &doctor,
		Message: "Profile updated successfully",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func queryInt(r *http.Request, key string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func limit[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
