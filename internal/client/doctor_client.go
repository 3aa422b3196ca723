package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Freeeeeet/health_wallet/internal/model"
)

// DoctorClient - клиент бэкенда врача
type DoctorClient struct {
	base
}

func NewDoctorClient(baseURL string, httpClient *http.Client) *DoctorClient {
	return &DoctorClient{base: newBase(baseURL, httpClient)}
}

func (c *DoctorClient) Health(ctx context.Context) (*model.HealthResponse, error) {
	var out model.HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, fmt.Errorf("health check: %w", err)
	}
	return &out, nil
}

func (c *DoctorClient) Login(ctx context.Context, in model.DoctorLoginRequest) (*model.DoctorLoginResponse, error) {
	var out model.DoctorLoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/doctor/login", in, &out); err != nil {
		return nil, fmt.Errorf("login doctor: %w", err)
	}
	return &out, nil
}

func (c *DoctorClient) Register(ctx context.Context, in model.DoctorRegisterRequest) (*model.DoctorRegisterResponse, error) {
	var out model.DoctorRegisterResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/doctor/register", in, &out); err != nil {
		return nil, fmt.Errorf("register doctor: %w", err)
	}
	return &out, nil
}

func (c *DoctorClient) RequestAccess(ctx context.Context, in model.CreateAccessRequest) (*model.CreateAccessResponse, error) {
	var out model.CreateAccessResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/doctor/access-request", in, &out); err != nil {
		return nil, fmt.Errorf("request access: %w", err)
	}
	return &out, nil
}

// AccessRequests - заявки врача, новые первыми. status и limit необязательны.
func (c *DoctorClient) AccessRequests(ctx context.Context, doctorID, status string, limit int) (*model.AccessRequestsResponse, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var out model.AccessRequestsResponse
	if err := c.doJSON(ctx, http.MethodGet, doctorPath(doctorID, "access-requests", q), nil, &out); err != nil {
		return nil, fmt.Errorf("get access requests: %w", err)
	}
	return &out, nil
}

func (c *DoctorClient) CancelAccessRequest(ctx context.Context, requestID string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/doctor/access-request/"+url.PathEscape(requestID), nil, nil); err != nil {
		return fmt.Errorf("cancel access request: %w", err)
	}
	return nil
}

func (c *DoctorClient) PatientRecords(ctx context.Context, doctorID string) (*model.PatientRecordsResponse, error) {
	var out model.PatientRecordsResponse
	if err := c.doJSON(ctx, http.MethodGet, doctorPath(doctorID, "patient-records", nil), nil, &out); err != nil {
		return nil, fmt.Errorf("get patient records: %w", err)
	}
	return &out, nil
}

func (c *DoctorClient) DashboardStats(ctx context.Context, doctorID string) (*model.DashboardStats, error) {
	var out model.DashboardStatsResponse
	if err := c.doJSON(ctx, http.MethodGet, doctorPath(doctorID, "dashboard-stats", nil), nil, &out); err != nil {
		return nil, fmt.Errorf("get dashboard stats: %w", err)
	}
	return &out.Stats, nil
}

func (c *DoctorClient) Notifications(ctx context.Context, doctorID string, unreadOnly bool, limit int) (*model.NotificationsResponse, error) {
	q := url.Values{}
	if unreadOnly {
		q.Set("unreadOnly", "true")
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var out model.NotificationsResponse
	if err := c.doJSON(ctx, http.MethodGet, doctorPath(doctorID, "notifications", q), nil, &out); err != nil {
		return nil, fmt.Errorf("get notifications: %w", err)
	}
	return &out, nil
}

func (c *DoctorClient) ScheduleConsultation(ctx context.Context, in model.CreateConsultationRequest) (*model.CreateConsultationResponse, error) {
	var out model.CreateConsultationResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/doctor/consultation", in, &out); err != nil {
		return nil, fmt.Errorf("schedule consultation: %w", err)
	}
	return &out, nil
}

func (c *DoctorClient) Consultations(ctx context.Context, doctorID, date, status string, limit int) (*model.ConsultationsResponse, error) {
	q := url.Values{}
	if date != "" {
		q.Set("date", date)
	}
	if status != "" {
		q.Set("status", status)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var out model.ConsultationsResponse
	if err := c.doJSON(ctx, http.MethodGet, doctorPath(doctorID, "consultations", q), nil, &out); err != nil {
		return nil, fmt.Errorf("get consultations: %w", err)
	}
	return &out, nil
}

func (c *DoctorClient) UpdateProfile(ctx context.Context, doctorID string, in model.DoctorProfileUpdate) (*model.Doctor, error) {
	var out model.DoctorProfileResponse
	if err := c.doJSON(ctx, http.MethodPut, doctorPath(doctorID, "profile", nil), in, &out); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return out.Doctor, nil
}

func doctorPath(doctorID, resource string, q url.Values) string {
	p := "/api/doctor/" + url.PathEscape(doctorID) + "/" + resource
	if len(q) > 0 {
		p += "?" + q.Encode()
	}
	return p
}
