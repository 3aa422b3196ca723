// Package doctor implements the mock doctor backend.
package doctor

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/Freeeeeet/health_wallet/internal/model"
)

var (
	ErrDoctorNotFound  = errors.New("doctor not found")
	ErrRequestNotFound = errors.New("request not found")
	ErrNotPending      = errors.New("cannot cancel non-pending request")
)

// Store - данные бэкенда врача в памяти процесса
type Store struct {
	mu            sync.RWMutex
	doctors       map[string]model.Doctor
	requests      map[string]model.DoctorAccessRequest
	consultations map[string]model.Consultation
}

func NewStore() *Store {
	return &Store{
		doctors:       make(map[string]model.Doctor),
		requests:      make(map[string]model.DoctorAccessRequest),
		consultations: make(map[string]model.Consultation),
	}
}

// ============ Врачи ============

func (s *Store) SaveDoctor(d model.Doctor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doctors[d.ID] = d
}

func (s *Store) Doctor(id string) (model.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.doctors[id]
	if !ok {
		return model.Doctor{}, ErrDoctorNotFound
	}
	return d, nil
}

// UpdateDoctor применяет fn к профилю под блокировкой
func (s *Store) UpdateDoctor(id string, fn func(d *model.Doctor)) (model.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.doctors[id]
	if !ok {
		return model.Doctor{}, ErrDoctorNotFound
	}
	fn(&d)
	s.doctors[id] = d
	return d, nil
}

// ============ Заявки на доступ ============

func (s *Store) SaveRequest(r model.DoctorAccessRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[r.ID] = r
}

// Requests - заявки врача с нужным статусом (пустой = любой), новые первыми
func (s *Store) Requests(doctorID, status string) []model.DoctorAccessRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.DoctorAccessRequest, 0)
	for _, r := range s.requests {
		if r.DoctorID != doctorID {
			continue
		}
		if status != "" && r.Status != status {
			continue
		}
		out = append(out, r)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].RequestDate.After(out[j].RequestDate)
	})
	return out
}

// CancelRequest отменяет заявку. Отменить можно только ожидающую.
func (s *Store) CancelRequest(id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.requests[id]
	if !ok {
		return ErrRequestNotFound
	}
	if r.Status != model.RequestStatusPending {
		return ErrNotPending
	}

	r.Status = model.RequestStatusCancelled
	r.CancelledDate = &at
	s.requests[id] = r
	return nil
}

// ============ Консультации ============

func (s *Store) SaveConsultation(c model.Consultation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.consultations[c.ID] = c
}

// Consultations - консультации врача по дате и времени. date и status необязательны.
func (s *Store) Consultations(doctorID, date, status string) []model.Consultation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Consultation, 0)
	for _, c := range s.consultations {
		if c.DoctorID != doctorID {
			continue
		}
		if date != "" && c.Date != date {
			continue
		}
		if status != "" && c.Status != status {
			continue
		}
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date+" "+out[i].Time < out[j].Date+" "+out[j].Time
	})
	return out
}
