package doctor

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// NewRouter собирает mux-роутер бэкенда врача
func NewRouter(h *Handler, logger *zap.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger(logger), corsMiddleware)

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api/doctor").Subrouter()
	api.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	api.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	api.HandleFunc("/access-request", h.CreateAccessRequest).Methods(http.MethodPost)
	api.HandleFunc("/access-request/{requestId}", h.CancelAccessRequest).Methods(http.MethodDelete)
	api.HandleFunc("/consultation", h.ScheduleConsultation).Methods(http.MethodPost)
	api.HandleFunc("/{doctorId}/access-requests", h.AccessRequests).Methods(http.MethodGet)
	api.HandleFunc("/{doctorId}/patient-records", h.PatientRecords).Methods(http.MethodGet)
	api.HandleFunc("/{doctorId}/dashboard-stats", h.DashboardStats).Methods(http.MethodGet)
	api.HandleFunc("/{doctorId}/notifications", h.Notifications).Methods(http.MethodGet)
	api.HandleFunc("/{doctorId}/consultations", h.Consultations).Methods(http.MethodGet)
	api.HandleFunc("/{doctorId}/profile", h.UpdateProfile).Methods(http.MethodPut)

	return r
}

func requestLogger(logger *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)

			logger.Debug("HTTP request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
