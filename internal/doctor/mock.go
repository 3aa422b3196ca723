package doctor

import (
	"math/rand/v2"
	"time"

	"github.com/Freeeeeet/health_wallet/internal/model"
)

var patientNames = []string{
	"Sarah Johnson", "Michael Brown", "Emily Davis", "Robert Wilson",
	"Lisa Anderson", "David Taylor", "Jennifer Martinez", "Christopher Lee",
	"Amanda White", "Matthew Garcia", "Jessica Rodriguez", "Daniel Lewis",
}

var conditions = []string{
	"Hypertension", "Diabetes Type 2", "Asthma", "Arthritis",
	"High Cholesterol", "Anxiety", "Migraine", "Allergies",
}

// PatientName даёт одно и то же имя для одного идентификатора
func PatientName(identifier string) string {
	var h int32
	for _, r := range identifier {
		h = h*31 + int32(r)
	}

	n := int64(h)
	if n < 0 {
		n = -n
	}
	return patientNames[n%int64(len(patientNames))]
}

// mockConditions - от одного до трёх разных диагнозов
func mockConditions() []string {
	count := rand.IntN(3) + 1
	picked := make([]string, 0, count)
	for _, i := range rand.Perm(len(conditions))[:count] {
		picked = append(picked, conditions[i])
	}
	return picked
}

func mockNotifications(now time.Time) []model.Notification {
	return []model.Notification{
		{
			ID:       "NOT_001",
			Type:     "access_approved",
			Message:  "Access request for Sarah Johnson approved",
			Time:     now.Add(-time.Hour),
			Read:     false,
			Priority: "medium",
		},
		{
			ID:       "NOT_002",
			Type:     "consultation_reminder",
			Message:  "Consultation with Michael Brown in 30 minutes",
			Time:     now.Add(-30 * time.Minute),
			Read:     false,
			Priority: "high",
		},
		{
			ID:       "NOT_003",
			Type:     "access_expired",
			Message:  "Access to Emily Davis records expired",
			Time:     now.Add(-2 * time.Hour),
			Read:     true,
			Priority: "low",
		},
	}
}
