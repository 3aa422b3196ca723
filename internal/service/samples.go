package service

import (
	"time"

	"github.com/Freeeeeet/health_wallet/internal/model"
)

// SamplePendingRequests - демонстрационные заявки.
// Адрес второй заявки некорректен и при одобрении заменяется нулевым.
func SamplePendingRequests() []model.AccessRequest {
	return []model.AccessRequest{
		{
			ID:              "1",
			DoctorName:      "Dr. Rahul Sharma",
			Specialization:  "Cardiology",
			RequestedRecord: "ECG_Report.pdf",
			RequestDate:     "2024-01-15",
			DoctorAddress:   "0x742d35Cc6634C0532925a3b8D4C0532925a3b8D4",
			Status:          model.RequestStatusPending,
		},
		{
			ID:              "2",
			DoctorName:      "Dr. Meera Iyer",
			Specialization:  "Neurology",
			RequestedRecord: "MRI_Scan.pdf",
			RequestDate:     "2024-01-14",
			DoctorAddress:   "0x8ba1f109551bD432803012645Hac136c0532925a",
			Status:          model.RequestStatusPending,
		},
		{
			ID:              "3",
			DoctorName:      "Dr. James Wilson",
			Specialization:  "General Medicine",
			RequestedRecord: "Blood_Test_Results.pdf",
			RequestDate:     "2024-01-13",
			DoctorAddress:   "0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984",
			Status:          model.RequestStatusPending,
		},
	}
}

func SampleApprovedRequests() []model.AccessRequest {
	return []model.AccessRequest{
		sampleApproved("approved_1", "Dr. Sarah Johnson", "Dermatology", "Skin_Biopsy_Results.pdf", "2024-01-10"),
		sampleApproved("approved_2", "Dr. Michael Chen", "Orthopedics", "X-Ray_Report.pdf", "2024-01-08"),
	}
}

func sampleApproved(id, doctor, specialization, record, date string) model.AccessRequest {
	approvedAt, _ := time.Parse(time.DateOnly, date)
	return model.AccessRequest{
		ID:              id,
		DoctorName:      doctor,
		Specialization:  specialization,
		RequestedRecord: record,
		Status:          model.RequestStatusApproved,
		ApprovedDate:    &approvedAt,
	}
}

// SampleAuditLog - история действий за последние дни, новые первыми
func SampleAuditLog(now time.Time) []model.AuditLogEntry {
	entry := func(hoursAgo int, doctor, record, action, ip string) model.AuditLogEntry {
		return model.AuditLogEntry{
			Action:    action,
			Doctor:    doctor,
			Record:    record,
			Timestamp: now.Add(-time.Duration(hoursAgo) * time.Hour),
			IPAddress: ip,
		}
	}

	return []model.AuditLogEntry{
		entry(2, "Dr. Sarah Johnson", "Blood_Test_Results.pdf", model.AuditActionViewed, "192.168.1.45"),
		entry(4, "Dr. Michael Chen", "X-Ray_Report.pdf", model.AuditActionDownloaded, "10.0.0.23"),
		entry(6, "System", "MRI_Scan.pdf", model.AuditActionUploaded, model.LocalIPAddress),
		entry(8, "Dr. Rahul Sharma", "ECG_Report.pdf", model.AuditActionViewed, "172.16.0.15"),
		entry(12, "Dr. Meera Iyer", "Lab_Results_Complete.pdf", model.AuditActionDownloaded, "192.168.1.67"),
		entry(24, "System", "Prescription_History.pdf", model.AuditActionUploaded, model.LocalIPAddress),
		entry(36, "Dr. James Wilson", "Blood_Test_Results.pdf", model.AuditActionViewed, "10.0.0.89"),
		entry(48, "Dr. Lisa Park", "Allergy_Test_Results.pdf", model.AuditActionDownloaded, "172.16.0.34"),
		entry(72, "System", "Vaccination_Record.pdf", model.AuditActionUploaded, model.LocalIPAddress),
		entry(96, "Dr. Robert Kim", "CT_Scan_Report.pdf", model.AuditActionViewed, "10.0.0.156"),
	}
}
