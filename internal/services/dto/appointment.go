package dto

import (
	"time"

	"medcare_backend/internal/models"
)

// CreateAppointmentRequest - запрос создания записи на прием.
// Пациент указывается не в запросе, а берется из текущей сессии.
type CreateAppointmentRequest struct {
	DoctorID        string `json:"doctor_id" binding:"required,uuid"`
	AppointmentDate string `json:"appointment_date" binding:"required,datetime=2006-01-02"`
	AppointmentTime string `json:"appointment_time" binding:"required,datetime=15:04"`
	Type            string `json:"type,omitempty" binding:"omitempty,oneof=consultation follow_up emergency surgery diagnostic"`
	Mode            string `json:"mode,omitempty" binding:"omitempty,is-consultation-mode"`
	Reason          string `json:"reason,omitempty"`
	PatientNotes    string `json:"patient_notes,omitempty"`
}

// UpdateAppointmentStatusRequest - запрос смены статуса (врач/админ)
type UpdateAppointmentStatusRequest struct {
	Status       string `json:"status" binding:"required,is-appointment-status"`
	Notes        string `json:"notes,omitempty"`
	Prescription string `json:"prescription,omitempty"`
}

// CancelAppointmentRequest - запрос отмены записи
type CancelAppointmentRequest struct {
	Reason string `json:"reason,omitempty"`
}

// AppointmentDTO - представление записи на прием для клиента
type AppointmentDTO struct {
	ID              string                   `json:"id"`
	PatientID       string                   `json:"patient_id"`
	DoctorID        string                   `json:"doctor_id"`
	PatientName     string                   `json:"patient_name,omitempty"`
	DoctorName      string                   `json:"doctor_name,omitempty"`
	Specialty       string                   `json:"specialty,omitempty"`
	AppointmentDate string                   `json:"appointment_date"`
	AppointmentTime string                   `json:"appointment_time"`
	Duration        int                      `json:"duration"`
	Type            models.AppointmentType   `json:"type"`
	Mode            models.ConsultationMode  `json:"mode"`
	Status          models.AppointmentStatus `json:"status"`
	Reason          string                   `json:"reason,omitempty"`
	Notes           string                   `json:"notes,omitempty"`
	Prescription    string                   `json:"prescription,omitempty"`
	ConsultationFee *float64                 `json:"consultation_fee,omitempty"`
	PaymentStatus   models.PaymentStatus     `json:"payment_status"`
	CreatedAt       time.Time                `json:"created_at"`
}

// NewAppointmentDTO строит AppointmentDTO из модели с загруженными связями
func NewAppointmentDTO(a *models.Appointment) AppointmentDTO {
	d := AppointmentDTO{
		ID:              a.ID,
		PatientID:       a.PatientID,
		DoctorID:        a.DoctorID,
		AppointmentDate: a.AppointmentDate.Format("2006-01-02"),
		AppointmentTime: a.AppointmentTime,
		Duration:        a.Duration,
		Type:            a.Type,
		Mode:            a.Mode,
		Status:          a.Status,
		Reason:          a.ReasonForVisit,
		Notes:           a.Notes,
		Prescription:    a.Prescription,
		ConsultationFee: a.ConsultationFee,
		PaymentStatus:   a.PaymentStatus,
		CreatedAt:       a.CreatedAt,
	}

	if a.Patient != nil && a.Patient.User != nil {
		d.PatientName = a.Patient.User.FullName
	}
	if a.Doctor != nil {
		if a.Doctor.User != nil {
			d.DoctorName = a.Doctor.User.FullName
		}
		if a.Doctor.Specialty != nil {
			d.Specialty = a.Doctor.Specialty.Name
		}
	}

	return d
}
