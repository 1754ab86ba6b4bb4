package models

import "time"

type Appointment struct {
	BaseModel
	PatientID string `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID  string `gorm:"type:uuid;not null;index" json:"doctor_id"`

	// Детали приема
	AppointmentDate time.Time        `gorm:"type:date;not null;index" json:"appointment_date"`
	AppointmentTime string           `gorm:"type:varchar(5);not null" json:"appointment_time"` // "HH:MM"
	Duration        int              `gorm:"default:30" json:"duration"`                       // минуты
	Type            AppointmentType  `gorm:"type:varchar(20);default:'consultation'" json:"type"`
	Mode            ConsultationMode `gorm:"type:varchar(20);default:'onsite'" json:"mode"`

	// Статус и заметки
	Status         AppointmentStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	ReasonForVisit string            `json:"reason_for_visit,omitempty"`
	Notes          string            `json:"notes,omitempty"`
	Prescription   string            `json:"prescription,omitempty"`

	// Оплата
	ConsultationFee *float64      `json:"consultation_fee,omitempty"`
	PaymentStatus   PaymentStatus `gorm:"type:varchar(20);default:'pending'" json:"payment_status"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// Relations
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}
