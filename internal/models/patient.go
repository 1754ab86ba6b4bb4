package models

import (
	"time"

	"github.com/lib/pq"
)

type Patient struct {
	BaseModel
	UserID string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	// Личные данные
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender      GenderType `gorm:"type:varchar(10)" json:"gender,omitempty"`
	BloodGroup  string     `gorm:"type:varchar(10);index" json:"blood_group,omitempty"`
	HeightCm    *float64   `json:"height_cm,omitempty"`
	WeightKg    *float64   `json:"weight_kg,omitempty"`

	// Адрес
	Address string `json:"address,omitempty"`
	City    string `gorm:"type:varchar(100)" json:"city,omitempty"`
	State   string `gorm:"type:varchar(100)" json:"state,omitempty"`
	Country string `gorm:"type:varchar(100)" json:"country,omitempty"`
	Zipcode string `gorm:"type:varchar(20)" json:"zipcode,omitempty"`

	// Экстренный контакт
	EmergencyContactName  string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string `gorm:"type:varchar(20)" json:"emergency_contact_phone,omitempty"`

	// Страховка
	InsuranceProvider     string     `json:"insurance_provider,omitempty"`
	InsurancePolicyNumber string     `json:"insurance_policy_number,omitempty"`
	InsuranceExpiryDate   *time.Time `gorm:"type:date" json:"insurance_expiry_date,omitempty"`

	// Медицинская информация
	MedicalConditions  pq.StringArray `gorm:"type:text[]" json:"medical_conditions,omitempty"`
	Allergies          pq.StringArray `gorm:"type:text[]" json:"allergies,omitempty"`
	CurrentMedications pq.StringArray `gorm:"type:text[]" json:"current_medications,omitempty"`

	// Relations
	User         *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"-"`
}
