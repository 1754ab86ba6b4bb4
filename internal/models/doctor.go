package models

import "github.com/lib/pq"

type Doctor struct {
	BaseModel
	UserID        string  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	LicenseNumber string  `gorm:"uniqueIndex;not null" json:"license_number"`
	SpecialtyID   *string `gorm:"type:uuid;index" json:"specialty_id,omitempty"`

	Qualifications  pq.StringArray `gorm:"type:text[]" json:"qualifications,omitempty"`
	ExperienceYears int            `gorm:"default:0" json:"experience_years"`

	// Прием
	ConsultationFeeOnsite *float64 `json:"consultation_fee_onsite,omitempty"`
	ConsultationFeeOnline *float64 `json:"consultation_fee_online,omitempty"`
	ConsultationDuration  int      `gorm:"default:30" json:"consultation_duration"`

	// Доступность: дни недели 0=воскресенье ... 6=суббота, время в "HH:MM"
	AvailableDays pq.Int64Array `gorm:"type:integer[]" json:"available_days,omitempty"`
	AvailableFrom string        `gorm:"type:varchar(5)" json:"available_from,omitempty"`
	AvailableTo   string        `gorm:"type:varchar(5)" json:"available_to,omitempty"`

	Bio       string         `json:"bio,omitempty"`
	Languages pq.StringArray `gorm:"type:text[]" json:"languages,omitempty"`

	// Рейтинг
	Rating       float64 `gorm:"default:0" json:"rating"`
	TotalReviews int     `gorm:"default:0" json:"total_reviews"`

	// Статус
	IsAvailable bool `gorm:"default:true;index" json:"is_available"`
	IsVerified  bool `gorm:"default:false" json:"is_verified"`

	// Relations
	User         *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Specialty    *Specialty    `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"-"`
}
