package dto

import "medcare_backend/internal/models"

// DoctorListQuery - параметры листинга врачей
type DoctorListQuery struct {
	SpecialtyID string `form:"specialty_id" binding:"omitempty,uuid"`
	Page        int    `form:"page"`
	PageSize    int    `form:"page_size"`
}

// CreateDoctorRequest - заведение врача администратором.
// Создает пользователя с ролью doctor и карточку врача одной транзакцией.
type CreateDoctorRequest struct {
	Email         string  `json:"email" binding:"required,email"`
	Password      string  `json:"password" binding:"required,min=8"`
	FullName      string  `json:"full_name" binding:"required"`
	Phone         *string `json:"phone,omitempty"`
	LicenseNumber string  `json:"license_number" binding:"required"`
	SpecialtyID   *string `json:"specialty_id,omitempty" binding:"omitempty,uuid"`

	Qualifications  []string `json:"qualifications,omitempty"`
	ExperienceYears int      `json:"experience_years,omitempty"`

	ConsultationFeeOnsite *float64 `json:"consultation_fee_onsite,omitempty"`
	ConsultationFeeOnline *float64 `json:"consultation_fee_online,omitempty"`
	ConsultationDuration  int      `json:"consultation_duration,omitempty"`

	AvailableDays []int64 `json:"available_days,omitempty" binding:"omitempty,dive,min=0,max=6"`
	AvailableFrom string  `json:"available_from,omitempty" binding:"omitempty,datetime=15:04"`
	AvailableTo   string  `json:"available_to,omitempty" binding:"omitempty,datetime=15:04"`

	Bio       string   `json:"bio,omitempty"`
	Languages []string `json:"languages,omitempty"`
}

// DoctorDTO - публичная карточка врача
type DoctorDTO struct {
	ID              string   `json:"id"`
	FullName        string   `json:"full_name"`
	Specialty       string   `json:"specialty,omitempty"`
	SpecialtyID     *string  `json:"specialty_id,omitempty"`
	Qualifications  []string `json:"qualifications,omitempty"`
	ExperienceYears int      `json:"experience_years"`

	ConsultationFeeOnsite *float64 `json:"consultation_fee_onsite,omitempty"`
	ConsultationFeeOnline *float64 `json:"consultation_fee_online,omitempty"`
	ConsultationDuration  int      `json:"consultation_duration"`

	AvailableDays []int64 `json:"available_days,omitempty"`
	AvailableFrom string  `json:"available_from,omitempty"`
	AvailableTo   string  `json:"available_to,omitempty"`

	Bio       string   `json:"bio,omitempty"`
	Languages []string `json:"languages,omitempty"`

	Rating       float64 `json:"rating"`
	TotalReviews int     `json:"total_reviews"`
	IsAvailable  bool    `json:"is_available"`
	IsVerified   bool    `json:"is_verified"`
}

// NewDoctorDTO строит DoctorDTO из модели с загруженными связями
func NewDoctorDTO(d *models.Doctor) DoctorDTO {
	dto := DoctorDTO{
		ID:                    d.ID,
		SpecialtyID:           d.SpecialtyID,
		Qualifications:        d.Qualifications,
		ExperienceYears:       d.ExperienceYears,
		ConsultationFeeOnsite: d.ConsultationFeeOnsite,
		ConsultationFeeOnline: d.ConsultationFeeOnline,
		ConsultationDuration:  d.ConsultationDuration,
		AvailableDays:         d.AvailableDays,
		AvailableFrom:         d.AvailableFrom,
		AvailableTo:           d.AvailableTo,
		Bio:                   d.Bio,
		Languages:             d.Languages,
		Rating:                d.Rating,
		TotalReviews:          d.TotalReviews,
		IsAvailable:           d.IsAvailable,
		IsVerified:            d.IsVerified,
	}

	if d.User != nil {
		dto.FullName = d.User.FullName
	}
	if d.Specialty != nil {
		dto.Specialty = d.Specialty.Name
	}

	return dto
}
