package models

import "time"

type User struct {
	BaseModelWithDeleted
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	Phone        *string  `gorm:"uniqueIndex" json:"phone,omitempty"`
	PasswordHash string   `gorm:"not null" json:"-"`
	FullName     string   `gorm:"not null" json:"full_name"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`

	ProfileImageURL string `json:"profile_image_url,omitempty"`

	// Флаги состояния
	IsActive        bool `gorm:"default:true" json:"is_active"`
	IsEmailVerified bool `gorm:"default:false" json:"is_email_verified"`
	IsPhoneVerified bool `gorm:"default:false" json:"is_phone_verified"`

	LastLoginAt *time.Time `json:"last_login_at,omitempty"`

	// Relations
	Patient *Patient `gorm:"foreignKey:UserID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:UserID" json:"doctor,omitempty"`
}
