package dto

import (
	"time"

	"medcare_backend/internal/models"
)

// RegisterRequest - запрос регистрации.
// Самостоятельно зарегистрироваться может только пациент,
// врачей и персонал заводит администратор.
type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	FullName string  `json:"full_name" binding:"required"`
	Phone    *string `json:"phone,omitempty"`
	Role     string  `json:"role" binding:"required,is-user-role"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest - тело запроса обновления токенов.
// Используется как fallback, когда refresh_token не пришел в cookie.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// UserDTO - публичное представление пользователя
type UserDTO struct {
	ID              string          `json:"id"`
	Email           string          `json:"email"`
	Phone           *string         `json:"phone,omitempty"`
	FullName        string          `json:"full_name"`
	ProfileImageURL string          `json:"profile_image_url,omitempty"`
	Role            models.UserRole `json:"role"`
	IsActive        bool            `json:"is_active"`
	IsEmailVerified bool            `json:"is_email_verified"`
	LastLoginAt     *time.Time      `json:"last_login_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// NewUserDTO строит UserDTO из модели
func NewUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:              user.ID,
		Email:           user.Email,
		Phone:           user.Phone,
		FullName:        user.FullName,
		ProfileImageURL: user.ProfileImageURL,
		Role:            user.Role,
		IsActive:        user.IsActive,
		IsEmailVerified: user.IsEmailVerified,
		LastLoginAt:     user.LastLoginAt,
		CreatedAt:       user.CreatedAt,
	}
}

// LoginResponse - ответ с токенами
type LoginResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	TokenType    string  `json:"token_type"`
	ExpiresIn    int64   `json:"expires_in"` // секунды жизни access токена
	User         UserDTO `json:"user"`
}
