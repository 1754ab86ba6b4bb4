package services

import (
	"time"

	"medcare_backend/internal/apperrors"
	"medcare_backend/internal/auth"
	"medcare_backend/internal/email"
	"medcare_backend/internal/logger"
	"medcare_backend/internal/models"
	"medcare_backend/internal/repositories"
	"medcare_backend/internal/services/dto"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserDTO, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(db *gorm.DB, refreshToken string) (*dto.LoginResponse, error)
	ChangePassword(db *gorm.DB, userID, currentPassword, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	tokens        *auth.TokenManager
	emailProvider email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokens *auth.TokenManager,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		tokens:        tokens,
		emailProvider: emailProvider,
	}
}

// Register - регистрация нового пользователя.
// Для пациента профиль создается в той же транзакции, что и пользователь.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserDTO, error) {
	role := models.UserRole(req.Role)
	if !auth.RoleIn(role, auth.RegistrationRoles) {
		return nil, apperrors.ErrInvalidUserRole
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hashedPassword,
		FullName:     req.FullName,
		Role:         role,
		IsActive:     true,
	}

	if role == models.UserRolePatient {
		err = s.userRepo.CreateWithPatient(db, user, &models.Patient{})
	} else {
		err = s.userRepo.Create(db, user)
	}
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	// Приветственное письмо best-effort: регистрация уже состоялась
	if err := s.emailProvider.SendWelcome(user.Email, user.FullName); err != nil {
		logger.Warn("failed to send welcome email", "error", err, "user_id", user.ID)
	}

	userDTO := dto.NewUserDTO(user)
	return &userDTO, nil
}

// Login - аутентификация пользователя.
// "Нет такого email" и "неверный пароль" дают один и тот же ответ.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrInactiveAccount
	}

	response, err := s.issueTokenPair(user)
	if err != nil {
		return nil, err
	}

	// Отметка последнего входа best-effort: токены уже выпущены,
	// сбой записи не должен провалить логин.
	if err := s.userRepo.UpdateLastLogin(db, user.ID, time.Now()); err != nil {
		logger.Warn("failed to update last login", "error", err, "user_id", user.ID)
	}

	return response, nil
}

// Refresh - обмен refresh токена на новую пару токенов (ротация).
// Любая ошибка проверки означает отказ, деталей не различаем.
func (s *AuthServiceImpl) Refresh(db *gorm.DB, refreshToken string) (*dto.LoginResponse, error) {
	claims, err := s.tokens.VerifyToken(refreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(db, claims.Subject)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if !user.IsActive {
		return nil, apperrors.ErrInactiveAccount
	}

	return s.issueTokenPair(user)
}

// ChangePassword - смена пароля текущим пользователем
func (s *AuthServiceImpl) ChangePassword(db *gorm.DB, userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hashed
	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

func (s *AuthServiceImpl) issueTokenPair(user *models.User) (*dto.LoginResponse, error) {
	accessToken, err := s.tokens.IssueAccessToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := s.tokens.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    int64(s.tokens.AccessTTL().Seconds()),
		User:         dto.NewUserDTO(user),
	}, nil
}
