package services

import (
	"medcare_backend/internal/apperrors"
	"medcare_backend/internal/auth"
	"medcare_backend/internal/models"
	"medcare_backend/internal/repositories"
	"medcare_backend/internal/services/dto"

	"gorm.io/gorm"
)

type UserService interface {
	GetByID(db *gorm.DB, userID string) (*dto.UserDTO, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserDTO, error)
	List(db *gorm.DB, query *dto.UserListQuery) (*dto.UserListResponse, error)
	SetActive(db *gorm.DB, actorID, targetID string, active bool) error
	SetRole(db *gorm.DB, actorID, targetID string, role models.UserRole) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetByID(db *gorm.DB, userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	userDTO := dto.NewUserDTO(user)
	return &userDTO, nil
}

// UpdateProfile - обновление собственного профиля пользователя
func (s *UserServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.ProfileImageURL != nil {
		user.ProfileImageURL = *req.ProfileImageURL
	}

	if err := s.userRepo.Update(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrPhoneAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	userDTO := dto.NewUserDTO(user)
	return &userDTO, nil
}

// List - постраничный список пользователей для администратора
func (s *UserServiceImpl) List(db *gorm.DB, query *dto.UserListQuery) (*dto.UserListResponse, error) {
	filter := repositories.UserFilter{
		Role:     models.UserRole(query.Role),
		IsActive: query.IsActive,
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	users, total, err := s.userRepo.FindWithFilter(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	userDTOs := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		userDTOs = append(userDTOs, dto.NewUserDTO(&users[i]))
	}

	return &dto.UserListResponse{
		Users:    userDTOs,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// SetActive - блокировка или разблокировка учетной записи администратором.
// Администратор не может заблокировать сам себя.
func (s *UserServiceImpl) SetActive(db *gorm.DB, actorID, targetID string, active bool) error {
	if actorID == targetID {
		return apperrors.ErrCannotModifySelf
	}

	target, err := s.userRepo.FindByID(db, targetID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if target.Role == models.UserRoleSuperAdmin {
		return apperrors.ErrForbidden
	}

	if err := s.userRepo.SetActive(db, targetID, active); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

// SetRole - смена роли администратором.
// Собственную роль и роль super_admin менять нельзя.
func (s *UserServiceImpl) SetRole(db *gorm.DB, actorID, targetID string, role models.UserRole) error {
	if actorID == targetID {
		return apperrors.ErrCannotModifySelf
	}
	if err := auth.ValidateRole(role); err != nil {
		return apperrors.ErrInvalidUserRole
	}

	target, err := s.userRepo.FindByID(db, targetID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if target.Role == models.UserRoleSuperAdmin || role == models.UserRoleSuperAdmin {
		return apperrors.ErrForbidden
	}

	target.Role = role
	if err := s.userRepo.Update(db, target); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}
