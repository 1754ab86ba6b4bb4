package services

import (
	"medcare_backend/internal/apperrors"
	"medcare_backend/internal/auth"
	"medcare_backend/internal/models"
	"medcare_backend/internal/repositories"
	"medcare_backend/internal/services/dto"

	"gorm.io/gorm"
)

type DoctorService interface {
	List(db *gorm.DB, query *dto.DoctorListQuery) ([]dto.DoctorDTO, error)
	Search(db *gorm.DB, search, specialtyID string) ([]dto.DoctorDTO, error)
	GetByID(db *gorm.DB, id string) (*dto.DoctorDTO, error)
	GetByUserID(db *gorm.DB, userID string) (*dto.DoctorDTO, error)
	Create(db *gorm.DB, req *dto.CreateDoctorRequest) (*dto.DoctorDTO, error)
}

type DoctorServiceImpl struct {
	doctorRepo    repositories.DoctorRepository
	userRepo      repositories.UserRepository
	specialtyRepo repositories.SpecialtyRepository
}

func NewDoctorService(
	doctorRepo repositories.DoctorRepository,
	userRepo repositories.UserRepository,
	specialtyRepo repositories.SpecialtyRepository,
) DoctorService {
	return &DoctorServiceImpl{
		doctorRepo:    doctorRepo,
		userRepo:      userRepo,
		specialtyRepo: specialtyRepo,
	}
}

func (s *DoctorServiceImpl) List(db *gorm.DB, query *dto.DoctorListQuery) ([]dto.DoctorDTO, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 || pageSize > 50 {
		pageSize = 10
	}

	doctors, err := s.doctorRepo.FindAll(db, repositories.DoctorFilter{
		SpecialtyID: query.SpecialtyID,
		Limit:       pageSize,
		Offset:      (page - 1) * pageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return toDoctorDTOs(doctors), nil
}

func (s *DoctorServiceImpl) Search(db *gorm.DB, search, specialtyID string) ([]dto.DoctorDTO, error) {
	doctors, err := s.doctorRepo.Search(db, search, specialtyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toDoctorDTOs(doctors), nil
}

func (s *DoctorServiceImpl) GetByID(db *gorm.DB, id string) (*dto.DoctorDTO, error) {
	doctor, err := s.doctorRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDoctorNotFound) {
			return nil, apperrors.ErrDoctorNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	doctorDTO := dto.NewDoctorDTO(doctor)
	return &doctorDTO, nil
}

// GetByUserID - собственная карточка врача
func (s *DoctorServiceImpl) GetByUserID(db *gorm.DB, userID string) (*dto.DoctorDTO, error) {
	doctor, err := s.doctorRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDoctorNotFound) {
			return nil, apperrors.ErrDoctorNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	doctorDTO := dto.NewDoctorDTO(doctor)
	return &doctorDTO, nil
}

// Create - заведение врача администратором.
// Пользователь и карточка врача создаются одной транзакцией.
func (s *DoctorServiceImpl) Create(db *gorm.DB, req *dto.CreateDoctorRequest) (*dto.DoctorDTO, error) {
	if req.SpecialtyID != nil {
		if _, err := s.specialtyRepo.FindByID(db, *req.SpecialtyID); err != nil {
			if apperrors.Is(err, repositories.ErrSpecialtyNotFound) {
				return nil, apperrors.ErrSpecialtyNotFound
			}
			return nil, apperrors.InternalError(err)
		}
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
		Role:         models.UserRoleDoctor,
		IsActive:     true,
	}

	doctor := &models.Doctor{
		LicenseNumber:         req.LicenseNumber,
		SpecialtyID:           req.SpecialtyID,
		Qualifications:        req.Qualifications,
		ExperienceYears:       req.ExperienceYears,
		ConsultationFeeOnsite: req.ConsultationFeeOnsite,
		ConsultationFeeOnline: req.ConsultationFeeOnline,
		ConsultationDuration:  req.ConsultationDuration,
		AvailableDays:         req.AvailableDays,
		AvailableFrom:         req.AvailableFrom,
		AvailableTo:           req.AvailableTo,
		Bio:                   req.Bio,
		Languages:             req.Languages,
		IsAvailable:           true,
	}
	if doctor.ConsultationDuration == 0 {
		doctor.ConsultationDuration = 30
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}
		doctor.UserID = user.ID
		return s.doctorRepo.Create(tx, doctor)
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	doctor.User = user
	doctorDTO := dto.NewDoctorDTO(doctor)
	return &doctorDTO, nil
}

func toDoctorDTOs(doctors []models.Doctor) []dto.DoctorDTO {
	result := make([]dto.DoctorDTO, 0, len(doctors))
	for i := range doctors {
		result = append(result, dto.NewDoctorDTO(&doctors[i]))
	}
	return result
}
