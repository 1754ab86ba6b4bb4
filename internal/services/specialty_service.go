package services

import (
	"medcare_backend/internal/apperrors"
	"medcare_backend/internal/models"
	"medcare_backend/internal/repositories"
	"medcare_backend/internal/services/dto"

	"gorm.io/gorm"
)

type SpecialtyService interface {
	ListActive(db *gorm.DB) ([]models.Specialty, error)
	GetByID(db *gorm.DB, id string) (*models.Specialty, error)
	Create(db *gorm.DB, req *dto.CreateSpecialtyRequest) (*models.Specialty, error)
	Update(db *gorm.DB, id string, req *dto.UpdateSpecialtyRequest) (*models.Specialty, error)
}

type SpecialtyServiceImpl struct {
	specialtyRepo repositories.SpecialtyRepository
}

func NewSpecialtyService(specialtyRepo repositories.SpecialtyRepository) SpecialtyService {
	return &SpecialtyServiceImpl{specialtyRepo: specialtyRepo}
}

func (s *SpecialtyServiceImpl) ListActive(db *gorm.DB) ([]models.Specialty, error) {
	specialties, err := s.specialtyRepo.FindAllActive(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return specialties, nil
}

func (s *SpecialtyServiceImpl) GetByID(db *gorm.DB, id string) (*models.Specialty, error) {
	specialty, err := s.specialtyRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSpecialtyNotFound) {
			return nil, apperrors.ErrSpecialtyNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return specialty, nil
}

func (s *SpecialtyServiceImpl) Create(db *gorm.DB, req *dto.CreateSpecialtyRequest) (*models.Specialty, error) {
	specialty := &models.Specialty{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		IsActive:    true,
	}

	if err := s.specialtyRepo.Create(db, specialty); err != nil {
		if apperrors.Is(err, repositories.ErrSpecialtyAlreadyExists) {
			return nil, apperrors.ErrSpecialtyExists
		}
		return nil, apperrors.InternalError(err)
	}
	return specialty, nil
}

func (s *SpecialtyServiceImpl) Update(db *gorm.DB, id string, req *dto.UpdateSpecialtyRequest) (*models.Specialty, error) {
	specialty, err := s.specialtyRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSpecialtyNotFound) {
			return nil, apperrors.ErrSpecialtyNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		specialty.Name = *req.Name
	}
	if req.Description != nil {
		specialty.Description = *req.Description
	}
	if req.Icon != nil {
		specialty.Icon = *req.Icon
	}
	if req.IsActive != nil {
		specialty.IsActive = *req.IsActive
	}

	if err := s.specialtyRepo.Update(db, specialty); err != nil {
		if apperrors.Is(err, repositories.ErrSpecialtyAlreadyExists) {
			return nil, apperrors.ErrSpecialtyExists
		}
		return nil, apperrors.InternalError(err)
	}
	return specialty, nil
}
