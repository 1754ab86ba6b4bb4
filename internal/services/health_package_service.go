package services

import (
	"medcare_backend/internal/apperrors"
	"medcare_backend/internal/models"
	"medcare_backend/internal/repositories"
	"medcare_backend/internal/services/dto"

	"gorm.io/gorm"
)

type HealthPackageService interface {
	ListActive(db *gorm.DB, category string) ([]models.HealthPackage, error)
	GetByID(db *gorm.DB, id string) (*models.HealthPackage, error)
	Create(db *gorm.DB, req *dto.CreateHealthPackageRequest) (*models.HealthPackage, error)
	Update(db *gorm.DB, id string, req *dto.UpdateHealthPackageRequest) (*models.HealthPackage, error)
	Delete(db *gorm.DB, id string) error
}

type HealthPackageServiceImpl struct {
	packageRepo repositories.HealthPackageRepository
}

func NewHealthPackageService(packageRepo repositories.HealthPackageRepository) HealthPackageService {
	return &HealthPackageServiceImpl{packageRepo: packageRepo}
}

func (s *HealthPackageServiceImpl) ListActive(db *gorm.DB, category string) ([]models.HealthPackage, error) {
	packages, err := s.packageRepo.FindAllActive(db, category)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return packages, nil
}

func (s *HealthPackageServiceImpl) GetByID(db *gorm.DB, id string) (*models.HealthPackage, error) {
	pkg, err := s.packageRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrHealthPackageNotFound) {
			return nil, apperrors.ErrHealthPackageNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return pkg, nil
}

func (s *HealthPackageServiceImpl) Create(db *gorm.DB, req *dto.CreateHealthPackageRequest) (*models.HealthPackage, error) {
	pkg := &models.HealthPackage{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		TestsIncluded: req.TestsIncluded,
		DurationHours: req.DurationHours,
		Category:      req.Category,
		IsPopular:     req.IsPopular,
		IsActive:      true,
	}

	if err := s.packageRepo.Create(db, pkg); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return pkg, nil
}

func (s *HealthPackageServiceImpl) Update(db *gorm.DB, id string, req *dto.UpdateHealthPackageRequest) (*models.HealthPackage, error) {
	pkg, err := s.packageRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrHealthPackageNotFound) {
			return nil, apperrors.ErrHealthPackageNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		pkg.Name = *req.Name
	}
	if req.Description != nil {
		pkg.Description = *req.Description
	}
	if req.Price != nil {
		pkg.Price = *req.Price
	}
	if req.OriginalPrice != nil {
		pkg.OriginalPrice = req.OriginalPrice
	}
	if req.TestsIncluded != nil {
		pkg.TestsIncluded = req.TestsIncluded
	}
	if req.DurationHours != nil {
		pkg.DurationHours = *req.DurationHours
	}
	if req.Category != nil {
		pkg.Category = *req.Category
	}
	if req.IsPopular != nil {
		pkg.IsPopular = *req.IsPopular
	}
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}

	if err := s.packageRepo.Update(db, pkg); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return pkg, nil
}

// Delete деактивирует пакет, запись в базе остается
func (s *HealthPackageServiceImpl) Delete(db *gorm.DB, id string) error {
	if err := s.packageRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrHealthPackageNotFound) {
			return apperrors.ErrHealthPackageNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
