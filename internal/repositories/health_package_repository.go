package repositories

import (
	"errors"

	"medcare_backend/internal/models"

	"gorm.io/gorm"
)

var ErrHealthPackageNotFound = errors.New("health package not found")

type HealthPackageRepository interface {
	FindAllActive(db *gorm.DB, category string) ([]models.HealthPackage, error)
	FindByID(db *gorm.DB, id string) (*models.HealthPackage, error)
	Create(db *gorm.DB, pkg *models.HealthPackage) error
	Update(db *gorm.DB, pkg *models.HealthPackage) error
	Delete(db *gorm.DB, id string) error
}

type HealthPackageRepositoryImpl struct{}

func NewHealthPackageRepository() HealthPackageRepository {
	return &HealthPackageRepositoryImpl{}
}

func (r *HealthPackageRepositoryImpl) FindAllActive(db *gorm.DB, category string) ([]models.HealthPackage, error) {
	query := db.Where("is_active = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var packages []models.HealthPackage
	// Популярные пакеты первыми
	err := query.Order("is_popular DESC, price").Find(&packages).Error
	return packages, err
}

func (r *HealthPackageRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.HealthPackage, error) {
	var pkg models.HealthPackage
	err := db.First(&pkg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHealthPackageNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *HealthPackageRepositoryImpl) Create(db *gorm.DB, pkg *models.HealthPackage) error {
	return db.Create(pkg).Error
}

func (r *HealthPackageRepositoryImpl) Update(db *gorm.DB, pkg *models.HealthPackage) error {
	return db.Save(pkg).Error
}

func (r *HealthPackageRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Model(&models.HealthPackage{}).Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHealthPackageNotFound
	}
	return nil
}
