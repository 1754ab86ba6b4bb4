package repositories

import (
	"errors"

	"medcare_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSpecialtyNotFound      = errors.New("specialty not found")
	ErrSpecialtyAlreadyExists = errors.New("specialty already exists")
)

type SpecialtyRepository interface {
	FindAllActive(db *gorm.DB) ([]models.Specialty, error)
	FindByID(db *gorm.DB, id string) (*models.Specialty, error)
	Create(db *gorm.DB, specialty *models.Specialty) error
	Update(db *gorm.DB, specialty *models.Specialty) error
}

type SpecialtyRepositoryImpl struct{}

func NewSpecialtyRepository() SpecialtyRepository {
	return &SpecialtyRepositoryImpl{}
}

func (r *SpecialtyRepositoryImpl) FindAllActive(db *gorm.DB) ([]models.Specialty, error) {
	var specialties []models.Specialty
	err := db.Where("is_active = ?", true).Order("name").Find(&specialties).Error
	return specialties, err
}

func (r *SpecialtyRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Specialty, error) {
	var specialty models.Specialty
	err := db.First(&specialty, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpecialtyNotFound
		}
		return nil, err
	}
	return &specialty, nil
}

func (r *SpecialtyRepositoryImpl) Create(db *gorm.DB, specialty *models.Specialty) error {
	var existing models.Specialty
	if err := db.Where("name = ?", specialty.Name).First(&existing).Error; err == nil {
		return ErrSpecialtyAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(specialty).Error
}

func (r *SpecialtyRepositoryImpl) Update(db *gorm.DB, specialty *models.Specialty) error {
	return db.Save(specialty).Error
}
