package repositories

import (
	"errors"

	"medcare_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPatientNotFound = errors.New("patient not found")

type PatientRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Patient, error)
	FindByUserID(db *gorm.DB, userID string) (*models.Patient, error)
	Create(db *gorm.DB, patient *models.Patient) error
	Update(db *gorm.DB, patient *models.Patient) error
}

type PatientRepositoryImpl struct{}

func NewPatientRepository() PatientRepository {
	return &PatientRepositoryImpl{}
}

func (r *PatientRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Patient, error) {
	var patient models.Patient
	err := db.Preload("User").First(&patient, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return &patient, nil
}

func (r *PatientRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.Patient, error) {
	var patient models.Patient
	err := db.Preload("User").First(&patient, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return &patient, nil
}

func (r *PatientRepositoryImpl) Create(db *gorm.DB, patient *models.Patient) error {
	return db.Create(patient).Error
}

func (r *PatientRepositoryImpl) Update(db *gorm.DB, patient *models.Patient) error {
	return db.Save(patient).Error
}
