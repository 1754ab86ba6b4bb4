package services

import (
	"time"

	"medcare_backend/internal/apperrors"
	"medcare_backend/internal/models"
	"medcare_backend/internal/repositories"
	"medcare_backend/internal/services/dto"

	"gorm.io/gorm"
)

type PatientService interface {
	GetProfile(db *gorm.DB, userID string) (*models.Patient, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdatePatientProfileRequest) (*models.Patient, error)
}

type PatientServiceImpl struct {
	patientRepo repositories.PatientRepository
}

func NewPatientService(patientRepo repositories.PatientRepository) PatientService {
	return &PatientServiceImpl{patientRepo: patientRepo}
}

func (s *PatientServiceImpl) GetProfile(db *gorm.DB, userID string) (*models.Patient, error) {
	patient, err := s.patientRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPatientNotFound) {
			return nil, apperrors.ErrPatientNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return patient, nil
}

// UpdateProfile - частичное обновление профиля пациента.
// Нулевые поля запроса не трогают сохраненные значения.
func (s *PatientServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdatePatientProfileRequest) (*models.Patient, error) {
	patient, err := s.patientRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPatientNotFound) {
			return nil, apperrors.ErrPatientNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, apperrors.ValidationError("date_of_birth must be in YYYY-MM-DD format")
		}
		patient.DateOfBirth = &dob
	}
	if req.Gender != nil {
		patient.Gender = models.GenderType(*req.Gender)
	}
	if req.BloodGroup != nil {
		patient.BloodGroup = *req.BloodGroup
	}
	if req.HeightCm != nil {
		patient.HeightCm = req.HeightCm
	}
	if req.WeightKg != nil {
		patient.WeightKg = req.WeightKg
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}
	if req.City != nil {
		patient.City = *req.City
	}
	if req.State != nil {
		patient.State = *req.State
	}
	if req.Country != nil {
		patient.Country = *req.Country
	}
	if req.Zipcode != nil {
		patient.Zipcode = *req.Zipcode
	}
	if req.EmergencyContactName != nil {
		patient.EmergencyContactName = *req.EmergencyContactName
	}
	if req.EmergencyContactPhone != nil {
		patient.EmergencyContactPhone = *req.EmergencyContactPhone
	}
	if req.InsuranceProvider != nil {
		patient.InsuranceProvider = *req.InsuranceProvider
	}
	if req.InsurancePolicyNumber != nil {
		patient.InsurancePolicyNumber = *req.InsurancePolicyNumber
	}
	if req.InsuranceExpiryDate != nil {
		expiry, err := time.Parse("2006-01-02", *req.InsuranceExpiryDate)
		if err != nil {
			return nil, apperrors.ValidationError("insurance_expiry_date must be in YYYY-MM-DD format")
		}
		patient.InsuranceExpiryDate = &expiry
	}
	if req.MedicalConditions != nil {
		patient.MedicalConditions = req.MedicalConditions
	}
	if req.Allergies != nil {
		patient.Allergies = req.Allergies
	}
	if req.CurrentMedications != nil {
		patient.CurrentMedications = req.CurrentMedications
	}

	if err := s.patientRepo.Update(db, patient); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return patient, nil
}
