package repositories

import (
	"errors"
	"time"

	"medcare_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *models.Appointment) error
	FindByID(db *gorm.DB, id string) (*models.Appointment, error)
	FindAll(db *gorm.DB) ([]models.Appointment, error)
	FindByPatient(db *gorm.DB, patientID string) ([]models.Appointment, error)
	FindByDoctor(db *gorm.DB, doctorID string) ([]models.Appointment, error)
	Update(db *gorm.DB, appointment *models.Appointment) error
	Cancel(db *gorm.DB, id string, reason string) error
}

type AppointmentRepositoryImpl struct{}

func NewAppointmentRepository() AppointmentRepository {
	return &AppointmentRepositoryImpl{}
}

func withAppointmentPreloads(db *gorm.DB) *gorm.DB {
	return db.Preload("Patient.User").
		Preload("Doctor.User").
		Preload("Doctor.Specialty")
}

func (r *AppointmentRepositoryImpl) Create(db *gorm.DB, appointment *models.Appointment) error {
	return db.Create(appointment).Error
}

func (r *AppointmentRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := withAppointmentPreloads(db).First(&appointment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *AppointmentRepositoryImpl) FindAll(db *gorm.DB) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := withAppointmentPreloads(db).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error
	return appointments, err
}

func (r *AppointmentRepositoryImpl) FindByPatient(db *gorm.DB, patientID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := withAppointmentPreloads(db).
		Where("patient_id = ?", patientID).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error
	return appointments, err
}

func (r *AppointmentRepositoryImpl) FindByDoctor(db *gorm.DB, doctorID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := withAppointmentPreloads(db).
		Where("doctor_id = ?", doctorID).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error
	return appointments, err
}

func (r *AppointmentRepositoryImpl) Update(db *gorm.DB, appointment *models.Appointment) error {
	return db.Save(appointment).Error
}

func (r *AppointmentRepositoryImpl) Cancel(db *gorm.DB, id string, reason string) error {
	updates := map[string]interface{}{
		"status":       models.AppointmentStatusCancelled,
		"cancelled_at": time.Now(),
	}
	if reason != "" {
		updates["notes"] = "Cancelled: " + reason
	}

	result := db.Model(&models.Appointment{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}
