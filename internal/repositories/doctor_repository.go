package repositories

import (
	"errors"

	"medcare_backend/internal/models"

	"gorm.io/gorm"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorFilter struct {
	SpecialtyID string
	Limit       int
	Offset      int
}

type DoctorRepository interface {
	FindAll(db *gorm.DB, filter DoctorFilter) ([]models.Doctor, error)
	FindByID(db *gorm.DB, id string) (*models.Doctor, error)
	FindByUserID(db *gorm.DB, userID string) (*models.Doctor, error)
	Search(db *gorm.DB, query string, specialtyID string) ([]models.Doctor, error)
	Create(db *gorm.DB, doctor *models.Doctor) error
	Update(db *gorm.DB, doctor *models.Doctor) error
}

type DoctorRepositoryImpl struct{}

func NewDoctorRepository() DoctorRepository {
	return &DoctorRepositoryImpl{}
}

// activeDoctors - базовый запрос: только доступные врачи активных пользователей
func activeDoctors(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Doctor{}).
		Joins("JOIN users ON users.id = doctors.user_id AND users.deleted_at IS NULL").
		Where("users.is_active = ?", true).
		Where("doctors.is_available = ?", true).
		Preload("User").Preload("Specialty")
}

func (r *DoctorRepositoryImpl) FindAll(db *gorm.DB, filter DoctorFilter) ([]models.Doctor, error) {
	query := activeDoctors(db)

	if filter.SpecialtyID != "" {
		query = query.Where("doctors.specialty_id = ?", filter.SpecialtyID)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}

	var doctors []models.Doctor
	err := query.Order("doctors.rating DESC, doctors.total_reviews DESC").
		Offset(filter.Offset).Limit(limit).
		Find(&doctors).Error
	return doctors, err
}

func (r *DoctorRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := db.Preload("User").Preload("Specialty").
		Joins("JOIN users ON users.id = doctors.user_id AND users.deleted_at IS NULL").
		Where("users.is_active = ?", true).
		First(&doctor, "doctors.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *DoctorRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := db.Preload("User").Preload("Specialty").
		First(&doctor, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *DoctorRepositoryImpl) Search(db *gorm.DB, query string, specialtyID string) ([]models.Doctor, error) {
	q := activeDoctors(db).
		Where("users.full_name ILIKE ?", "%"+query+"%")

	if specialtyID != "" {
		q = q.Where("doctors.specialty_id = ?", specialtyID)
	}

	var doctors []models.Doctor
	err := q.Order("doctors.rating DESC").Find(&doctors).Error
	return doctors, err
}

func (r *DoctorRepositoryImpl) Create(db *gorm.DB, doctor *models.Doctor) error {
	return db.Create(doctor).Error
}

func (r *DoctorRepositoryImpl) Update(db *gorm.DB, doctor *models.Doctor) error {
	return db.Save(doctor).Error
}
