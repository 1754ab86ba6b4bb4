package repositories

import (
	"errors"
	"time"

	"medcare_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserFilter struct {
	Role     models.UserRole
	IsActive *bool
	Search   string
	Page     int
	PageSize int
}

type UserRepository interface {
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	Create(db *gorm.DB, user *models.User) error
	// CreateWithPatient создает пользователя и профиль пациента одной
	// транзакцией: либо оба, либо ни одного.
	CreateWithPatient(db *gorm.DB, user *models.User, patient *models.Patient) error
	Update(db *gorm.DB, user *models.User) error
	UpdateLastLogin(db *gorm.DB, userID string, at time.Time) error
	SetActive(db *gorm.DB, userID string, active bool) error
	Delete(db *gorm.DB, userID string) error
	FindWithFilter(db *gorm.DB, filter UserFilter) ([]models.User, int64, error)
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.Preload("Patient").Preload("Doctor").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.Preload("Patient").Preload("Doctor").
		First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	var existing models.User
	if err := db.Unscoped().Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	// Две одновременные регистрации могут пройти проверку выше,
	// проигравшую ловит уникальный индекс
	return translateDuplicate(db.Create(user).Error)
}

func (r *UserRepositoryImpl) CreateWithPatient(db *gorm.DB, user *models.User, patient *models.Patient) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := r.Create(tx, user); err != nil {
			return err
		}

		patient.UserID = user.ID
		return tx.Create(patient).Error
	})
}

func (r *UserRepositoryImpl) Update(db *gorm.DB, user *models.User) error {
	// Уникальные индексы на email и phone
	return translateDuplicate(db.Save(user).Error)
}

// translateDuplicate сводит нарушение уникального индекса к ErrUserAlreadyExists.
// Требует TranslateError в конфигурации gorm.
func translateDuplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUserAlreadyExists
	}
	return err
}

func (r *UserRepositoryImpl) UpdateLastLogin(db *gorm.DB, userID string, at time.Time) error {
	return db.Model(&models.User{}).Where("id = ?", userID).
		Update("last_login_at", at).Error
}

func (r *UserRepositoryImpl) SetActive(db *gorm.DB, userID string, active bool) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).
		Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(db *gorm.DB, userID string) error {
	// Soft delete: ставится deleted_at, запись остается в таблице
	return db.Delete(&models.User{}, "id = ?", userID).Error
}

func (r *UserRepositoryImpl) FindWithFilter(db *gorm.DB, filter UserFilter) ([]models.User, int64, error) {
	query := db.Model(&models.User{})

	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("email ILIKE ? OR full_name ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var users []models.User
	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}
