package auth

import (
	"errors"

	"medcare_backend/internal/models"
)

// Наборы ролей для route guard'ов. Каждый endpoint объявляет
// требуемый набор один раз при регистрации маршрута.
var (
	// AdminRoles - персонал с правом управления справочниками и пользователями
	AdminRoles = []models.UserRole{models.UserRoleAdmin, models.UserRoleSuperAdmin}

	// StaffRoles - любой сотрудник клиники
	StaffRoles = []models.UserRole{models.UserRoleStaff, models.UserRoleAdmin, models.UserRoleSuperAdmin}

	// ClinicalRoles - роли с доступом ко всем записям на прием
	ClinicalRoles = []models.UserRole{models.UserRoleDoctor, models.UserRoleStaff, models.UserRoleAdmin, models.UserRoleSuperAdmin}

	// RegistrationRoles - роли, доступные при самостоятельной регистрации.
	// Врачи и персонал заводятся администратором.
	RegistrationRoles = []models.UserRole{models.UserRolePatient}
)

// RoleIn проверяет вхождение роли в набор
func RoleIn(role models.UserRole, allowed []models.UserRole) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// ValidateRole проверяет валидность роли
func ValidateRole(role models.UserRole) error {
	switch role {
	case models.UserRolePatient, models.UserRoleDoctor, models.UserRoleAdmin,
		models.UserRoleStaff, models.UserRoleSuperAdmin:
		return nil
	default:
		return errors.New("invalid role")
	}
}
