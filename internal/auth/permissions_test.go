package auth

import (
	"testing"

	"medcare_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRoleIn(t *testing.T) {
	assert.True(t, RoleIn(models.UserRoleAdmin, AdminRoles))
	assert.True(t, RoleIn(models.UserRoleSuperAdmin, AdminRoles))
	assert.False(t, RoleIn(models.UserRolePatient, AdminRoles))
	assert.False(t, RoleIn(models.UserRoleDoctor, AdminRoles))
}

func TestRegistrationRoles(t *testing.T) {
	// Самостоятельно зарегистрироваться может только пациент
	assert.True(t, RoleIn(models.UserRolePatient, RegistrationRoles))
	assert.False(t, RoleIn(models.UserRoleDoctor, RegistrationRoles))
	assert.False(t, RoleIn(models.UserRoleAdmin, RegistrationRoles))
	assert.False(t, RoleIn(models.UserRoleStaff, RegistrationRoles))
}

func TestValidateRole(t *testing.T) {
	assert.NoError(t, ValidateRole(models.UserRolePatient))
	assert.NoError(t, ValidateRole(models.UserRoleSuperAdmin))
	assert.Error(t, ValidateRole(models.UserRole("receptionist")))
	assert.Error(t, ValidateRole(models.UserRole("")))
}
