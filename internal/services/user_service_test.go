package services

import (
	"testing"

	"medcare_backend/internal/apperrors"
	"medcare_backend/internal/models"
	"medcare_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetActive(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	admin := repo.add(&models.User{Email: "admin@example.com", Role: models.UserRoleAdmin, IsActive: true})
	patient := repo.add(&models.User{Email: "patient@example.com", Role: models.UserRolePatient, IsActive: true})

	require.NoError(t, svc.SetActive(nil, admin.ID, patient.ID, false))
	assert.False(t, patient.IsActive)

	require.NoError(t, svc.SetActive(nil, admin.ID, patient.ID, true))
	assert.True(t, patient.IsActive)
}

// Администратор не может заблокировать собственную учетную запись
func TestSetActive_Self(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	admin := repo.add(&models.User{Email: "admin@example.com", Role: models.UserRoleAdmin, IsActive: true})

	err := svc.SetActive(nil, admin.ID, admin.ID, false)
	assert.ErrorIs(t, err, apperrors.ErrCannotModifySelf)
	assert.True(t, admin.IsActive)
}

func TestSetActive_SuperAdminProtected(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	admin := repo.add(&models.User{Email: "admin@example.com", Role: models.UserRoleAdmin, IsActive: true})
	root := repo.add(&models.User{Email: "root@example.com", Role: models.UserRoleSuperAdmin, IsActive: true})

	err := svc.SetActive(nil, admin.ID, root.ID, false)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestSetActive_UnknownTarget(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	admin := repo.add(&models.User{Email: "admin@example.com", Role: models.UserRoleAdmin, IsActive: true})

	err := svc.SetActive(nil, admin.ID, "missing", false)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestSetRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	admin := repo.add(&models.User{Email: "admin@example.com", Role: models.UserRoleAdmin, IsActive: true})
	patient := repo.add(&models.User{Email: "patient@example.com", Role: models.UserRolePatient, IsActive: true})

	require.NoError(t, svc.SetRole(nil, admin.ID, patient.ID, models.UserRoleStaff))
	assert.Equal(t, models.UserRoleStaff, patient.Role)

	// Собственная роль не меняется
	assert.ErrorIs(t, svc.SetRole(nil, admin.ID, admin.ID, models.UserRoleStaff), apperrors.ErrCannotModifySelf)

	// Повышение до super_admin запрещено
	assert.ErrorIs(t, svc.SetRole(nil, admin.ID, patient.ID, models.UserRoleSuperAdmin), apperrors.ErrForbidden)

	// Несуществующая роль отклоняется
	assert.ErrorIs(t, svc.SetRole(nil, admin.ID, patient.ID, models.UserRole("janitor")), apperrors.ErrInvalidUserRole)
}

func TestUpdateProfile(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user := repo.add(&models.User{Email: "user@example.com", FullName: "Old Name", Role: models.UserRolePatient, IsActive: true})

	newName := "New Name"
	updated, err := svc.UpdateProfile(nil, user.ID, &dto.UpdateProfileRequest{FullName: &newName})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.FullName)

	// Не переданные поля не меняются
	assert.Equal(t, "user@example.com", updated.Email)
}

func TestUpdateProfile_AllFields(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user := repo.add(&models.User{Email: "user@example.com", FullName: "Old Name", Role: models.UserRolePatient, IsActive: true})

	newName := "New Name"
	phone := "+77001234567"
	imageURL := "https://cdn.example.com/avatars/user.png"
	updated, err := svc.UpdateProfile(nil, user.ID, &dto.UpdateProfileRequest{
		FullName:        &newName,
		Phone:           &phone,
		ProfileImageURL: &imageURL,
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.FullName)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, phone, *updated.Phone)
	assert.Equal(t, imageURL, updated.ProfileImageURL)
	assert.Equal(t, imageURL, user.ProfileImageURL)
}
