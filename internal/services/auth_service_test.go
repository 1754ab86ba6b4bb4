package services

import (
	"testing"
	"time"

	"medcare_backend/internal/apperrors"
	"medcare_backend/internal/auth"
	"medcare_backend/internal/email"
	"medcare_backend/internal/models"
	"medcare_backend/internal/repositories"
	"medcare_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeUserRepo держит пользователей в памяти, база не нужна
type fakeUserRepo struct {
	byID           map[string]*models.User
	byEmail        map[string]*models.User
	patients       []*models.Patient
	lastLoginCalls int
	lastLoginErr   error
	nextID         int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]*models.User),
	}
}

func (f *fakeUserRepo) add(user *models.User) *models.User {
	f.nextID++
	if user.ID == "" {
		user.ID = "user-" + string(rune('0'+f.nextID))
	}
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return user
}

func (f *fakeUserRepo) FindByID(db *gorm.DB, id string) (*models.User, error) {
	if user, ok := f.byID[id]; ok {
		return user, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	if user, ok := f.byEmail[email]; ok {
		return user, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) Create(db *gorm.DB, user *models.User) error {
	if _, exists := f.byEmail[user.Email]; exists {
		return repositories.ErrUserAlreadyExists
	}
	f.add(user)
	return nil
}

func (f *fakeUserRepo) CreateWithPatient(db *gorm.DB, user *models.User, patient *models.Patient) error {
	if err := f.Create(db, user); err != nil {
		return err
	}
	patient.UserID = user.ID
	f.patients = append(f.patients, patient)
	return nil
}

func (f *fakeUserRepo) Update(db *gorm.DB, user *models.User) error {
	if _, ok := f.byID[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(db *gorm.DB, userID string, at time.Time) error {
	f.lastLoginCalls++
	if f.lastLoginErr != nil {
		return f.lastLoginErr
	}
	if user, ok := f.byID[userID]; ok {
		user.LastLoginAt = &at
	}
	return nil
}

func (f *fakeUserRepo) SetActive(db *gorm.DB, userID string, active bool) error {
	user, ok := f.byID[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.IsActive = active
	return nil
}

func (f *fakeUserRepo) Delete(db *gorm.DB, userID string) error {
	user, ok := f.byID[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	delete(f.byID, userID)
	delete(f.byEmail, user.Email)
	return nil
}

func (f *fakeUserRepo) FindWithFilter(db *gorm.DB, filter repositories.UserFilter) ([]models.User, int64, error) {
	users := make([]models.User, 0, len(f.byID))
	for _, user := range f.byID {
		users = append(users, *user)
	}
	return users, int64(len(users)), nil
}

// fakeEmailProvider записывает отправленные письма
type fakeEmailProvider struct {
	welcomeTo     []string
	confirmations int
}

func (f *fakeEmailProvider) Send(e *email.Email) error { return nil }

func (f *fakeEmailProvider) SendWelcome(to string, fullName string) error {
	f.welcomeTo = append(f.welcomeTo, to)
	return nil
}

func (f *fakeEmailProvider) SendAppointmentConfirmation(to string, fullName, doctorName, date, timeOfDay string) error {
	f.confirmations++
	return nil
}

func (f *fakeEmailProvider) Validate() error { return nil }

func newTestAuthService() (AuthService, *fakeUserRepo, *fakeEmailProvider, *auth.TokenManager) {
	repo := newFakeUserRepo()
	emails := &fakeEmailProvider{}
	tokens := auth.NewTokenManager(auth.TokenConfig{
		Secret:     "unit-test-signing-material-not-for-production-use",
		AccessTTL:  30 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	})
	return NewAuthService(repo, tokens, emails), repo, emails, tokens
}

func addActiveUser(repo *fakeUserRepo, email, password string) *models.User {
	hash, _ := auth.HashPassword(password)
	return repo.add(&models.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     "Test User",
		Role:         models.UserRolePatient,
		IsActive:     true,
	})
}

func TestRegister_Patient(t *testing.T) {
	svc, repo, emails, _ := newTestAuthService()

	user, err := svc.Register(nil, &dto.RegisterRequest{
		Email:    "patient@example.com",
		Password: "strong-password",
		FullName: "Ivan Petrov",
		Role:     "patient",
	})
	require.NoError(t, err)
	assert.Equal(t, "patient@example.com", user.Email)
	assert.Equal(t, models.UserRolePatient, user.Role)
	assert.True(t, user.IsActive)

	// Профиль пациента создан вместе с пользователем
	require.Len(t, repo.patients, 1)
	assert.Equal(t, user.ID, repo.patients[0].UserID)

	// Приветственное письмо ушло
	assert.Equal(t, []string{"patient@example.com"}, emails.welcomeTo)

	// Пароль хранится только в виде хеша
	stored := repo.byEmail["patient@example.com"]
	assert.NotEqual(t, "strong-password", stored.PasswordHash)
	assert.True(t, auth.CheckPasswordHash("strong-password", stored.PasswordHash))
}

func TestRegister_RoleRestricted(t *testing.T) {
	svc, repo, _, _ := newTestAuthService()

	for _, role := range []string{"doctor", "admin", "staff", "super_admin"} {
		_, err := svc.Register(nil, &dto.RegisterRequest{
			Email:    role + "@example.com",
			Password: "strong-password",
			FullName: "Someone",
			Role:     role,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole, "role %s", role)
	}
	assert.Empty(t, repo.byID)
}

func TestRegister_WeakPassword(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	_, err := svc.Register(nil, &dto.RegisterRequest{
		Email:    "patient@example.com",
		Password: "short",
		FullName: "Ivan Petrov",
		Role:     "patient",
	})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, repo, _, _ := newTestAuthService()
	addActiveUser(repo, "taken@example.com", "strong-password")

	_, err := svc.Register(nil, &dto.RegisterRequest{
		Email:    "taken@example.com",
		Password: "strong-password",
		FullName: "Ivan Petrov",
		Role:     "patient",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	svc, repo, _, tokens := newTestAuthService()
	user := addActiveUser(repo, "patient@example.com", "strong-password")

	response, err := svc.Login(nil, &dto.LoginRequest{
		Email:    "patient@example.com",
		Password: "strong-password",
	})
	require.NoError(t, err)

	assert.Equal(t, "bearer", response.TokenType)
	assert.Equal(t, int64((30 * time.Minute).Seconds()), response.ExpiresIn)
	assert.Equal(t, user.ID, response.User.ID)

	accessClaims, err := tokens.VerifyToken(response.AccessToken, auth.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, user.ID, accessClaims.Subject)

	refreshClaims, err := tokens.VerifyToken(response.RefreshToken, auth.TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, user.ID, refreshClaims.Subject)

	assert.Equal(t, 1, repo.lastLoginCalls)
	assert.NotNil(t, user.LastLoginAt)
}

// Неизвестный email и неверный пароль неразличимы для клиента
func TestLogin_InvalidCredentials(t *testing.T) {
	svc, repo, _, _ := newTestAuthService()
	addActiveUser(repo, "patient@example.com", "strong-password")

	_, unknownEmail := svc.Login(nil, &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "strong-password",
	})
	_, wrongPassword := svc.Login(nil, &dto.LoginRequest{
		Email:    "patient@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, unknownEmail, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassword, apperrors.ErrInvalidCredentials)
	assert.Equal(t, unknownEmail, wrongPassword)
}

func TestLogin_InactiveAccount(t *testing.T) {
	svc, repo, _, _ := newTestAuthService()
	user := addActiveUser(repo, "patient@example.com", "strong-password")
	user.IsActive = false

	_, err := svc.Login(nil, &dto.LoginRequest{
		Email:    "patient@example.com",
		Password: "strong-password",
	})
	assert.ErrorIs(t, err, apperrors.ErrInactiveAccount)
}

// Сбой записи last_login не валит логин
func TestLogin_LastLoginFailureIgnored(t *testing.T) {
	svc, repo, _, _ := newTestAuthService()
	addActiveUser(repo, "patient@example.com", "strong-password")
	repo.lastLoginErr = gorm.ErrInvalidDB

	response, err := svc.Login(nil, &dto.LoginRequest{
		Email:    "patient@example.com",
		Password: "strong-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, response.AccessToken)
}

func TestRefresh_Rotation(t *testing.T) {
	svc, repo, _, tokens := newTestAuthService()
	user := addActiveUser(repo, "patient@example.com", "strong-password")

	refresh, err := tokens.IssueRefreshToken(user.ID)
	require.NoError(t, err)

	response, err := svc.Refresh(nil, refresh)
	require.NoError(t, err)

	// Выпущена полноценная новая пара
	claims, err := tokens.VerifyToken(response.AccessToken, auth.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)

	_, err = tokens.VerifyToken(response.RefreshToken, auth.TokenTypeRefresh)
	assert.NoError(t, err)
}

// Access токен не принимается в качестве refresh
func TestRefresh_AccessTokenRejected(t *testing.T) {
	svc, repo, _, tokens := newTestAuthService()
	user := addActiveUser(repo, "patient@example.com", "strong-password")

	access, err := tokens.IssueAccessToken(user.ID)
	require.NoError(t, err)

	_, err = svc.Refresh(nil, access)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestRefresh_UnknownUser(t *testing.T) {
	svc, _, _, tokens := newTestAuthService()

	refresh, err := tokens.IssueRefreshToken("deleted-user")
	require.NoError(t, err)

	_, err = svc.Refresh(nil, refresh)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestRefresh_DeactivatedUser(t *testing.T) {
	svc, repo, _, tokens := newTestAuthService()
	user := addActiveUser(repo, "patient@example.com", "strong-password")

	refresh, err := tokens.IssueRefreshToken(user.ID)
	require.NoError(t, err)

	user.IsActive = false
	_, err = svc.Refresh(nil, refresh)
	assert.ErrorIs(t, err, apperrors.ErrInactiveAccount)
}

func TestChangePassword(t *testing.T) {
	svc, repo, _, _ := newTestAuthService()
	user := addActiveUser(repo, "patient@example.com", "strong-password")

	err := svc.ChangePassword(nil, user.ID, "strong-password", "new-strong-password")
	require.NoError(t, err)
	assert.True(t, auth.CheckPasswordHash("new-strong-password", user.PasswordHash))
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	svc, repo, _, _ := newTestAuthService()
	user := addActiveUser(repo, "patient@example.com", "strong-password")

	err := svc.ChangePassword(nil, user.ID, "wrong-password", "new-strong-password")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
