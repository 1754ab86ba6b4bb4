package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"medcare_backend/internal/apperrors"
	"medcare_backend/internal/auth"
	"medcare_backend/internal/middleware"
	"medcare_backend/internal/services/dto"
	"medcare_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeAuthService отвечает заранее заданными результатами
type fakeAuthService struct {
	loginResponse   *dto.LoginResponse
	loginErr        error
	refreshResponse *dto.LoginResponse
	refreshErr      error
	refreshedWith   string
}

func (f *fakeAuthService) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserDTO, error) {
	return &dto.UserDTO{Email: req.Email, FullName: req.FullName}, nil
}

func (f *fakeAuthService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return f.loginResponse, f.loginErr
}

func (f *fakeAuthService) Refresh(db *gorm.DB, refreshToken string) (*dto.LoginResponse, error) {
	f.refreshedWith = refreshToken
	return f.refreshResponse, f.refreshErr
}

func (f *fakeAuthService) ChangePassword(db *gorm.DB, userID, currentPassword, newPassword string) error {
	return nil
}

func newAuthHandlerRouter(svc *fakeAuthService) *gin.Engine {
	cookies := auth.NewCookieManager(auth.CookieConfig{
		Env:        "development",
		AccessTTL:  30 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	})
	h := NewAuthHandler(NewBaseHandler(validator.New()), svc, cookies)

	router := gin.New()
	router.Use(middleware.DBMiddleware(&gorm.DB{}))
	router.POST("/auth/login", h.Login)
	router.POST("/auth/refresh", h.RefreshToken)
	router.POST("/auth/logout", h.Logout)
	return router
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestLoginHandler_SetsCookies(t *testing.T) {
	svc := &fakeAuthService{
		loginResponse: &dto.LoginResponse{
			AccessToken:  "access-token-value",
			RefreshToken: "refresh-token-value",
			TokenType:    "bearer",
			ExpiresIn:    1800,
		},
	}
	router := newAuthHandlerRouter(svc)

	body := `{"email":"patient@example.com","password":"strong-password"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	responseCookies := w.Result().Cookies()
	access := cookieByName(responseCookies, auth.AccessTokenCookie)
	require.NotNil(t, access)
	assert.Equal(t, "access-token-value", access.Value)
	assert.True(t, access.HttpOnly)

	refresh := cookieByName(responseCookies, auth.RefreshTokenCookie)
	require.NotNil(t, refresh)
	assert.Equal(t, "refresh-token-value", refresh.Value)

	// Токены дублируются в теле для не-браузерных клиентов
	assert.Contains(t, w.Body.String(), "access-token-value")
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	svc := &fakeAuthService{loginErr: apperrors.ErrInvalidCredentials}
	router := newAuthHandlerRouter(svc)

	body := `{"email":"patient@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestLoginHandler_ValidationFailure(t *testing.T) {
	router := newAuthHandlerRouter(&fakeAuthService{})

	body := `{"email":"not-an-email","password":""}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRefreshHandler_ReadsCookie(t *testing.T) {
	svc := &fakeAuthService{
		refreshResponse: &dto.LoginResponse{
			AccessToken:  "new-access",
			RefreshToken: "new-refresh",
			TokenType:    "bearer",
		},
	}
	router := newAuthHandlerRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: auth.RefreshTokenCookie, Value: "old-refresh"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "old-refresh", svc.refreshedWith)

	// Пара cookie заменена на новую
	refresh := cookieByName(w.Result().Cookies(), auth.RefreshTokenCookie)
	require.NotNil(t, refresh)
	assert.Equal(t, "new-refresh", refresh.Value)
}

func TestRefreshHandler_BodyFallback(t *testing.T) {
	svc := &fakeAuthService{
		refreshResponse: &dto.LoginResponse{AccessToken: "new-access", RefreshToken: "new-refresh"},
	}
	router := newAuthHandlerRouter(svc)

	body := `{"refresh_token":"body-refresh"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body-refresh", svc.refreshedWith)
}

func TestRefreshHandler_MissingToken(t *testing.T) {
	router := newAuthHandlerRouter(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutHandler_ClearsCookies(t *testing.T) {
	router := newAuthHandlerRouter(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: auth.AccessTokenCookie, Value: "stale"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	access := cookieByName(w.Result().Cookies(), auth.AccessTokenCookie)
	require.NotNil(t, access)
	assert.Empty(t, access.Value)
	assert.Negative(t, access.MaxAge)
}
