package auth

import (
	"net/http"
	"time"

	"medcare_backend/internal/apperrors"

	"github.com/gin-gonic/gin"
)

// Имена сессионных cookie
const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

// CookieConfig - конфигурация транспорта сессии
type CookieConfig struct {
	Env        string // "development" или "production"
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// CookieManager переносит токены через HTTP границу в httpOnly cookie.
// О содержимом токенов он ничего не знает - только непрозрачные строки.
type CookieManager struct {
	cfg CookieConfig
}

func NewCookieManager(cfg CookieConfig) *CookieManager {
	return &CookieManager{cfg: cfg}
}

func (cm *CookieManager) secure() bool {
	return cm.cfg.Env != "development"
}

func (cm *CookieManager) sameSite() http.SameSite {
	if cm.cfg.Env == "development" {
		return http.SameSiteLaxMode
	}
	return http.SameSiteStrictMode
}

// SetAuthCookies выставляет пару сессионных cookie.
// MaxAge каждой cookie совпадает со временем жизни соответствующего токена.
func (cm *CookieManager) SetAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetSameSite(cm.sameSite())
	c.SetCookie(AccessTokenCookie, accessToken, int(cm.cfg.AccessTTL.Seconds()), "/", "", cm.secure(), true)
	c.SetCookie(RefreshTokenCookie, refreshToken, int(cm.cfg.RefreshTTL.Seconds()), "/", "", cm.secure(), true)
}

// ClearAuthCookies удаляет сессионные cookie на клиенте
func (cm *CookieManager) ClearAuthCookies(c *gin.Context) {
	c.SetSameSite(cm.sameSite())
	c.SetCookie(AccessTokenCookie, "", -1, "/", "", cm.secure(), true)
	c.SetCookie(RefreshTokenCookie, "", -1, "/", "", cm.secure(), true)
}

// ReadCookie читает cookie по имени
func (cm *CookieManager) ReadCookie(c *gin.Context, name string) (string, error) {
	value, err := c.Cookie(name)
	if err != nil || value == "" {
		return "", apperrors.ErrMissingCredential
	}
	return value, nil
}
