package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medcare_backend/internal/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newCookieTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	return c, w
}

func findCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("cookie %q not found in response", name)
	return nil
}

func TestSetAuthCookies_Development(t *testing.T) {
	cm := NewCookieManager(CookieConfig{
		Env:        "development",
		AccessTTL:  30 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	})

	c, w := newCookieTestContext()
	cm.SetAuthCookies(c, "access-value", "refresh-value")

	access := findCookie(t, w, AccessTokenCookie)
	assert.Equal(t, "access-value", access.Value)
	assert.True(t, access.HttpOnly)
	assert.False(t, access.Secure)
	assert.Equal(t, "/", access.Path)
	assert.Equal(t, int((30 * time.Minute).Seconds()), access.MaxAge)

	refresh := findCookie(t, w, RefreshTokenCookie)
	assert.Equal(t, "refresh-value", refresh.Value)
	assert.True(t, refresh.HttpOnly)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), refresh.MaxAge)
}

func TestSetAuthCookies_Production(t *testing.T) {
	cm := NewCookieManager(CookieConfig{
		Env:        "production",
		AccessTTL:  30 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	})

	c, w := newCookieTestContext()
	cm.SetAuthCookies(c, "access-value", "refresh-value")

	access := findCookie(t, w, AccessTokenCookie)
	assert.True(t, access.Secure)
	assert.True(t, access.HttpOnly)
}

func TestClearAuthCookies(t *testing.T) {
	cm := NewCookieManager(CookieConfig{Env: "development"})

	c, w := newCookieTestContext()
	cm.ClearAuthCookies(c)

	access := findCookie(t, w, AccessTokenCookie)
	assert.Empty(t, access.Value)
	assert.Negative(t, access.MaxAge)

	refresh := findCookie(t, w, RefreshTokenCookie)
	assert.Empty(t, refresh.Value)
	assert.Negative(t, refresh.MaxAge)
}

func TestReadCookie(t *testing.T) {
	cm := NewCookieManager(CookieConfig{Env: "development"})

	c, _ := newCookieTestContext()
	c.Request.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "token-value"})

	value, err := cm.ReadCookie(c, AccessTokenCookie)
	require.NoError(t, err)
	assert.Equal(t, "token-value", value)
}

func TestReadCookie_Missing(t *testing.T) {
	cm := NewCookieManager(CookieConfig{Env: "development"})

	c, _ := newCookieTestContext()
	_, err := cm.ReadCookie(c, AccessTokenCookie)
	assert.ErrorIs(t, err, apperrors.ErrMissingCredential)

	c2, _ := newCookieTestContext()
	c2.Request.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: ""})
	_, err = cm.ReadCookie(c2, AccessTokenCookie)
	assert.ErrorIs(t, err, apperrors.ErrMissingCredential)
}
