package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medcare_backend/internal/auth"
	"medcare_backend/internal/models"
	"medcare_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthTestRouter() (*gin.Engine, *auth.TokenManager, *auth.CookieManager) {
	tokens := auth.NewTokenManager(auth.TokenConfig{
		Secret:     "unit-test-signing-material-not-for-production-use",
		AccessTTL:  30 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	})
	cookies := auth.NewCookieManager(auth.CookieConfig{
		Env:        "development",
		AccessTTL:  tokens.AccessTTL(),
		RefreshTTL: tokens.RefreshTTL(),
	})

	router := gin.New()
	router.GET("/protected", AuthMiddleware(tokens, cookies), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c)})
	})
	return router, tokens, cookies
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	router, tokens, _ := newAuthTestRouter()

	token, err := tokens.IssueAccessToken("user-42")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: auth.AccessTokenCookie, Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
}

func TestAuthMiddleware_MissingCookie(t *testing.T) {
	router, _, _ := newAuthTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	router, _, _ := newAuthTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: auth.AccessTokenCookie, Value: "not-a-token"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// Refresh токен не дает доступа к защищенным маршрутам
func TestAuthMiddleware_RefreshTokenRejected(t *testing.T) {
	router, tokens, _ := newAuthTestRouter()

	refresh, err := tokens.IssueRefreshToken("user-42")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: auth.AccessTokenCookie, Value: refresh})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func setUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextkeys.CurrentUserKey, user)
		c.Next()
	}
}

func TestRequireRoles(t *testing.T) {
	admin := &models.User{Role: models.UserRoleAdmin}
	patient := &models.User{Role: models.UserRolePatient}

	tests := []struct {
		name     string
		user     *models.User
		expected int
	}{
		{"admin allowed", admin, http.StatusOK},
		{"patient forbidden", patient, http.StatusForbidden},
		{"no user unauthorized", nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			chain := []gin.HandlerFunc{}
			if tt.user != nil {
				chain = append(chain, setUser(tt.user))
			}
			chain = append(chain, RequireRoles(auth.AdminRoles...), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})
			router.GET("/admin", chain...)

			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expected, w.Code)
		})
	}
}
