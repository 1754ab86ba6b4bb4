package middleware

import (
	"errors"

	"medcare_backend/internal/apperrors"
	"medcare_backend/internal/auth"
	"medcare_backend/internal/logger"
	"medcare_backend/internal/models"
	"medcare_backend/internal/repositories"
	"medcare_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware проверяет access токен из cookie и кладет id пользователя в контекст.
// Любая проблема с токеном дает 401 без уточнения причины.
func AuthMiddleware(tokens *auth.TokenManager, cookies *auth.CookieManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := cookies.ReadCookie(c, auth.AccessTokenCookie)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrMissingCredential)
			c.Abort()
			return
		}

		claims, err := tokens.VerifyToken(tokenString, auth.TokenTypeAccess)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set(contextkeys.UserIDKey, claims.Subject)
		c.Request = c.Request.WithContext(
			logger.WithUserID(c.Request.Context(), claims.Subject),
		)

		c.Next()
	}
}

// CurrentUserMiddleware загружает пользователя из базы по id из токена.
// Удаленные и заблокированные учетные записи отсекаются здесь.
func CurrentUserMiddleware(userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		if userID == "" {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		db, ok := c.Request.Context().Value(contextkeys.DBContextKey).(*gorm.DB)
		if !ok {
			apperrors.HandleError(c, apperrors.InternalError(errors.New("database is not attached to request context")))
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(db, userID)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		if !user.IsActive {
			apperrors.HandleError(c, apperrors.ErrInactiveAccount)
			c.Abort()
			return
		}

		c.Set(contextkeys.CurrentUserKey, user)
		c.Set(contextkeys.UserRoleKey, user.Role)

		c.Next()
	}
}

// RequireRoles пропускает только пользователей с одной из перечисленных ролей
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetCurrentUser(c)
		if user == nil {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		if !auth.RoleIn(user.Role, roles) {
			apperrors.HandleError(c, apperrors.ErrForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID возвращает id пользователя из контекста или пустую строку
func GetUserID(c *gin.Context) string {
	value, exists := c.Get(contextkeys.UserIDKey)
	if !exists {
		return ""
	}
	userID, _ := value.(string)
	return userID
}

// GetCurrentUser возвращает загруженного пользователя или nil
func GetCurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(contextkeys.CurrentUserKey)
	if !exists {
		return nil
	}
	user, _ := value.(*models.User)
	return user
}
