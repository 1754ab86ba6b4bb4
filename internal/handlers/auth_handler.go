package handlers

import (
	"net/http"

	"medcare_backend/internal/apperrors"
	"medcare_backend/internal/auth"
	"medcare_backend/internal/services"
	"medcare_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	BaseHandler
	authService services.AuthService
	cookies     *auth.CookieManager
}

func NewAuthHandler(base BaseHandler, authService services.AuthService, cookies *auth.CookieManager) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		cookies:     cookies,
	}
}

// Register - POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.authService.Register(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login - POST /auth/login.
// Токены уходят и в httpOnly cookie, и в теле ответа.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.authService.Login(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.cookies.SetAuthCookies(c, response.AccessToken, response.RefreshToken)
	c.JSON(http.StatusOK, response)
}

// RefreshToken - POST /auth/refresh.
// Refresh токен читается из cookie, тело запроса служит запасным каналом.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	refreshToken, err := h.cookies.ReadCookie(c, auth.RefreshTokenCookie)
	if err != nil {
		var req dto.RefreshTokenRequest
		if bindErr := c.ShouldBindJSON(&req); bindErr == nil && req.RefreshToken != "" {
			refreshToken = req.RefreshToken
		}
	}
	if refreshToken == "" {
		apperrors.HandleError(c, apperrors.ErrMissingCredential)
		return
	}

	response, err := h.authService.Refresh(h.GetDB(c), refreshToken)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.cookies.SetAuthCookies(c, response.AccessToken, response.RefreshToken)
	c.JSON(http.StatusOK, response)
}

// Logout - POST /auth/logout.
// Сервер состояния сессии не хранит, достаточно стереть cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.cookies.ClearAuthCookies(c)
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

// Me - GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user := h.GetCurrentUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserDTO(user))
}

// ChangePassword - POST /auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.ChangePassword(h.GetDB(c), h.GetUserID(c), req.CurrentPassword, req.NewPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
