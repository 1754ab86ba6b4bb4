package handlers

import (
	"net/http"

	"medcare_backend/internal/models"
	"medcare_backend/internal/services"
	"medcare_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	BaseHandler
	userService services.UserService
}

func NewUserHandler(base BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// UpdateProfile - PUT /users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(h.GetDB(c), h.GetUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// List - GET /users (админ)
func (h *UserHandler) List(c *gin.Context) {
	var query dto.UserListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	response, err := h.userService.List(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Get - GET /users/:id (админ)
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.GetByID(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// SetActive - PATCH /users/:id/active (админ)
func (h *UserHandler) SetActive(c *gin.Context) {
	var req struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	err := h.userService.SetActive(h.GetDB(c), h.GetUserID(c), c.Param("id"), *req.IsActive)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User status updated"})
}

// SetRole - PATCH /users/:id/role (админ)
func (h *UserHandler) SetRole(c *gin.Context) {
	var req dto.UpdateUserRoleRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	err := h.userService.SetRole(h.GetDB(c), h.GetUserID(c), c.Param("id"), models.UserRole(req.Role))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User role updated"})
}
