package handlers

import (
	"net/http"

	"medcare_backend/internal/services"
	"medcare_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type HealthPackageHandler struct {
	BaseHandler
	packageService services.HealthPackageService
}

func NewHealthPackageHandler(base BaseHandler, packageService services.HealthPackageService) *HealthPackageHandler {
	return &HealthPackageHandler{
		BaseHandler:    base,
		packageService: packageService,
	}
}

// List - GET /health-packages?category=
func (h *HealthPackageHandler) List(c *gin.Context) {
	packages, err := h.packageService.ListActive(h.GetDB(c), c.Query("category"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"packages": packages})
}

// Get - GET /health-packages/:id
func (h *HealthPackageHandler) Get(c *gin.Context) {
	pkg, err := h.packageService.GetByID(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// Create - POST /health-packages (админ)
func (h *HealthPackageHandler) Create(c *gin.Context) {
	var req dto.CreateHealthPackageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	pkg, err := h.packageService.Create(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg)
}

// Update - PUT /health-packages/:id (админ)
func (h *HealthPackageHandler) Update(c *gin.Context) {
	var req dto.UpdateHealthPackageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	pkg, err := h.packageService.Update(h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// Delete - DELETE /health-packages/:id (админ)
func (h *HealthPackageHandler) Delete(c *gin.Context) {
	if err := h.packageService.Delete(h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Health package deactivated"})
}
