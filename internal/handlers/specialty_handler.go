package handlers

import (
	"net/http"

	"medcare_backend/internal/services"
	"medcare_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SpecialtyHandler struct {
	BaseHandler
	specialtyService services.SpecialtyService
}

func NewSpecialtyHandler(base BaseHandler, specialtyService services.SpecialtyService) *SpecialtyHandler {
	return &SpecialtyHandler{
		BaseHandler:      base,
		specialtyService: specialtyService,
	}
}

// List - GET /specialties
func (h *SpecialtyHandler) List(c *gin.Context) {
	specialties, err := h.specialtyService.ListActive(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"specialties": specialties})
}

// Get - GET /specialties/:id
func (h *SpecialtyHandler) Get(c *gin.Context) {
	specialty, err := h.specialtyService.GetByID(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, specialty)
}

// Create - POST /specialties (админ)
func (h *SpecialtyHandler) Create(c *gin.Context) {
	var req dto.CreateSpecialtyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	specialty, err := h.specialtyService.Create(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, specialty)
}

// Update - PUT /specialties/:id (админ)
func (h *SpecialtyHandler) Update(c *gin.Context) {
	var req dto.UpdateSpecialtyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	specialty, err := h.specialtyService.Update(h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, specialty)
}
