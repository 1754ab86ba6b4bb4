package handlers

import (
	"net/http"

	"medcare_backend/internal/services"
	"medcare_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	BaseHandler
	doctorService services.DoctorService
}

func NewDoctorHandler(base BaseHandler, doctorService services.DoctorService) *DoctorHandler {
	return &DoctorHandler{
		BaseHandler:   base,
		doctorService: doctorService,
	}
}

// List - GET /doctors
func (h *DoctorHandler) List(c *gin.Context) {
	var query dto.DoctorListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	doctors, err := h.doctorService.List(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

// Search - GET /doctors/search?q=&specialty_id=
func (h *DoctorHandler) Search(c *gin.Context) {
	doctors, err := h.doctorService.Search(h.GetDB(c), c.Query("q"), c.Query("specialty_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

// Me - GET /doctors/me (собственная карточка врача)
func (h *DoctorHandler) Me(c *gin.Context) {
	doctor, err := h.doctorService.GetByUserID(h.GetDB(c), h.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, doctor)
}

// Get - GET /doctors/:id
func (h *DoctorHandler) Get(c *gin.Context) {
	doctor, err := h.doctorService.GetByID(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, doctor)
}

// Create - POST /doctors (админ)
func (h *DoctorHandler) Create(c *gin.Context) {
	var req dto.CreateDoctorRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	doctor, err := h.doctorService.Create(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, doctor)
}
