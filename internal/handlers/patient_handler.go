package handlers

import (
	"net/http"

	"medcare_backend/internal/services"
	"medcare_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	BaseHandler
	patientService services.PatientService
}

func NewPatientHandler(base BaseHandler, patientService services.PatientService) *PatientHandler {
	return &PatientHandler{
		BaseHandler:    base,
		patientService: patientService,
	}
}

// GetProfile - GET /patients/profile
func (h *PatientHandler) GetProfile(c *gin.Context) {
	patient, err := h.patientService.GetProfile(h.GetDB(c), h.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, patient)
}

// UpdateProfile - PUT /patients/profile
func (h *PatientHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdatePatientProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	patient, err := h.patientService.UpdateProfile(h.GetDB(c), h.GetUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, patient)
}
