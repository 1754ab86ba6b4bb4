package handlers

import (
	"net/http"

	"medcare_backend/internal/apperrors"
	"medcare_backend/internal/services"
	"medcare_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	BaseHandler
	appointmentService services.AppointmentService
}

func NewAppointmentHandler(base BaseHandler, appointmentService services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		BaseHandler:        base,
		appointmentService: appointmentService,
	}
}

// Create - POST /appointments (пациент записывает себя)
func (h *AppointmentHandler) Create(c *gin.Context) {
	user := h.GetCurrentUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.CreateAppointmentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	appointment, err := h.appointmentService.Create(h.GetDB(c), user, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// List - GET /appointments?doctor_id=
func (h *AppointmentHandler) List(c *gin.Context) {
	user := h.GetCurrentUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	appointments, err := h.appointmentService.ListForUser(h.GetDB(c), user, c.Query("doctor_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// Get - GET /appointments/:id
func (h *AppointmentHandler) Get(c *gin.Context) {
	user := h.GetCurrentUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	appointment, err := h.appointmentService.GetByID(h.GetDB(c), user, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// Cancel - POST /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	user := h.GetCurrentUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.CancelAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		apperrors.HandleError(c, apperrors.ValidationError(err.Error()))
		return
	}

	if err := h.appointmentService.Cancel(h.GetDB(c), user, c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}

// UpdateStatus - PATCH /appointments/:id/status (врач/персонал)
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	user := h.GetCurrentUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	appointment, err := h.appointmentService.UpdateStatus(h.GetDB(c), user, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointment)
}
