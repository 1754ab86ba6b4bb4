package validator

import (
	"log"
	"strings"

	"medcare_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные функции валидации.
// Ошибка регистрации - это ошибка времени запуска, приложение
// с ней стартовать не должно.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-appointment-status", validateAppointmentStatus)
	mustRegister("is-consultation-mode", validateConsultationMode)
	mustRegister("is-gender", validateGender)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые проверяет 'required'
	}

	switch models.UserRole(value) {
	case models.UserRolePatient, models.UserRoleDoctor, models.UserRoleAdmin,
		models.UserRoleStaff, models.UserRoleSuperAdmin:
		return true
	default:
		return false
	}
}

func validateAppointmentStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	switch models.AppointmentStatus(value) {
	case models.AppointmentStatusPending, models.AppointmentStatusConfirmed,
		models.AppointmentStatusCompleted, models.AppointmentStatusCancelled,
		models.AppointmentStatusRescheduled:
		return true
	default:
		return false
	}
}

func validateConsultationMode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	switch models.ConsultationMode(value) {
	case models.ConsultationModeOnsite, models.ConsultationModeOnline, models.ConsultationModeHomeVisit:
		return true
	default:
		return false
	}
}

func validateGender(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	switch models.GenderType(strings.ToLower(value)) {
	case models.GenderMale, models.GenderFemale, models.GenderOther:
		return true
	default:
		return false
	}
}
