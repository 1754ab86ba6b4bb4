package handlers

import (
	"medcare_backend/internal/auth"
	"medcare_backend/internal/services"
	"medcare_backend/internal/validator"
)

// AppHandlers - все обработчики приложения
type AppHandlers struct {
	Auth          *AuthHandler
	User          *UserHandler
	Patient       *PatientHandler
	Doctor        *DoctorHandler
	Appointment   *AppointmentHandler
	Specialty     *SpecialtyHandler
	HealthPackage *HealthPackageHandler
}

func NewAppHandlers(svc *services.ServiceContainer, cookies *auth.CookieManager, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:          NewAuthHandler(base, svc.Auth, cookies),
		User:          NewUserHandler(base, svc.User),
		Patient:       NewPatientHandler(base, svc.Patient),
		Doctor:        NewDoctorHandler(base, svc.Doctor),
		Appointment:   NewAppointmentHandler(base, svc.Appointment),
		Specialty:     NewSpecialtyHandler(base, svc.Specialty),
		HealthPackage: NewHealthPackageHandler(base, svc.HealthPackage),
	}
}
