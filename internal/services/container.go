package services

import (
	"medcare_backend/internal/auth"
	"medcare_backend/internal/email"
	"medcare_backend/internal/repositories"
)

// ServiceContainer собирает все сервисы приложения в одном месте
type ServiceContainer struct {
	Auth          AuthService
	User          UserService
	Patient       PatientService
	Doctor        DoctorService
	Appointment   AppointmentService
	Specialty     SpecialtyService
	HealthPackage HealthPackageService
}

func NewServiceContainer(tokens *auth.TokenManager, emailProvider email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	patientRepo := repositories.NewPatientRepository()
	doctorRepo := repositories.NewDoctorRepository()
	specialtyRepo := repositories.NewSpecialtyRepository()
	appointmentRepo := repositories.NewAppointmentRepository()
	packageRepo := repositories.NewHealthPackageRepository()

	return &ServiceContainer{
		Auth:          NewAuthService(userRepo, tokens, emailProvider),
		User:          NewUserService(userRepo),
		Patient:       NewPatientService(patientRepo),
		Doctor:        NewDoctorService(doctorRepo, userRepo, specialtyRepo),
		Appointment:   NewAppointmentService(appointmentRepo, patientRepo, doctorRepo, emailProvider),
		Specialty:     NewSpecialtyService(specialtyRepo),
		HealthPackage: NewHealthPackageService(packageRepo),
	}
}
