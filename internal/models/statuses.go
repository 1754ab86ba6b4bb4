package models

type UserRole string
type GenderType string
type AppointmentStatus string
type AppointmentType string
type ConsultationMode string
type PaymentStatus string

const (
	UserRolePatient    UserRole = "patient"
	UserRoleDoctor     UserRole = "doctor"
	UserRoleAdmin      UserRole = "admin"
	UserRoleStaff      UserRole = "staff"
	UserRoleSuperAdmin UserRole = "super_admin"

	GenderMale   GenderType = "male"
	GenderFemale GenderType = "female"
	GenderOther  GenderType = "other"

	AppointmentStatusPending     AppointmentStatus = "pending"
	AppointmentStatusConfirmed   AppointmentStatus = "confirmed"
	AppointmentStatusCompleted   AppointmentStatus = "completed"
	AppointmentStatusCancelled   AppointmentStatus = "cancelled"
	AppointmentStatusRescheduled AppointmentStatus = "rescheduled"

	AppointmentTypeConsultation AppointmentType = "consultation"
	AppointmentTypeFollowUp     AppointmentType = "follow_up"
	AppointmentTypeEmergency    AppointmentType = "emergency"
	AppointmentTypeSurgery      AppointmentType = "surgery"
	AppointmentTypeDiagnostic   AppointmentType = "diagnostic"

	ConsultationModeOnsite    ConsultationMode = "onsite"
	ConsultationModeOnline    ConsultationMode = "online"
	ConsultationModeHomeVisit ConsultationMode = "home_visit"

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)
