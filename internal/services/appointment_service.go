package services

import (
	"time"

	"medcare_backend/internal/apperrors"
	"medcare_backend/internal/email"
	"medcare_backend/internal/logger"
	"medcare_backend/internal/models"
	"medcare_backend/internal/repositories"
	"medcare_backend/internal/services/dto"

	"gorm.io/gorm"
)

type AppointmentService interface {
	Create(db *gorm.DB, user *models.User, req *dto.CreateAppointmentRequest) (*dto.AppointmentDTO, error)
	ListForUser(db *gorm.DB, user *models.User, doctorID string) ([]dto.AppointmentDTO, error)
	GetByID(db *gorm.DB, user *models.User, id string) (*dto.AppointmentDTO, error)
	Cancel(db *gorm.DB, user *models.User, id string, req *dto.CancelAppointmentRequest) error
	UpdateStatus(db *gorm.DB, user *models.User, id string, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentDTO, error)
}

type AppointmentServiceImpl struct {
	appointmentRepo repositories.AppointmentRepository
	patientRepo     repositories.PatientRepository
	doctorRepo      repositories.DoctorRepository
	emailProvider   email.Provider
}

func NewAppointmentService(
	appointmentRepo repositories.AppointmentRepository,
	patientRepo repositories.PatientRepository,
	doctorRepo repositories.DoctorRepository,
	emailProvider email.Provider,
) AppointmentService {
	return &AppointmentServiceImpl{
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		emailProvider:   emailProvider,
	}
}

// Create - запись пациента на прием.
// Пациент берется из сессии: записать можно только себя.
func (s *AppointmentServiceImpl) Create(db *gorm.DB, user *models.User, req *dto.CreateAppointmentRequest) (*dto.AppointmentDTO, error) {
	patient, err := s.patientRepo.FindByUserID(db, user.ID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPatientNotFound) {
			return nil, apperrors.ErrPatientNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	doctor, err := s.doctorRepo.FindByID(db, req.DoctorID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDoctorNotFound) {
			return nil, apperrors.ErrDoctorNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !doctor.IsAvailable {
		return nil, apperrors.ErrDoctorNotAvail
	}

	appointmentDate, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, apperrors.ValidationError("appointment_date must be in YYYY-MM-DD format")
	}

	appointment := &models.Appointment{
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		AppointmentDate: appointmentDate,
		AppointmentTime: req.AppointmentTime,
		Duration:        doctor.ConsultationDuration,
		Type:            models.AppointmentTypeConsultation,
		Mode:            models.ConsultationModeOnsite,
		Status:          models.AppointmentStatusPending,
		ReasonForVisit:  req.Reason,
		Notes:           req.PatientNotes,
		PaymentStatus:   models.PaymentStatusPending,
	}
	if req.Type != "" {
		appointment.Type = models.AppointmentType(req.Type)
	}
	if req.Mode != "" {
		appointment.Mode = models.ConsultationMode(req.Mode)
	}
	switch appointment.Mode {
	case models.ConsultationModeOnline:
		appointment.ConsultationFee = doctor.ConsultationFeeOnline
	default:
		appointment.ConsultationFee = doctor.ConsultationFeeOnsite
	}

	if err := s.appointmentRepo.Create(db, appointment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Письмо-подтверждение best-effort: запись уже создана
	doctorName := ""
	if doctor.User != nil {
		doctorName = doctor.User.FullName
	}
	if err := s.emailProvider.SendAppointmentConfirmation(
		user.Email, user.FullName, doctorName,
		appointment.AppointmentDate.Format("2006-01-02"), appointment.AppointmentTime,
	); err != nil {
		logger.Warn("failed to send appointment confirmation email",
			"error", err, "appointment_id", appointment.ID)
	}

	appointment.Patient = patient
	appointment.Doctor = doctor
	appointmentDTO := dto.NewAppointmentDTO(appointment)
	return &appointmentDTO, nil
}

// ListForUser - список записей в зависимости от роли:
// пациент видит свои, врачи и персонал видят все.
// Не-пациенты могут сузить выборку до одного врача через doctorID.
func (s *AppointmentServiceImpl) ListForUser(db *gorm.DB, user *models.User, doctorID string) ([]dto.AppointmentDTO, error) {
	var (
		appointments []models.Appointment
		err          error
	)

	switch {
	case user.Role == models.UserRolePatient:
		patient, perr := s.patientRepo.FindByUserID(db, user.ID)
		if perr != nil {
			if apperrors.Is(perr, repositories.ErrPatientNotFound) {
				return nil, apperrors.ErrPatientNotFound
			}
			return nil, apperrors.InternalError(perr)
		}
		appointments, err = s.appointmentRepo.FindByPatient(db, patient.ID)
	case doctorID != "":
		appointments, err = s.appointmentRepo.FindByDoctor(db, doctorID)
	default:
		appointments, err = s.appointmentRepo.FindAll(db)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.AppointmentDTO, 0, len(appointments))
	for i := range appointments {
		result = append(result, dto.NewAppointmentDTO(&appointments[i]))
	}
	return result, nil
}

func (s *AppointmentServiceImpl) GetByID(db *gorm.DB, user *models.User, id string) (*dto.AppointmentDTO, error) {
	appointment, err := s.findVisible(db, user, id)
	if err != nil {
		return nil, err
	}

	appointmentDTO := dto.NewAppointmentDTO(appointment)
	return &appointmentDTO, nil
}

// Cancel - отмена записи пациентом-владельцем, врачом или персоналом.
// Завершенные и уже отмененные записи отменить нельзя.
func (s *AppointmentServiceImpl) Cancel(db *gorm.DB, user *models.User, id string, req *dto.CancelAppointmentRequest) error {
	appointment, err := s.findVisible(db, user, id)
	if err != nil {
		return err
	}

	if appointment.Status == models.AppointmentStatusCompleted ||
		appointment.Status == models.AppointmentStatusCancelled {
		return apperrors.ErrAppointmentNotPending
	}

	if err := s.appointmentRepo.Cancel(db, id, req.Reason); err != nil {
		if apperrors.Is(err, repositories.ErrAppointmentNotFound) {
			return apperrors.ErrAppointmentNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// UpdateStatus - смена статуса записи врачом или персоналом.
// Врачу и персоналу доступны все записи, пациенту смена статуса запрещена.
func (s *AppointmentServiceImpl) UpdateStatus(db *gorm.DB, user *models.User, id string, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentDTO, error) {
	appointment, err := s.findVisible(db, user, id)
	if err != nil {
		return nil, err
	}
	if user.Role == models.UserRolePatient {
		return nil, apperrors.ErrForbidden
	}

	appointment.Status = models.AppointmentStatus(req.Status)
	if req.Notes != "" {
		appointment.Notes = req.Notes
	}
	if req.Prescription != "" {
		appointment.Prescription = req.Prescription
	}
	switch appointment.Status {
	case models.AppointmentStatusCompleted:
		now := time.Now()
		appointment.CompletedAt = &now
	case models.AppointmentStatusCancelled:
		now := time.Now()
		appointment.CancelledAt = &now
	}

	if err := s.appointmentRepo.Update(db, appointment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	appointmentDTO := dto.NewAppointmentDTO(appointment)
	return &appointmentDTO, nil
}

// findVisible загружает запись и проверяет, что пользователь имеет к ней доступ
func (s *AppointmentServiceImpl) findVisible(db *gorm.DB, user *models.User, id string) (*models.Appointment, error) {
	appointment, err := s.appointmentRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAppointmentNotFound) {
			return nil, apperrors.ErrAppointmentNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if user.Role != models.UserRolePatient {
		return appointment, nil
	}
	if appointment.Patient != nil && appointment.Patient.UserID == user.ID {
		return appointment, nil
	}
	return nil, apperrors.ErrForbidden
}
