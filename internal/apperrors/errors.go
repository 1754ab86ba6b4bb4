package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// AppError - основная структура ошибки приложения
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is сравнивает ошибки по коду, чтобы копии с деталями
// оставались "той же" ошибкой для errors.Is
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Конструктор
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// С цепочкой ошибок
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	return &AppError{
		Code:     e.Code,
		Message:  e.Message,
		Details:  details,
		Err:      e.Err,
		HTTPCode: e.HTTPCode,
	}
}

// Для маршалинга в JSON
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is - обертка над стандартной функцией errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над стандартной функцией errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Предопределенные ошибки
var (
	// Аутентификация.
	// ErrInvalidCredentials намеренно не различает "нет такого пользователя"
	// и "неверный пароль" - защита от перебора email.
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Incorrect email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
	ErrMissingCredential  = New(CodeMissingCredential, "Authentication required", http.StatusUnauthorized)
	ErrInactiveAccount    = New(CodeInactiveAccount, "Account is inactive", http.StatusForbidden)

	// Пользователи
	ErrUserNotFound       = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "Email already registered", http.StatusConflict)
	ErrPhoneAlreadyExists = New(CodePhoneAlreadyExists, "Phone already registered", http.StatusConflict)
	ErrWeakPassword       = New(CodeWeakPassword, "Password must be at least 8 characters", http.StatusBadRequest)
	ErrInvalidUserRole    = New(CodeInvalidUserRole, "Invalid user role", http.StatusBadRequest)
	ErrCannotModifySelf   = New(CodeCannotModifySelf, "Cannot modify your own account", http.StatusBadRequest)

	// Пациенты и врачи
	ErrPatientNotFound   = New(CodePatientNotFound, "Patient profile not found", http.StatusNotFound)
	ErrDoctorNotFound    = New(CodeDoctorNotFound, "Doctor not found", http.StatusNotFound)
	ErrSpecialtyNotFound = New(CodeSpecialtyNotFound, "Specialty not found", http.StatusNotFound)
	ErrSpecialtyExists   = New(CodeSpecialtyExists, "Specialty already exists", http.StatusConflict)
	ErrDoctorNotAvail    = New(CodeDoctorNotAvailable, "Doctor is not available", http.StatusBadRequest)

	// Записи на прием
	ErrAppointmentNotFound   = New(CodeAppointmentNotFound, "Appointment not found", http.StatusNotFound)
	ErrAppointmentNotPending = New(CodeAppointmentNotPending, "Appointment is not in pending state", http.StatusBadRequest)

	// Пакеты обследований
	ErrHealthPackageNotFound = New(CodeHealthPackageNotFound, "Health package not found", http.StatusNotFound)

	// Валидация
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusUnprocessableEntity)
)

// Функции-помощники для создания ошибок с деталями
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

// ConfigurationError - фатальная ошибка конфигурации.
// Процесс с такой ошибкой стартовать не должен.
func ConfigurationError(err error) *AppError {
	return Wrap(err, CodeConfigurationError, "Invalid configuration", http.StatusInternalServerError)
}
