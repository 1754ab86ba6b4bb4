package apperrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeMissingCredential  ErrorCode = "MISSING_CREDENTIAL"
	CodeInactiveAccount    ErrorCode = "INACTIVE_ACCOUNT"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Ресурсы
	CodeUserNotFound          ErrorCode = "USER_NOT_FOUND"
	CodePatientNotFound       ErrorCode = "PATIENT_NOT_FOUND"
	CodeDoctorNotFound        ErrorCode = "DOCTOR_NOT_FOUND"
	CodeSpecialtyNotFound     ErrorCode = "SPECIALTY_NOT_FOUND"
	CodeAppointmentNotFound   ErrorCode = "APPOINTMENT_NOT_FOUND"
	CodeHealthPackageNotFound ErrorCode = "HEALTH_PACKAGE_NOT_FOUND"

	// Бизнес-логика
	CodeEmailAlreadyExists    ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodePhoneAlreadyExists    ErrorCode = "PHONE_ALREADY_EXISTS"
	CodeSpecialtyExists       ErrorCode = "SPECIALTY_ALREADY_EXISTS"
	CodeCannotModifySelf      ErrorCode = "CANNOT_MODIFY_SELF"
	CodeAppointmentNotPending ErrorCode = "APPOINTMENT_NOT_PENDING"
	CodeDoctorNotAvailable    ErrorCode = "DOCTOR_NOT_AVAILABLE"

	// Системные ошибки
	CodeInternalError      ErrorCode = "INTERNAL_ERROR"
	CodeConfigurationError ErrorCode = "CONFIGURATION_ERROR"
)
