package email

// Email - простое письмо
type Email struct {
	To      []string
	Subject string
	Body    string
	IsHTML  bool
}

// Provider определяет интерфейс для отправки email.
// Все отправки в приложении best-effort: сбой почты не валит операцию.
type Provider interface {
	// Send отправляет письмо
	Send(email *Email) error

	// SendWelcome отправляет приветственное письмо после регистрации
	SendWelcome(to string, fullName string) error

	// SendAppointmentConfirmation отправляет подтверждение записи на прием
	SendAppointmentConfirmation(to string, fullName, doctorName, date, timeOfDay string) error

	// Validate проверяет конфигурацию провайдера
	Validate() error
}
