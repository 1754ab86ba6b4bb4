package email

import "medcare_backend/internal/logger"

// NoopProvider используется, когда SMTP не настроен:
// письма логируются и выбрасываются
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) Send(email *Email) error {
	logger.Debug("email sending skipped, SMTP is not configured", "to", email.To, "subject", email.Subject)
	return nil
}

func (p *NoopProvider) SendWelcome(to string, fullName string) error {
	return p.Send(welcomeEmail(to, fullName))
}

func (p *NoopProvider) SendAppointmentConfirmation(to string, fullName, doctorName, date, timeOfDay string) error {
	return p.Send(appointmentConfirmationEmail(to, fullName, doctorName, date, timeOfDay))
}

func (p *NoopProvider) Validate() error {
	return nil
}
