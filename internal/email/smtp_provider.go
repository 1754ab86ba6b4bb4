package email

import (
	"errors"

	"gopkg.in/gomail.v2"
)

// SMTPProvider реализует Provider поверх gomail
type SMTPProvider struct {
	config *SMTPConfig
	dialer *gomail.Dialer
}

// NewSMTPProvider создает новый SMTP провайдер
func NewSMTPProvider(config *SMTPConfig) *SMTPProvider {
	return &SMTPProvider{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

// Send отправляет письмо через SMTP
func (p *SMTPProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.IsHTML {
		m.SetBody("text/html", email.Body)
	} else {
		m.SetBody("text/plain", email.Body)
	}

	return p.dialer.DialAndSend(m)
}

func (p *SMTPProvider) SendWelcome(to string, fullName string) error {
	return p.Send(welcomeEmail(to, fullName))
}

func (p *SMTPProvider) SendAppointmentConfirmation(to string, fullName, doctorName, date, timeOfDay string) error {
	return p.Send(appointmentConfirmationEmail(to, fullName, doctorName, date, timeOfDay))
}

// Validate проверяет конфигурацию провайдера
func (p *SMTPProvider) Validate() error {
	if !p.config.Configured() {
		return errors.New("smtp provider is not configured")
	}
	return nil
}
