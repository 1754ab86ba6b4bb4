package email

// SMTPConfig - настройки SMTP сервера
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// Configured сообщает, достаточно ли настроек для реальной отправки
func (c *SMTPConfig) Configured() bool {
	return c.Host != "" && c.Port != 0 && c.FromEmail != ""
}
