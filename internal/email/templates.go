package email

import "fmt"

// Шаблоны писем. Держим их в коде: писем мало, а отдельный
// файловый рендерер для двух шаблонов не окупается.

func welcomeEmail(to, fullName string) *Email {
	body := fmt.Sprintf(`<h2>Добро пожаловать, %s!</h2>
<p>Ваш аккаунт в MedCare создан. Теперь вы можете записываться на прием
к врачам и просматривать пакеты обследований.</p>
<p>Если вы не регистрировались, просто проигнорируйте это письмо.</p>`, fullName)

	return &Email{
		To:      []string{to},
		Subject: "Добро пожаловать в MedCare",
		Body:    body,
		IsHTML:  true,
	}
}

func appointmentConfirmationEmail(to, fullName, doctorName, date, timeOfDay string) *Email {
	body := fmt.Sprintf(`<h2>Запись подтверждена</h2>
<p>%s, ваша запись на прием создана.</p>
<ul>
<li>Врач: %s</li>
<li>Дата: %s</li>
<li>Время: %s</li>
</ul>
<p>Пожалуйста, приходите за 10 минут до начала приема.</p>`, fullName, doctorName, date, timeOfDay)

	return &Email{
		To:      []string{to},
		Subject: "Запись на прием - MedCare",
		Body:    body,
		IsHTML:  true,
	}
}
