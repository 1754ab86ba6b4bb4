package main

import "medcare_backend/internal/app"

// @title MedCare API
// @version 1.0
// @description Backend клиники: аутентификация, врачи, записи на прием

// @host localhost:4000
// @BasePath /api/v1
func main() {
	app.Run()
}
