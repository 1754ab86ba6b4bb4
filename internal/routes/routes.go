package routes

import (
	"medcare_backend/internal/auth"
	"medcare_backend/internal/handlers"
	"medcare_backend/internal/middleware"
	"medcare_backend/internal/models"
	"medcare_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes подключает все маршруты API под /api/v1
func RegisterRoutes(
	router *gin.Engine,
	h *handlers.AppHandlers,
	tokens *auth.TokenManager,
	cookies *auth.CookieManager,
	userRepo repositories.UserRepository,
) {
	requireAuth := middleware.AuthMiddleware(tokens, cookies)
	loadUser := middleware.CurrentUserMiddleware(userRepo)
	adminOnly := middleware.RequireRoles(auth.AdminRoles...)
	staffOnly := middleware.RequireRoles(auth.StaffRoles...)

	api := router.Group("/api/v1")

	// Аутентификация
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/refresh", h.Auth.RefreshToken)
		authGroup.POST("/logout", h.Auth.Logout)
		authGroup.GET("/me", requireAuth, loadUser, h.Auth.Me)
		authGroup.POST("/change-password", requireAuth, loadUser, h.Auth.ChangePassword)
	}

	// Публичные справочники
	api.GET("/specialties", h.Specialty.List)
	api.GET("/specialties/:id", h.Specialty.Get)
	api.GET("/doctors", h.Doctor.List)
	api.GET("/doctors/search", h.Doctor.Search)
	api.GET("/doctors/:id", h.Doctor.Get)
	api.GET("/health-packages", h.HealthPackage.List)
	api.GET("/health-packages/:id", h.HealthPackage.Get)

	// Профиль пользователя
	users := api.Group("/users", requireAuth, loadUser)
	{
		users.PUT("/me", h.User.UpdateProfile)
		users.GET("", adminOnly, h.User.List)
		users.GET("/:id", adminOnly, h.User.Get)
		users.PATCH("/:id/active", adminOnly, h.User.SetActive)
		users.PATCH("/:id/role", adminOnly, h.User.SetRole)
	}

	// Профиль пациента
	patients := api.Group("/patients", requireAuth, loadUser, middleware.RequireRoles(models.UserRolePatient))
	{
		patients.GET("/profile", h.Patient.GetProfile)
		patients.PUT("/profile", h.Patient.UpdateProfile)
	}

	// Собственная карточка врача
	api.GET("/doctors/me", requireAuth, loadUser, middleware.RequireRoles(models.UserRoleDoctor), h.Doctor.Me)

	// Записи на прием
	appointments := api.Group("/appointments", requireAuth, loadUser)
	{
		appointments.POST("", middleware.RequireRoles(models.UserRolePatient), h.Appointment.Create)
		appointments.GET("", h.Appointment.List)
		appointments.GET("/:id", h.Appointment.Get)
		appointments.POST("/:id/cancel", h.Appointment.Cancel)
		appointments.PATCH("/:id/status", middleware.RequireRoles(auth.ClinicalRoles...), h.Appointment.UpdateStatus)
	}

	// Администрирование справочников
	admin := api.Group("", requireAuth, loadUser, staffOnly)
	{
		admin.POST("/specialties", h.Specialty.Create)
		admin.PUT("/specialties/:id", h.Specialty.Update)
		admin.POST("/health-packages", h.HealthPackage.Create)
		admin.PUT("/health-packages/:id", h.HealthPackage.Update)
		admin.DELETE("/health-packages/:id", h.HealthPackage.Delete)
	}
	api.POST("/doctors", requireAuth, loadUser, adminOnly, h.Doctor.Create)
}
