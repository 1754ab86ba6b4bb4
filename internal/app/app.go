package app

import (
	"fmt"
	"time"

	"medcare_backend/internal/apperrors"
	"medcare_backend/internal/auth"
	"medcare_backend/internal/config"
	"medcare_backend/internal/email"
	"medcare_backend/internal/handlers"
	"medcare_backend/internal/logger"
	"medcare_backend/internal/middleware"
	"medcare_backend/internal/models"
	"medcare_backend/internal/repositories"
	"medcare_backend/internal/routes"
	"medcare_backend/internal/services"
	"medcare_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Run собирает и запускает приложение
func Run() {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	// Слабый секрет подписи ломает всю модель безопасности,
	// поэтому проверяем его до любых подключений
	if err := auth.ValidateSigningSecret(cfg.JWT.Secret); err != nil {
		logger.Fatal("JWT signing secret rejected", "error", apperrors.ConfigurationError(err))
	}

	db, err := openDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connection established")

	if err := autoMigrate(db); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(db, cfg); err != nil {
		logger.Fatal("Failed to seed first admin", "error", err)
	}

	router := SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server", "addr", addr, "env", cfg.Server.Env)
	if err := router.Run(addr); err != nil {
		logger.Fatal("Server stopped", "error", err)
	}
}

// SetupRouter настраивает gin со всей цепочкой middleware и маршрутами
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	tokens := auth.NewTokenManager(auth.TokenConfig{
		Secret:     cfg.JWT.Secret,
		AccessTTL:  time.Duration(cfg.JWT.AccessTTLMinutes) * time.Minute,
		RefreshTTL: time.Duration(cfg.JWT.RefreshTTLDays) * 24 * time.Hour,
	})
	cookies := auth.NewCookieManager(auth.CookieConfig{
		Env:        cfg.Server.Env,
		AccessTTL:  tokens.AccessTTL(),
		RefreshTTL: tokens.RefreshTTL(),
	})

	emailProvider := newEmailProvider(cfg)
	svc := services.NewServiceContainer(tokens, emailProvider)
	v := validator.New()
	h := handlers.NewAppHandlers(svc, cookies, v)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Server.CORSOrigin))
	router.Use(middleware.DBMiddleware(db))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(router, h, tokens, cookies, repositories.NewUserRepository())

	return router
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	// uuid_generate_v4 для первичных ключей
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.Specialty{},
		&models.Doctor{},
		&models.Appointment{},
		&models.HealthPackage{},
	)
}

func newEmailProvider(cfg *config.Config) email.Provider {
	smtpCfg := &email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	}
	if !smtpCfg.Configured() {
		logger.Warn("SMTP is not configured, emails will be dropped")
		return email.NewNoopProvider()
	}

	provider := email.NewSMTPProvider(smtpCfg)
	if err := provider.Validate(); err != nil {
		logger.Warn("SMTP configuration rejected, emails will be dropped", "error", err)
		return email.NewNoopProvider()
	}
	return provider
}

// seedFirstAdmin создает учетную запись администратора при первом запуске.
// Если администратор уже есть или учетные данные не заданы, ничего не делает.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("role IN ?", []models.UserRole{models.UserRoleAdmin, models.UserRoleSuperAdmin}).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		if err := auth.ValidatePassword(cfg.FirstAdminPassword); err != nil {
			return err
		}
		hashed, err := auth.HashPassword(cfg.FirstAdminPassword)
		if err != nil {
			return err
		}

		admin := &models.User{
			Email:           cfg.FirstAdminEmail,
			PasswordHash:    hashed,
			FullName:        "System Administrator",
			Role:            models.UserRoleSuperAdmin,
			IsActive:        true,
			IsEmailVerified: true,
		}
		if err := tx.Create(admin).Error; err != nil {
			return err
		}

		logger.Info("First admin account created", "email", admin.Email)
		return nil
	})
}
