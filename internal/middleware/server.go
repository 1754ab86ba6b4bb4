package middleware

import (
	"context"
	"time"

	"medcare_backend/internal/logger"
	"medcare_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestIDMiddleware присваивает каждому запросу id и пробрасывает его в логи
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Header("X-Request-ID", requestID)
		c.Request = c.Request.WithContext(
			logger.WithRequestID(c.Request.Context(), requestID),
		)

		c.Next()
	}
}

// LoggingMiddleware пишет структурированную запись по каждому запросу
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		switch {
		case status >= 500:
			logger.CtxError(c.Request.Context(), "request completed", args...)
		case status >= 400:
			logger.CtxWarn(c.Request.Context(), "request completed", args...)
		default:
			logger.CtxInfo(c.Request.Context(), "request completed", args...)
		}
	}
}

// CORSMiddleware разрешает запросы фронтенда с credentials
func CORSMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowedOrigin == "*" || origin == allowedOrigin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// DBMiddleware кладет пул соединений в контекст запроса
func DBMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithValue(c.Request.Context(), contextkeys.DBContextKey, db)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
