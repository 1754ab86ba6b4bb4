package handlers

import (
	"errors"

	"medcare_backend/internal/apperrors"
	"medcare_backend/internal/middleware"
	"medcare_backend/internal/models"
	"medcare_backend/internal/validator"
	"medcare_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BaseHandler - общая механика для всех обработчиков:
// привязка и валидация запросов, доступ к базе, маппинг ошибок сервисов
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) BaseHandler {
	return BaseHandler{validator: v}
}

// BindAndValidateJSON привязывает тело запроса; gin валидирует binding-теги
// при привязке. При ошибке сам пишет ответ и возвращает false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.handleBindError(c, err)
		return false
	}
	return true
}

// BindAndValidateQuery привязывает query-параметры запроса
func (h *BaseHandler) BindAndValidateQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		h.handleBindError(c, err)
		return false
	}
	return true
}

func (h *BaseHandler) handleBindError(c *gin.Context, err error) {
	translated := h.validator.Translate(err)

	var validationErr *validator.ValidationError
	if errors.As(translated, &validationErr) {
		apperrors.HandleError(c, apperrors.ValidationError(validationErr.Errors))
		return
	}
	// Синтаксически сломанное тело запроса
	apperrors.HandleError(c, apperrors.ValidationError(err.Error()))
}

// HandleServiceError превращает ошибку сервиса в HTTP-ответ
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		apperrors.HandleError(c, appErr)
		return
	}
	apperrors.HandleError(c, apperrors.InternalError(err))
}

// GetDB достает *gorm.DB из контекста запроса.
// Отсутствие базы означает сломанную цепочку middleware, это ошибка программы.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	db, ok := c.Request.Context().Value(contextkeys.DBContextKey).(*gorm.DB)
	if !ok {
		panic("database is not attached to request context")
	}
	return db
}

// GetCurrentUser возвращает пользователя, загруженного middleware
func (h *BaseHandler) GetCurrentUser(c *gin.Context) *models.User {
	return middleware.GetCurrentUser(c)
}

// GetUserID возвращает id пользователя из access токена
func (h *BaseHandler) GetUserID(c *gin.Context) string {
	return middleware.GetUserID(c)
}
