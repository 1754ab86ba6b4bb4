package apperrors

import (
	"medcare_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError - обработка ошибок для Gin контекста.
// Ошибки 5xx логируются с полной цепочкой, клиенту уходит только код и сообщение.
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", err,
			"code", string(err.Code),
			"path", c.Request.URL.Path,
		)
	}

	c.JSON(err.HTTPCode, ErrorResponse{Error: err})
}
