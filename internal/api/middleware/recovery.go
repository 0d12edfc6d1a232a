package middleware

import (
	"io"

	"trading-vision-api/internal/api/constant"
	"trading-vision-api/internal/api/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
			zap.Stack("stack"))
		c.AbortWithStatusJSON(constant.ErrInternal.StatusCode, dto.Res{
			Success: false,
			Error:   constant.ErrInternal.Message,
		})
	})
}
