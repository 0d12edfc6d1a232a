package middleware

import (
	"context"
	"errors"
	"net/http"

	"trading-vision-api/internal/api/constant"
	"trading-vision-api/internal/api/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Error turns the first error recorded on the context into a JSON
// response. Errors it does not recognise become a generic 500; their cause
// is only logged.
func Error(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		ctxErr := c.Request.Context().Err()
		if ctxErr != nil {
			// Check if the context error is specifically a deadline exceeded.
			if errors.Is(ctxErr, context.DeadlineExceeded) {
				c.AbortWithStatusJSON(constant.ErrTimeout.StatusCode, dto.Res{
					Success: false,
					Error:   constant.ErrTimeout.Message,
				})
				return
			}
		}

		// Check if there is no error
		if len(c.Errors) == 0 {
			return
		}

		// There is error; what error is it?
		err := c.Errors[0]

		// - Validation error from query binding
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			validationErrors := make([]dto.ErrorType, 0)
			for _, fe := range ve {
				validationErrors = append(validationErrors, dto.ErrorType{
					Field:   fe.Field(),
					Message: fe.Error(),
				})
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.Res{
				Success: false,
				Error:   validationErrors,
			})
			return
		}

		// - Custom error from `constant` package
		var ce constant.CustomError
		if errors.As(err, &ce) {
			c.AbortWithStatusJSON(ce.StatusCode, dto.Res{
				Success: false,
				Error:   ce.Error(),
			})
			return
		}

		// - Unknown error, likely internal server error
		logger.Error("unhandled error",
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err.Err))
		c.AbortWithStatusJSON(constant.ErrInternal.StatusCode, dto.Res{
			Success: false,
			Error:   constant.ErrInternal.Message,
		})
	}
}
