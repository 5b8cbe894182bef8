package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prperemyshlev/vidverse/internal/apierror"
	"github.com/prperemyshlev/vidverse/internal/dto"
	"go.uber.org/zap"
)

// fail records err for ErrorHandler and stops the chain
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// bindError turns a gin binding failure into a 400 listing the offending fields
func bindError(err error) *apierror.Error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fieldMessage(fe))
		}
		return apierror.BadRequest("All fields are required").WithErrors(details...)
	}
	return apierror.BadRequest("Invalid request body").WithErrors(err.Error())
}

func fieldMessage(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	}
	return fmt.Sprintf("%s is invalid", field)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// ErrorHandler renders the last error recorded on the context as the error envelope
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}

		apiErr := apierror.From(last.Err)
		if apiErr.StatusCode >= http.StatusInternalServerError {
			logger.Error("Request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(last.Err),
			)
		}

		c.JSON(apiErr.StatusCode, dto.NewErrorResponse(apiErr.StatusCode, apiErr.Message, apiErr.Errors))
	}
}

// RecoveryMiddleware converts panics into a 500 envelope
func RecoveryMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("Panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			dto.NewErrorResponse(http.StatusInternalServerError, "Internal server error", nil))
	})
}

// NoRoute renders unknown routes with the error envelope
func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Route not found", nil))
}
