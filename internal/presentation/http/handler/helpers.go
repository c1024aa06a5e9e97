package handler

import (
	"context"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/infrastructure/paymentapi"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/presentation/http/dto/response"
	"github.com/rajatvats23/swizzleFENg19-sub001/pkg/apperror"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"form", "uri", "json"} {
			if name := strings.Split(field.Tag.Get(tag), ",")[0]; name != "" && name != "-" {
				return name
			}
		}
		return field.Name
	})
	return v
}

// validateStruct runs the validate tags of v and converts failures into
// field errors. It returns nil when v is valid.
func validateStruct(v interface{}) []apperror.FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []apperror.FieldError{{Field: "", Message: err.Error()}}
	}

	fieldErrs := make([]apperror.FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrs = append(fieldErrs, apperror.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return fieldErrs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "datetime":
		return fe.Field() + " must be a date formatted YYYY-MM-DD"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	default:
		return fe.Field() + " is invalid"
	}
}

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetBearerToken returns the access token the caller authenticated with
func GetBearerToken(c *gin.Context) string {
	return c.GetString("access_token")
}

// backendContext carries the caller's token and request id to the payments API
func backendContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if token := GetBearerToken(c); token != "" {
		ctx = paymentapi.WithBearerToken(ctx, token)
	}
	return paymentapi.WithRequestID(ctx, response.RequestID(c))
}

// errorCode returns the HTTP status an error should be answered with
func errorCode(err error) int {
	return apperror.GetAppError(err).Code
}
