package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/emir/gradportal/internal/app/models/dto"
)

// BindAndValidate binds a JSON body into obj and renders a structured
// field-error list on failure. Returns false when the request was rejected.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		RenderBindingError(c, err)
		return false
	}
	return true
}

// RenderBindingError turns validator errors into the {errors:[...]} shape;
// anything else becomes a single generic validation error. Multipart handlers
// bind their forms themselves and call this directly.
func RenderBindingError(c *gin.Context, err error) {
	if fieldErrors, ok := err.(validator.ValidationErrors); ok {
		validationErrors := dto.NewValidationErrors()
		for _, fieldError := range fieldErrors {
			validationErrors.AddError(fieldError.Field(), formatValidationError(fieldError))
		}
		c.JSON(http.StatusBadRequest, validationErrors)
		return
	}

	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "invalid request format")
	errorDetail = errorDetail.WithDetails(err.Error())
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
