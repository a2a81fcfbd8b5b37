package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/hrmslite/internal/app/models/dto"
)

// BindingErrorDetail converts a gin binding error into an API error
// detail, surfacing per-field messages when the failure came from
// struct validation.
func BindingErrorDetail(err error) *dto.ErrorDetail {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			fields = append(fields, fmt.Sprintf("%s failed on %q", fieldErr.Field(), fieldErr.Tag()))
		}

		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Request validation failed")
		return detail.WithDetails(strings.Join(fields, "; "))
	}

	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
	return detail.WithDetails(err.Error())
}

// AbortWithBindingError writes a 400 response for a failed bind
func AbortWithBindingError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(400, dto.NewErrorResponse(BindingErrorDetail(err)))
}
