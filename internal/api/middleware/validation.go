package middleware

import (
	stderrors "errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"speechbench/internal/api/errors"
)

// Validator interface for domain validation
type Validator interface {
	Validate() error
}

// ValidateRequest binds a JSON body and checks both struct tags and domain rules
func ValidateRequest(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return bindingError(err, "request", "invalid JSON format")
	}
	return validateDomain(req)
}

// ValidateQuery binds query parameters and checks both struct tags and domain rules
func ValidateQuery(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindQuery(req); err != nil {
		return bindingError(err, "query", "invalid query parameters")
	}
	return validateDomain(req)
}

func validateDomain(req interface{}) error {
	if v, ok := req.(Validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func bindingError(err error, fallbackField, fallbackMessage string) error {
	validationErrors := make(map[string]string)

	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		for _, fieldError := range validationErrs {
			validationErrors[strings.ToLower(fieldError.Field())] = describeTag(fieldError)
		}
	} else {
		validationErrors[fallbackField] = fallbackMessage
	}

	return errors.NewValidationError("Validation failed", validationErrors)
}

func describeTag(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return "must be at least " + fieldError.Param()
	case "max", "lte":
		return "must be at most " + fieldError.Param()
	case "oneof":
		return "must be one of: " + fieldError.Param()
	default:
		return "is invalid"
	}
}
