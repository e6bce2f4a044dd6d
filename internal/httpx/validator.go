package httpx

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func ValidateStruct(s any) []ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []ErrorDetail{{Field: "", Message: err.Error()}}
	}

	details := make([]ErrorDetail, 0, len(validationErrors))
	for _, fe := range validationErrors {
		field := fe.Field()
		param := fe.Param()

		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", field, param)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		case "url":
			message = fmt.Sprintf("%s must be a valid URL", field)
		case "gt", "gte":
			message = fmt.Sprintf("%s must be greater than %s", field, param)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		details = append(details, ErrorDetail{Field: field, Message: message})
	}
	return details
}
