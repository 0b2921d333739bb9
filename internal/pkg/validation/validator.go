// Package validation wraps go-playground/validator for request DTOs.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"character-chat-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct validates s and returns an error wrapping apperror.ErrValidation listing every
// failing field, or nil.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return apperror.Validation("%v", err)
	}

	fields := FormatValidationErrors(validationErrs)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fields[k])
	}
	return apperror.Validation("%s", strings.Join(parts, "; "))
}

// FormatValidationErrors converts validation errors to a field -> message map.
func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	result := make(map[string]string, len(errs))
	for _, e := range errs {
		field := e.Field()
		switch e.Tag() {
		case "required", "notblank":
			result[field] = fmt.Sprintf("%s is required", field)
		case "max":
			result[field] = fmt.Sprintf("%s must be at most %s characters", field, e.Param())
		case "url":
			result[field] = fmt.Sprintf("%s must be a valid URL", field)
		case "oneof":
			result[field] = fmt.Sprintf("%s must be one of [%s]", field, e.Param())
		default:
			result[field] = fmt.Sprintf("%s is invalid", field)
		}
	}
	return result
}
