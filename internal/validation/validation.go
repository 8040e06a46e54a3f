// Package validation checks request payloads and reports failures as a
// field-name-to-message-list mapping, the shape the client uses to annotate
// form fields.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report errors under the wire field name, not the Go struct field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Fields validates the struct v against its validate tags and returns a map
// from field name to the list of human-readable messages for that field.
// It returns nil when v is valid.
func Fields(v any) map[string][]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fieldErrs := make(map[string][]string)
	for _, fe := range err.(validator.ValidationErrors) {
		fieldErrs[fe.Field()] = append(fieldErrs[fe.Field()], message(fe))
	}

	return fieldErrs
}

// message converts a single field error into a sentence suitable for display
// next to the offending form field.
func message(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required":
		return "This field is required"
	case "max":
		return fmt.Sprintf("Must be no more than %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "number", "numeric":
		return "Must be a number"
	default:
		return "Invalid value"
	}
}
