// Package validation evaluates the declarative field constraints on request
// structs. Unlike gin's binding it does not fail fast: every violated rule is
// collected into a single error so the caller sees the full list at once.
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
	// Report violations under the JSON field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Error carries every violated constraint of one request object.
type Error struct {
	Violations []string
}

func (e *Error) Error() string {
	return strings.Join(e.Violations, "; ")
}

// Struct validates req and returns an *Error listing all violations, or nil.
func Struct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	violations := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, describe(fe))
	}
	return &Error{Violations: violations}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: must not be blank", fe.Field())
	case "email":
		return fmt.Sprintf("%s: must be a well-formed email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s: length must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s: length must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s: invalid value", fe.Field())
	}
}
