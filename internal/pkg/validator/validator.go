package validator

import (
	"errors"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// InRange reports whether n lies in the inclusive range [min, max].
func InRange(n, min, max int) bool {
	return n >= min && n <= max
}

var validate = newValidate()

func newValidate() *playground.Validate {
	v := playground.New()
	// Field names come from the form tag so errors line up with input names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct validates the `validate` tags of s and returns ValidationErrors
// keyed by form field name.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, ValidationError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return errs
}

func message(fe playground.FieldError) string {
	label := HumanizeField(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min":
		return label + " must be at least " + fe.Param()
	case "max":
		return label + " must not exceed " + fe.Param()
	case "oneof":
		return label + " must be one of " + fe.Param()
	default:
		return label + " is invalid"
	}
}

// HumanizeField turns a form field name such as "emp_number" into "Emp Number".
func HumanizeField(field string) string {
	field = strings.ReplaceAll(field, "_", " ")
	return cases.Title(language.English).String(field)
}
