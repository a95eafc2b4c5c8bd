package validators

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// required alone lets whitespace-only strings through
	if err := validate.RegisterValidation("notblank", nonstandard.NotBlank); err != nil {
		panic(err)
	}
}

// ValidationError describes one rejected field.
type ValidationError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Value string `json:"value"`
}

// Message renders the error for end users.
func (e ValidationError) Message() string {
	switch e.Tag {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", e.Field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", e.Field, e.Value)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", e.Field, e.Value)
	default:
		return fmt.Sprintf("%s is invalid", e.Field)
	}
}

// Validate checks data against its validate tags.
func Validate(data any) []ValidationError {
	var validationErrors []ValidationError

	err := validate.Struct(data)
	if err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, e := range errs {
				validationErrors = append(validationErrors, ValidationError{
					Field: e.Field(),
					Tag:   e.Tag(),
					Value: e.Param(),
				})
			}
		}
	}

	return validationErrors
}

// Describe joins the messages of errs into one sentence.
func Describe(errs []ValidationError) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message())
	}
	return strings.Join(msgs, "; ")
}
