package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ValidationError carries a field -> message map suitable for the 422 body.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	var msgs []string
	for field, msg := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("field '%s': %s", field, msg))
	}
	return "Validation failed: " + strings.Join(msgs, "; ")
}

// Validator wraps go-playground/validator with json tag names and the
// project's custom rules.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// DTOs carry their rules in the binding tag so gin and this wrapper
	// validate the same thing.
	v.SetTagName("binding")

	// Report field names as their json tags, not the Go identifiers.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomRules(v)

	// gin runs its own engine over the binding tags during ShouldBind; it
	// has to know the custom rules too.
	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerCustomRules(engine)
	}

	return &Validator{validate: v}
}

func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fieldErrors := make(map[string]string)
	for _, fe := range validationErrors {
		fieldErrors[fe.Field()] = messageFor(fe)
	}
	return &ValidationError{Errors: fieldErrors}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "uuid":
		return "Must be a valid UUID"
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("Must be at least %s items/characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "datetime":
		return "Must be a date in " + fe.Param() + " format"
	case "gtefield":
		return "Must not be less than " + fe.Param()
	case "url":
		return "Must be a valid URL"
	case "is-user-role":
		return "Must be a valid user role"
	case "is-profile-status":
		return "Must be a valid profile status"
	case "is-media-role":
		return "Must be a valid media role"
	case "is-gender":
		return "Must be a valid gender"
	default:
		return fmt.Sprintf("Invalid value (failed on '%s' tag)", fe.Tag())
	}
}
