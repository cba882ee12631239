package models

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single violated validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	personNameRe = regexp.MustCompile(`^[A-Za-z\s\-]+$`)
	digitsRe     = regexp.MustCompile(`^\d+$`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()

	// Report json tag names so field errors match the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// personname: letters, spaces and hyphens only.
	_ = v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return personNameRe.MatchString(fl.Field().String())
	})

	// exactdigits=N: exactly N ASCII digits, nothing else.
	_ = v.RegisterValidation("exactdigits", func(fl validator.FieldLevel) bool {
		want, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		s := fl.Field().String()
		return len(s) == want && digitsRe.MatchString(s)
	})

	return v
}

// Validate checks the (already normalized) payload against every field rule
// and returns the complete list of violations, not just the first, so a
// caller can report all problems at once. A nil return means the payload is
// valid.
func (p *StudentPayload) Validate() []FieldError {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return out
}

// messageFor maps a failed rule to the user-facing message for its field.
func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "name":
		if fe.Tag() == "required" {
			return "Name is required"
		}
		return "Name must contain letters only"
	case "surname":
		if fe.Tag() == "required" {
			return "Surname is required"
		}
		return "Surname must contain letters only"
	case "email":
		return "Valid email required"
	case "phone":
		return "Phone must be 10 digits"
	case "id_number":
		return "ID number must be 13 digits"
	case "course":
		return "Course is required"
	case "address":
		return "Address too long"
	default:
		return "Invalid value"
	}
}
