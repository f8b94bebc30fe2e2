// Package validation checks form input locally, before anything reaches the
// network. It wraps go-playground/validator with the client's own rules and
// produces a field → message map with user-facing text.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// emailPattern: one or more non-space non-@ characters, "@", the same again,
// ".", one or more non-space characters.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Errors maps a field name to its validation message. An empty map (or
// absent key) means the field is valid.
type Errors map[string]string

// Empty reports whether no field carries a non-empty message.
func (e Errors) Empty() bool {
	for _, msg := range e {
		if msg != "" {
			return false
		}
	}
	return true
}

// Validator validates the client's form structs.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the client's custom rules registered:
//
//	notblank     — trimmed value must be non-empty
//	trimmin=N    — trimmed length must be at least N
//	emailshape   — value must look like an email address
//	otp          — value must be exactly 6 digits
func New() *Validator {
	v := validator.New()

	must := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("registering %q validation: %v", tag, err))
		}
	}

	must("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	must("trimmin", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(strings.TrimSpace(fl.Field().String())) >= n
	})
	must("emailshape", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	must("otp", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) != 6 {
			return false
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})

	return &Validator{validate: v}
}

// Validate runs the struct's tag rules and returns the per-field messages.
// A nil/empty result means the form is clear to submit. Tags are evaluated
// in declaration order and each field reports its first failing rule only.
func (v *Validator) Validate(form any) Errors {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// not a validation outcome: the form value itself is unusable
		panic(fmt.Sprintf("validation: %v", err))
	}

	out := make(Errors, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = message(fe)
	}
	return out
}

// displayNames maps struct field names to the wording used in messages.
var displayNames = map[string]string{
	"Name":        "Name",
	"Email":       "Email",
	"OTP":         "OTP",
	"Password":    "Password",
	"NewPassword": "Password",
	"NewEmail":    "New email",
}

func message(fe validator.FieldError) string {
	display := displayNames[fe.Field()]
	if display == "" {
		display = fe.Field()
	}

	switch fe.Tag() {
	case "notblank":
		return fmt.Sprintf("%s is required", display)
	case "trimmin", "min":
		return fmt.Sprintf("%s must be at least %s characters", display, fe.Param())
	case "emailshape":
		return "Please enter a valid email address"
	case "otp":
		return "OTP must be 6 digits"
	default:
		return fmt.Sprintf("%s is invalid", display)
	}
}

// FilterOTP applies the OTP entry-time filter: non-digit characters are
// silently dropped and the result is truncated to 6 characters.
func FilterOTP(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == 6 {
				break
			}
		}
	}
	return b.String()
}
