package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// PasswordSpecials lists the special characters a strong password must use.
const PasswordSpecials = "@$!%*?&"

var initOnce sync.Once

// Init configures the global validator used by Gin's binding.
// - Uses form (then JSON) tag names in errors.
// - Registers notblank and strongpwd rules.
func Init() {
	initOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"form", "json"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
		_ = v.RegisterValidation("notblank", validators.NotBlank)
		_ = v.RegisterValidation("strongpwd", func(fl validator.FieldLevel) bool {
			return StrongPassword(fl.Field().String())
		})
	})
}

var plain = validator.New()

// IsEmail reports whether s passes the same "email" rule the forms bind with.
func IsEmail(s string) bool {
	return plain.Var(s, "email") == nil
}

// StrongPassword reports whether s has a lowercase letter, an uppercase
// letter, a digit and one of PasswordSpecials, and nothing outside
// [A-Za-z0-9] plus PasswordSpecials.
func StrongPassword(s string) bool {
	var lower, upper, digit, special bool
	for _, r := range s {
		switch {
		case r > unicode.MaxASCII:
			return false
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(PasswordSpecials, r):
			special = true
		default:
			return false
		}
	}
	return lower && upper && digit && special
}

// FieldError is a single (field, message) validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors collects validation failures in the order they were found.
type Errors []FieldError

// Add appends a failure for field.
func (e *Errors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// Has reports whether field has at least one failure.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Get returns the first message recorded for field.
func (e Errors) Get(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

// Messages lets a form override the default message of a rule. Keys are
// "<field>.<tag>"; "{value}" and "{limit}" are substituted.
type Messages interface {
	FieldMessages() map[string]string
}

// FromBinding converts binding/validation errors into field errors. Forms
// implementing Messages get their own wording.
func FromBinding(err error, form any) Errors {
	if err == nil {
		return nil
	}
	var overrides map[string]string
	if m, ok := form.(Messages); ok {
		overrides = m.FieldMessages()
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(Errors, 0, len(verrs))
		for _, fe := range verrs {
			field := fe.Field()
			msg, ok := overrides[field+"."+fe.Tag()]
			if !ok {
				msg = formatFieldError(fe)
			}
			out.Add(field, expand(msg, fe))
		}
		return out
	}

	var numErr *strconv.NumError
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	switch {
	case errors.As(err, &numErr):
		return Errors{{Field: "form", Message: "The submitted data is invalid."}}
	case errors.As(err, &se), errors.As(err, &ute):
		return Errors{{Field: "payload", Message: "invalid json"}}
	}
	return Errors{{Field: "form", Message: "The submitted data is invalid."}}
}

func expand(msg string, fe validator.FieldError) string {
	msg = strings.ReplaceAll(msg, "{limit}", fe.Param())
	return strings.ReplaceAll(msg, "{value}", fmt.Sprintf("%v", fe.Value()))
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required", "notblank":
		return "This value should not be blank."
	case "email":
		return "This value is not a valid email address."
	case "url":
		return "This value is not a valid URL."
	case "min":
		if isNumberKind(fe.Kind()) {
			return "This value should be " + param + " or more."
		}
		return "This value is too short. It should have " + param + " characters or more."
	case "max":
		if isNumberKind(fe.Kind()) {
			return "This value should be " + param + " or less."
		}
		return "This value is too long. It should have " + param + " characters or less."
	case "len":
		return fmt.Sprintf("This value should have exactly %s characters.", param)
	case "eqfield":
		return "This value should be equal to " + param + "."
	case "strongpwd":
		return "Password must contain at least one uppercase letter, one lowercase letter, one number and one special character"
	case "oneof":
		return "The value you selected is not a valid choice."
	default:
		if param != "" {
			return fmt.Sprintf("validation failed for '%s' with parameter '%s'", tag, param)
		}
		return fmt.Sprintf("validation failed for '%s'", tag)
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
