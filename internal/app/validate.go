package app

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a form field (its json name) to the first failing rule's
// message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return strings.Join(parts, "; ")
}

// add records key only once, so the first failure for a field is the one
// reported.
func (fe FieldErrors) add(key, msg string) {
	if _, ok := fe[key]; !ok {
		fe[key] = msg
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// check validates a struct and folds validator errors into FieldErrors.
func check(v any) FieldErrors {
	errs := FieldErrors{}
	err := validate.Struct(v)
	if err == nil {
		return errs
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs.add("_", err.Error())
		return errs
	}
	for _, fe := range verrs {
		errs.add(fe.Field(), ruleMessage(fe.Tag(), fe.Param()))
	}
	return errs
}

func ruleMessage(tag, param string) string {
	switch tag {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", param)
	case "email":
		return "must be a valid email address"
	case "gt":
		return "must be selected"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(param, " ", ", ")
	default:
		return "is invalid (" + tag + ")"
	}
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// ValidateLogin applies the login form schema before any network call.
func ValidateLogin(email, password string) FieldErrors {
	return check(loginInput{Email: email, Password: password})
}
