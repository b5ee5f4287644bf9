package app

import "strings"

// Transform pairs the mapping from what the operator edits to what the
// backend stores (Forward) with its inverse for loading an entity back into
// a form.
type Transform[Edit, Wire any] struct {
	Forward func(Edit) Wire
	Inverse func(Wire) Edit
}

const (
	PhoneCountryCode = "+994"
	PasswordMask     = "******"
)

// PhonePrefix keeps stored phones in +994 form and edits them without it.
var PhonePrefix = Transform[string, string]{
	Forward: func(raw string) string {
		v := strings.TrimSpace(raw)
		if v == "" {
			return ""
		}
		if strings.HasPrefix(v, PhoneCountryCode) {
			return v
		}
		return PhoneCountryCode + v
	},
	Inverse: func(phone string) string {
		return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(phone), PhoneCountryCode))
	},
}

// PasswordField never loads a real password: the edit value is the mask,
// and an empty or masked value forwards to nil, which omits the key.
var PasswordField = Transform[string, *string]{
	Forward: func(v string) *string {
		if v == "" || v == PasswordMask {
			return nil
		}
		return &v
	},
	Inverse: func(*string) string { return PasswordMask },
}
