package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel_console/internal/app"
)

func TestPhonePrefix(t *testing.T) {
	cases := []struct{ in, want string }{
		{"501234567", "+994501234567"},
		{"+994501234567", "+994501234567"},
		{"  501234567 ", "+994501234567"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, app.PhonePrefix.Forward(c.in), c.in)
	}
	assert.Equal(t, "501234567", app.PhonePrefix.Inverse("+994501234567"))
	assert.Equal(t, "501234567", app.PhonePrefix.Inverse(app.PhonePrefix.Forward("501234567")))
}

func TestPasswordField(t *testing.T) {
	assert.Nil(t, app.PasswordField.Forward(""))
	assert.Nil(t, app.PasswordField.Forward(app.PasswordMask))

	pw := app.PasswordField.Forward("newsecret1")
	if assert.NotNil(t, pw) {
		assert.Equal(t, "newsecret1", *pw)
	}
	assert.Equal(t, "******", app.PasswordField.Inverse(pw))
}
