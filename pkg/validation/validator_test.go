package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `form:"email" binding:"required,email"`
	Name     string `form:"username" binding:"notblank,min=3"`
	Password string `form:"plainPassword.first" binding:"required,min=8,strongpwd"`
}

func (signup) FieldMessages() map[string]string {
	return map[string]string{
		"email.email":  "The email '{value}' is not a valid email",
		"username.min": "Your username must be at least {limit} characters long",
	}
}

func TestStrongPassword(t *testing.T) {
	cases := map[string]bool{
		"Abcd1234!":  true,
		"abcd1234!":  false,
		"ABCD1234!":  false,
		"Abcdefgh!":  false,
		"Abcd12345":  false,
		"Abcd1234#":  false,
		"Abcd1234!é": false,
	}
	for pw, want := range cases {
		assert.Equal(t, want, StrongPassword(pw), pw)
	}
}

func TestFromBindingUsesFormNamesAndOverrides(t *testing.T) {
	Init()
	form := signup{Email: "nope", Name: "al", Password: "Abcd1234!"}

	errs := FromBinding(binding.Validator.ValidateStruct(form), form)
	require.Len(t, errs, 2)
	assert.Equal(t, "The email 'nope' is not a valid email", errs.Get("email"))
	assert.Equal(t, "Your username must be at least 3 characters long", errs.Get("username"))
	assert.False(t, errs.Has("plainPassword.first"))
}

func TestFromBindingDefaultMessages(t *testing.T) {
	Init()
	form := signup{Email: "a@b.com", Name: "   ", Password: "weakpass"}

	errs := FromBinding(binding.Validator.ValidateStruct(form), form)
	assert.Equal(t, "This value should not be blank.", errs.Get("username"))
	assert.Contains(t, errs.Get("plainPassword.first"), "special character")
}

func TestFromBindingNil(t *testing.T) {
	assert.Nil(t, FromBinding(nil, nil))
}

func TestErrorsAdd(t *testing.T) {
	var errs Errors
	errs.Add("title", "This title is already in use")
	assert.True(t, errs.Has("title"))
	assert.Equal(t, "title: This title is already in use", errs.Error())
}
