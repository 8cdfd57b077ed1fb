package form

import (
	"strings"

	"github.com/oksasatya/go-ddd-blog/internal/application/security"
)

// RegistrationForm asks for the password twice; neither copy is ever echoed back.
type RegistrationForm struct {
	Email           string `form:"email" json:"email" binding:"required,email,max=180"`
	Username        string `form:"username" json:"username" binding:"notblank,min=3,max=50"`
	PlainPassword   string `form:"plainPassword.first" json:"-" binding:"required,min=8,max=4096,strongpwd"`
	ConfirmPassword string `form:"plainPassword.second" json:"-" binding:"eqfield=PlainPassword"`
}

func (RegistrationForm) FieldMessages() map[string]string {
	return map[string]string{
		"email.required":                "Email address is required",
		"email.email":                   "The email '{value}' is not a valid email",
		"email.max":                     "The email cannot be longer than {limit} characters",
		"username.notblank":             "Please enter a username",
		"username.min":                  "Your username should be at least {limit} characters",
		"username.max":                  "Your username cannot be longer than {limit} characters",
		"plainPassword.first.required":  "Please enter a password",
		"plainPassword.first.min":       "Your password should be at least {limit} characters",
		"plainPassword.first.max":       "Your password cannot be longer than {limit} characters",
		"plainPassword.first.strongpwd": "Password must contain at least one uppercase letter, one lowercase letter, one number and one special character",
		"plainPassword.second.eqfield":  "The password fields must match.",
	}
}

func (f RegistrationForm) Input() security.RegistrationInput {
	return security.RegistrationInput{
		Email:    strings.TrimSpace(f.Email),
		Username: strings.TrimSpace(f.Username),
		Password: f.PlainPassword,
	}
}
