package entity

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/oksasatya/go-ddd-blog/pkg/validation"
)

// User is an account that can write articles and comments.
// Password holds the bcrypt digest; the plain password never reaches this type.
type User struct {
	ID             int64
	Email          string
	Username       string
	Password       string
	roles          []string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
	LastLogin      *time.Time
	ProfilePicture *string
}

// NewUser returns an active user with the default roles, stamped at now.
func NewUser(email, username string, now time.Time) *User {
	return &User{
		Email:     strings.TrimSpace(email),
		Username:  strings.TrimSpace(username),
		roles:     append([]string{}, DefaultRoles...),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Roles always contains RoleUser, deduplicated, in assignment order.
func (u *User) Roles() []string { return normalizeRoles(u.roles) }

// RawRoles returns the stored roles as assigned, for persistence.
func (u *User) RawRoles() []string { return append([]string{}, u.roles...) }

func (u *User) SetRoles(roles []string) { u.roles = append([]string{}, roles...) }

func (u *User) HasRole(role string) bool { return slices.Contains(u.Roles(), role) }

func (u *User) AddRole(role string) {
	if role == "" || slices.Contains(u.roles, role) {
		return
	}
	u.roles = append(u.roles, role)
}

func (u *User) RemoveRole(role string) {
	u.roles = slices.DeleteFunc(u.roles, func(r string) bool { return r == role })
}

func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin) || u.HasRole(RoleSuperAdmin)
}

// RecordLogin stamps a successful authentication.
func (u *User) RecordLogin(now time.Time) {
	u.LastLogin = &now
	u.UpdatedAt = now
}

// Touch marks the user as modified.
func (u *User) Touch(now time.Time) { u.UpdatedAt = now }

func (u *User) String() string { return u.Username }

// Validate checks the trimmed email and username.
func (u *User) Validate() validation.Errors {
	var errs validation.Errors
	switch email := strings.TrimSpace(u.Email); {
	case email == "":
		errs.Add("email", "Email address is required")
	case utf8.RuneCountInString(email) > 180:
		errs.Add("email", "The email cannot be longer than 180 characters")
	case !validation.IsEmail(email):
		errs.Add("email", fmt.Sprintf("The email '%s' is not a valid email", email))
	}
	switch n := utf8.RuneCountInString(strings.TrimSpace(u.Username)); {
	case n == 0:
		errs.Add("username", "Please enter a username")
	case n < 3:
		errs.Add("username", "Your username should be at least 3 characters")
	case n > 50:
		errs.Add("username", "Your username cannot be longer than 50 characters")
	}
	return errs
}
