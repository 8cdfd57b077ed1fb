package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserRolesAlwaysContainRoleUser(t *testing.T) {
	u := NewUser("a@b.com", "alice", time.Now())
	u.SetRoles(nil)
	assert.Equal(t, []string{RoleUser}, u.Roles())

	u.SetRoles([]string{RoleAdmin, RoleAdmin, RoleUser})
	assert.Equal(t, []string{RoleAdmin, RoleUser}, u.Roles())
	assert.True(t, u.IsAdmin())

	u.RemoveRole(RoleAdmin)
	assert.False(t, u.IsAdmin())
	assert.True(t, u.HasRole(RoleUser))
}

func TestUserAddRoleAndSuperAdmin(t *testing.T) {
	u := NewUser("a@b.com", "alice", time.Now())
	u.AddRole(RoleSuperAdmin)
	u.AddRole(RoleSuperAdmin)
	assert.Equal(t, []string{RoleUser, RoleSuperAdmin}, u.RawRoles())
	assert.True(t, u.IsAdmin())
}

func TestUserRecordLogin(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	u := NewUser("a@b.com", "alice", created)
	assert.Nil(t, u.LastLogin)

	at := created.Add(time.Hour)
	u.RecordLogin(at)
	assert.Equal(t, at, *u.LastLogin)
	assert.Equal(t, at, u.UpdatedAt)
	assert.Equal(t, created, u.CreatedAt)
}

func TestUserValidateTrimsBeforeChecking(t *testing.T) {
	u := &User{Email: " not-an-email ", Username: "  ab  "}
	errs := u.Validate()
	assert.Equal(t, "The email 'not-an-email' is not a valid email", errs.Get("email"))
	assert.Equal(t, "Your username should be at least 3 characters", errs.Get("username"))

	u = &User{Email: "a@b.com", Username: "   "}
	assert.Equal(t, "Please enter a username", u.Validate().Get("username"))

	u = &User{Email: "a@b.com", Username: strings.Repeat("x", 51)}
	assert.Equal(t, "Your username cannot be longer than 50 characters", u.Validate().Get("username"))

	assert.Empty(t, NewUser(" a@b.com ", " alice ", time.Now()).Validate())
}

func TestArticleStampCreatedOnce(t *testing.T) {
	a := NewArticle(1)
	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a.StampCreated(first)
	a.StampCreated(first.Add(time.Hour))
	assert.Equal(t, first, a.CreatedAt)
	assert.Nil(t, a.UpdatedAt)

	a.SetImageUpload("https://cdn.test/a.png", first.Add(2*time.Hour))
	assert.Equal(t, "https://cdn.test/a.png", *a.Image)
	assert.Equal(t, first.Add(2*time.Hour), *a.UpdatedAt)
}

func TestArticleValidate(t *testing.T) {
	a := &Article{Title: " ", Content: "short", Genre: "ab", Image: ptr("not a url")}
	errs := a.Validate()
	assert.Equal(t, "Please enter a title", errs.Get("title"))
	assert.Equal(t, "Content must be at least 10 characters long", errs.Get("content"))
	assert.Equal(t, "Please enter a valid URL", errs.Get("image"))
	assert.True(t, errs.Has("author_id"))
	assert.True(t, errs.Has("category_id"))
	assert.Equal(t, "Literary genre must be at least 3 characters long", errs.Get("genre"))

	ok := &Article{Title: "Hello", Content: "long enough content", Genre: "Essay", AuthorID: 1, CategoryID: 2}
	assert.Empty(t, ok.Validate())
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "New Category", (&Category{}).String())
	assert.Equal(t, "Sport", (&Category{Title: "Sport"}).String())
	assert.Equal(t, "The title must be at least 3 characters long", (&Category{Title: "ab"}).Validate().Get("title"))
}

func TestCommentValidate(t *testing.T) {
	now := time.Now()
	c := NewComment(5, 2, "  Great read!  ", now)
	assert.Equal(t, "Great read!", c.Content)
	assert.Equal(t, now, c.CreatedAt)
	assert.Empty(t, c.Validate())

	assert.Equal(t, "Your comment must be at least 5 characters long", NewComment(5, 2, "hey", now).Validate().Get("content"))
}

func ptr(s string) *string { return &s }
