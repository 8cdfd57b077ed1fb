package form

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-blog/pkg/validation"
)

func bind(t *testing.T, values url.Values, dst any) validation.Errors {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req
	return validation.FromBinding(c.ShouldBind(dst), dst)
}

func TestArticleFormBlankTitle(t *testing.T) {
	var f ArticleForm
	errs := bind(t, url.Values{
		"title":       {""},
		"content":     {"Some long enough content"},
		"category_id": {"1"},
		"genre":       {"Essay"},
	}, &f)
	require.Len(t, errs, 1)
	assert.Equal(t, "Please enter a title", errs.Get("title"))
}

func TestArticleFormMessages(t *testing.T) {
	var f ArticleForm
	errs := bind(t, url.Values{
		"title":   {"Hello"},
		"content": {"short"},
		"genre":   {"ab"},
		"image":   {"not a url"},
	}, &f)
	assert.Equal(t, "Content must be at least 10 characters long", errs.Get("content"))
	assert.Equal(t, "Literary genre must be at least 3 characters long", errs.Get("genre"))
	assert.Equal(t, "Please enter a valid URL", errs.Get("image"))
	assert.Equal(t, "Please select a category", errs.Get("category_id"))
}

func TestArticleFormInputTrims(t *testing.T) {
	var f ArticleForm
	errs := bind(t, url.Values{
		"title":       {"  Hello  "},
		"content":     {"Some long enough content"},
		"category_id": {"3"},
		"genre":       {" Essay "},
		"image":       {"https://cdn.test/a.png"},
	}, &f)
	require.Empty(t, errs)
	in := f.Input()
	assert.Equal(t, "Hello", in.Title)
	assert.Equal(t, "Essay", in.Genre)
	assert.Equal(t, int64(3), in.CategoryID)
}

func TestArticleFormMalformedNumber(t *testing.T) {
	var f ArticleForm
	errs := bind(t, url.Values{"category_id": {"abc"}}, &f)
	assert.True(t, errs.Has("form"))
}

func TestCommentForm(t *testing.T) {
	var f CommentForm
	assert.Empty(t, bind(t, url.Values{"content": {"Great read!"}, "created_at": {"1999-01-01"}}, &f))
	assert.Equal(t, "Great read!", f.Content)

	var short CommentForm
	errs := bind(t, url.Values{"content": {"hey"}}, &short)
	assert.Equal(t, "Your comment must be at least 5 characters long", errs.Get("content"))
}

func TestRegistrationForm(t *testing.T) {
	var ok RegistrationForm
	require.Empty(t, bind(t, url.Values{
		"email":                {"a@b.com"},
		"username":             {"alice"},
		"plainPassword.first":  {"Abcd1234!"},
		"plainPassword.second": {"Abcd1234!"},
	}, &ok))
	assert.Equal(t, "Abcd1234!", ok.Input().Password)

	var bad RegistrationForm
	errs := bind(t, url.Values{
		"email":                {"nope"},
		"username":             {"al"},
		"plainPassword.first":  {"abcd1234"},
		"plainPassword.second": {"other"},
	}, &bad)
	assert.Equal(t, "The email 'nope' is not a valid email", errs.Get("email"))
	assert.Equal(t, "Your username should be at least 3 characters", errs.Get("username"))
	assert.Contains(t, errs.Get("plainPassword.first"), "one uppercase letter")
	assert.Equal(t, "The password fields must match.", errs.Get("plainPassword.second"))
}

func TestCategoryForm(t *testing.T) {
	var f CategoryForm
	errs := bind(t, url.Values{"title": {"ab"}}, &f)
	assert.Equal(t, "The title must be at least 3 characters long", errs.Get("title"))
}
