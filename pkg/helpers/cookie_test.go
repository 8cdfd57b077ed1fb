package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestIsLocalPath(t *testing.T) {
	assert.True(t, IsLocalPath("/blog/new"))
	assert.False(t, IsLocalPath("//evil.test/blog"))
	assert.False(t, IsLocalPath("https://evil.test"))
	assert.False(t, IsLocalPath("/\\evil.test"))
	assert.False(t, IsLocalPath(""))
}

func TestPopTargetPathRejectsForeignURL(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewCookie("", false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: TargetPathCookie, Value: "//evil.test"})

	_, ok := m.PopTargetPath(c)
	assert.False(t, ok)
}

func TestPopTargetPath(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewCookie("", false)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: TargetPathCookie, Value: "/blog/new"})

	path, ok := m.PopTargetPath(c)
	assert.True(t, ok)
	assert.Equal(t, "/blog/new", path)
	assert.Contains(t, w.Header().Get("Set-Cookie"), TargetPathCookie+"=;")
}
