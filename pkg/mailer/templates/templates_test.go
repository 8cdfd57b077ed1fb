package templates

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-blog/config"
)

func testConfig() *config.Config {
	return &config.Config{AppName: "Blog", BaseURL: "http://blog.test/"}
}

func TestRenderWelcome(t *testing.T) {
	data := NewWelcomeData(testConfig(), "alice", "a@b.com")

	subject, text, html, err := Render(Welcome, data)
	require.NoError(t, err)
	assert.Equal(t, "Welcome to Blog, alice", subject)
	assert.Contains(t, text, "http://blog.test/connexion")
	assert.Contains(t, html, "a@b.com")
}

func TestRenderCommentNotification(t *testing.T) {
	long := strings.Repeat("word ", 60)
	data := NewCommentNotificationData(testConfig(), "anna", "anna@example.com", "Hello <World>", 5, "bob", long,
		WithTime(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)))

	subject, text, html, err := Render(CommentNotification, data)
	require.NoError(t, err)
	assert.Equal(t, `bob commented on "Hello <World>"`, subject)
	assert.Contains(t, text, "http://blog.test/blog/5")
	assert.Contains(t, text, "01 March 2024, 10:00")
	assert.Contains(t, html, "Hello &lt;World&gt;")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, _, err := Render("nope", nil)
	assert.Error(t, err)
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", Excerpt("  short ", 10))
	assert.Equal(t, "abc…", Excerpt("abcdef", 3))
}
