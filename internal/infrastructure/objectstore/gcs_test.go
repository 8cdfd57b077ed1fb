package objectstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectPath(t *testing.T) {
	assert.Equal(t, "articles/abc.png", ObjectPath("abc", "Holiday.PNG"))
	assert.Equal(t, "articles/abc.jpg", ObjectPath("abc", `C:\Users\me\photo.jpg`))
	assert.Equal(t, "articles/abc", ObjectPath("abc", "noext"))
}

func TestPublicURL(t *testing.T) {
	s := NewImageStore(nil, "blog-images")
	assert.Equal(t, "https://storage.googleapis.com/blog-images/articles/a.png", s.PublicURL("articles/a.png"))

	s.BaseURL = "https://cdn.example.com/"
	assert.Equal(t, "https://cdn.example.com/articles/a.png", s.PublicURL("articles/a.png"))
}
