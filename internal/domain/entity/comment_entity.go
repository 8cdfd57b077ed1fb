package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/oksasatya/go-ddd-blog/pkg/validation"
)

// Comment belongs to exactly one article and one author.
type Comment struct {
	ID        int64
	AuthorID  int64
	Content   string
	CreatedAt time.Time
	ArticleID int64
}

// NewComment binds content to an article and author. CreatedAt is always
// the server clock.
func NewComment(articleID, authorID int64, content string, now time.Time) *Comment {
	return &Comment{
		ArticleID: articleID,
		AuthorID:  authorID,
		Content:   strings.TrimSpace(content),
		CreatedAt: now,
	}
}

func (c *Comment) Validate() validation.Errors {
	var errs validation.Errors
	switch n := utf8.RuneCountInString(strings.TrimSpace(c.Content)); {
	case n == 0:
		errs.Add("content", "The comment cannot be empty")
	case n < 5:
		errs.Add("content", "Your comment must be at least 5 characters long")
	}
	if c.AuthorID == 0 {
		errs.Add("author", "This value should not be null.")
	}
	if c.ArticleID == 0 {
		errs.Add("article", "This value should not be null.")
	}
	return errs
}
