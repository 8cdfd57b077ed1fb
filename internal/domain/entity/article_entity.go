package entity

import (
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/oksasatya/go-ddd-blog/pkg/validation"
)

// Article is a blog post. It owns its comments; author and category are
// referenced by id.
type Article struct {
	ID         int64
	Title      string
	Content    string
	Image      *string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	AuthorID   int64
	Genre      string
	CategoryID int64
}

// NewArticle starts an article written by author.
func NewArticle(authorID int64) *Article {
	return &Article{AuthorID: authorID}
}

func (a *Article) IsNew() bool { return a.ID == 0 }

// StampCreated sets CreatedAt the first time only.
func (a *Article) StampCreated(now time.Time) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
}

func (a *Article) MarkUpdated(now time.Time) { a.UpdatedAt = &now }

// SetImageUpload records a stored upload. Replacing the file counts as an
// update of the article.
func (a *Article) SetImageUpload(imageURL string, now time.Time) {
	a.Image = &imageURL
	a.MarkUpdated(now)
}

// Validate checks the required fields and their bounds.
func (a *Article) Validate() validation.Errors {
	var errs validation.Errors
	title := strings.TrimSpace(a.Title)
	switch {
	case title == "":
		errs.Add("title", "Please enter a title")
	case utf8.RuneCountInString(title) > 255:
		errs.Add("title", "The title cannot be longer than 255 characters")
	}
	switch content := strings.TrimSpace(a.Content); {
	case content == "":
		errs.Add("content", "Please enter content")
	case utf8.RuneCountInString(content) < 10:
		errs.Add("content", "Content must be at least 10 characters long")
	}
	if a.Image != nil && *a.Image != "" && !isURL(*a.Image) {
		errs.Add("image", "Please enter a valid URL")
	}
	if a.AuthorID == 0 {
		errs.Add("author_id", "Please select an author")
	}
	switch n := utf8.RuneCountInString(strings.TrimSpace(a.Genre)); {
	case n == 0:
		errs.Add("genre", "Please enter a literary genre")
	case n < 3:
		errs.Add("genre", "Literary genre must be at least 3 characters long")
	case n > 50:
		errs.Add("genre", "Literary genre cannot be longer than 50 characters")
	}
	if a.CategoryID == 0 {
		errs.Add("category_id", "Please select a category")
	}
	return errs
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Host != "" && (u.Scheme == "http" || u.Scheme == "https")
}
