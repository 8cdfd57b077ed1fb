package entity

import (
	"strings"
	"unicode/utf8"

	"github.com/oksasatya/go-ddd-blog/pkg/validation"
)

// Category groups articles. Articles reference it; it owns nothing.
type Category struct {
	ID          int64
	Title       string
	Description *string
}

func (c *Category) String() string {
	if c == nil || c.Title == "" {
		return "New Category"
	}
	return c.Title
}

// Validate checks the title and description bounds.
func (c *Category) Validate() validation.Errors {
	var errs validation.Errors
	title := strings.TrimSpace(c.Title)
	switch n := utf8.RuneCountInString(title); {
	case n == 0:
		errs.Add("title", "The title cannot be empty")
	case n < 3:
		errs.Add("title", "The title must be at least 3 characters long")
	case n > 255:
		errs.Add("title", "The title cannot be longer than 255 characters")
	}
	if c.Description != nil && utf8.RuneCountInString(*c.Description) > 5000 {
		errs.Add("description", "The description cannot be longer than 5000 characters")
	}
	return errs
}
