package form

import (
	"github.com/oksasatya/go-ddd-blog/internal/application/blog"
	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
)

type CategoryForm struct {
	Title       string `form:"title" json:"title" binding:"notblank,min=3,max=255"`
	Description string `form:"description" json:"description,omitempty" binding:"max=5000"`
}

func (CategoryForm) FieldMessages() map[string]string {
	return map[string]string{
		"title.notblank":  "The title cannot be empty",
		"title.min":       "The title must be at least {limit} characters long",
		"title.max":       "The title cannot be longer than {limit} characters",
		"description.max": "The description cannot be longer than {limit} characters",
	}
}

func CategoryFormFrom(c *entity.Category) CategoryForm {
	f := CategoryForm{Title: c.Title}
	if c.Description != nil {
		f.Description = *c.Description
	}
	return f
}

func (f CategoryForm) Input() blog.CategoryInput {
	return blog.CategoryInput{Title: f.Title, Description: f.Description}
}
