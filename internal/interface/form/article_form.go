package form

import (
	"strings"

	"github.com/oksasatya/go-ddd-blog/internal/application/blog"
	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
)

// ArticleForm is the create/edit article form. The optional imageFile
// upload travels beside it as a multipart file.
type ArticleForm struct {
	Title      string `form:"title" json:"title" binding:"notblank,max=255"`
	Content    string `form:"content" json:"content" binding:"notblank,min=10"`
	CategoryID int64  `form:"category_id" json:"category_id" binding:"required"`
	Genre      string `form:"genre" json:"genre" binding:"notblank,min=3,max=50"`
	Image      string `form:"image" json:"image,omitempty" binding:"omitempty,url,max=255"`
	AuthorID   int64  `form:"author_id" json:"author_id,omitempty"`
}

func (ArticleForm) FieldMessages() map[string]string {
	return map[string]string{
		"title.notblank":       "Please enter a title",
		"title.max":            "The title cannot be longer than {limit} characters",
		"content.notblank":     "Please enter content",
		"content.min":          "Content must be at least {limit} characters long",
		"category_id.required": blog.MsgUnknownCategory,
		"genre.notblank":       "Please enter a literary genre",
		"genre.min":            "Literary genre must be at least {limit} characters long",
		"genre.max":            "Literary genre cannot be longer than {limit} characters",
		"image.url":            "Please enter a valid URL",
	}
}

// ArticleFormFrom pre-fills the form for editing a.
func ArticleFormFrom(a *entity.Article) ArticleForm {
	f := ArticleForm{
		Title:      a.Title,
		Content:    a.Content,
		CategoryID: a.CategoryID,
		Genre:      a.Genre,
		AuthorID:   a.AuthorID,
	}
	if a.Image != nil {
		f.Image = *a.Image
	}
	return f
}

func (f ArticleForm) Input() blog.ArticleInput {
	return blog.ArticleInput{
		Title:      strings.TrimSpace(f.Title),
		Content:    f.Content,
		CategoryID: f.CategoryID,
		Genre:      strings.TrimSpace(f.Genre),
		Image:      strings.TrimSpace(f.Image),
		AuthorID:   f.AuthorID,
	}
}
