package blog

import (
	"context"
	"time"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
)

type UserRef struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

type CategoryRef struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// ArticleView is an article with its author and category resolved.
type ArticleView struct {
	ID        int64       `json:"id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Image     *string     `json:"image,omitempty"`
	Genre     string      `json:"genre"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt *time.Time  `json:"updated_at,omitempty"`
	Author    UserRef     `json:"author"`
	Category  CategoryRef `json:"category"`
}

type CommentView struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Author    UserRef   `json:"author"`
}

type ArticleDetail struct {
	Article  ArticleView   `json:"article"`
	Comments []CommentView `json:"comments"`
}

type CategoryView struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	ArticleCount int     `json:"article_count"`
}

func userRef(u *entity.User, id int64) UserRef {
	if u == nil {
		return UserRef{ID: id}
	}
	return UserRef{ID: u.ID, Username: u.Username, ProfilePicture: u.ProfilePicture}
}

func categoryRef(c *entity.Category, id int64) CategoryRef {
	if c == nil {
		return CategoryRef{ID: id, Title: (*entity.Category)(nil).String()}
	}
	return CategoryRef{ID: c.ID, Title: c.Title}
}

// viewArticles resolves authors and categories with one lookup each.
func (s *Service) viewArticles(ctx context.Context, list []*entity.Article) ([]ArticleView, error) {
	userIDs := make([]int64, 0, len(list))
	catIDs := make([]int64, 0, len(list))
	for _, a := range list {
		userIDs = append(userIDs, a.AuthorID)
		catIDs = append(catIDs, a.CategoryID)
	}
	users, err := s.Users.ListByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	cats, err := s.Categories.ListByIDs(ctx, catIDs)
	if err != nil {
		return nil, err
	}
	out := make([]ArticleView, 0, len(list))
	for _, a := range list {
		out = append(out, ArticleView{
			ID:        a.ID,
			Title:     a.Title,
			Content:   a.Content,
			Image:     a.Image,
			Genre:     a.Genre,
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
			Author:    userRef(users[a.AuthorID], a.AuthorID),
			Category:  categoryRef(cats[a.CategoryID], a.CategoryID),
		})
	}
	return out, nil
}
