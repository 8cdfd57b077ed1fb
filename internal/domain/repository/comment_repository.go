package repository

import (
	"context"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
)

type CommentRepository interface {
	// ListByArticle returns the comments of an article, oldest first.
	ListByArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error)
	Create(ctx context.Context, c *entity.Comment) error
	Delete(ctx context.Context, id int64) error
}
