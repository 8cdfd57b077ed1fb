package repository

import (
	"context"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
)

type ArticleRepository interface {
	// List returns every article, newest first.
	List(ctx context.Context) ([]*entity.Article, error)
	Latest(ctx context.Context, limit int) ([]*entity.Article, error)
	GetByID(ctx context.Context, id int64) (*entity.Article, error)
	// GetByIDs keeps the order of ids and skips unknown ones.
	GetByIDs(ctx context.Context, ids []int64) ([]*entity.Article, error)
	ExistsByTitle(ctx context.Context, title string, excludeID int64) (bool, error)
	CountByCategory(ctx context.Context) (map[int64]int, error)
	Create(ctx context.Context, a *entity.Article) error
	Update(ctx context.Context, a *entity.Article) error
	// Delete removes the article and its comments.
	Delete(ctx context.Context, id int64) error
}
