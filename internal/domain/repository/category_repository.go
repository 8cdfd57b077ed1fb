package repository

import (
	"context"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	ListByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Category, error)
	// ExistsByTitle ignores the category with excludeID (0 for none).
	ExistsByTitle(ctx context.Context, title string, excludeID int64) (bool, error)
	Create(ctx context.Context, c *entity.Category) error
	Update(ctx context.Context, c *entity.Category) error
	// Delete fails with ErrReferenced while articles use the category.
	Delete(ctx context.Context, id int64) error
}
