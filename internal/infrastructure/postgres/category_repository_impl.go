package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog/internal/domain/repository"
)

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	c := &entity.Category{}
	if err := row.Scan(&c.ID, &c.Title, &c.Description); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CategoryRepository) collect(ctx context.Context, sql string, args ...any) ([]*entity.Category, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	return r.collect(ctx, `SELECT id, title, description FROM category ORDER BY title`)
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	c, err := scanCategory(r.pool.QueryRow(ctx, `SELECT id, title, description FROM category WHERE id = $1`, id))
	return c, mapReadError(err)
}

func (r *CategoryRepository) ListByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Category, error) {
	out := make(map[int64]*entity.Category, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	list, err := r.collect(ctx, `SELECT id, title, description FROM category WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		out[c.ID] = c
	}
	return out, nil
}

func (r *CategoryRepository) ExistsByTitle(ctx context.Context, title string, excludeID int64) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM category WHERE title = $1 AND id <> $2)`, title, excludeID).Scan(&ok)
	return ok, err
}

func (r *CategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, `INSERT INTO category (title, description) VALUES ($1, $2) RETURNING id`,
			c.Title, c.Description).Scan(&c.ID)
	})
	return mapWriteError(err)
}

func (r *CategoryRepository) Update(ctx context.Context, c *entity.Category) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE category SET title = $1, description = $2 WHERE id = $3`,
			c.Title, c.Description, c.ID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
	return mapWriteError(err)
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM category WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
	return mapDeleteError(err)
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)
