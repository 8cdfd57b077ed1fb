package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog/internal/domain/repository"
)

const articleColumns = `id, title, content, image, created_at, updated_at, author_id, genre, category_id`

type ArticleRepository struct {
	pool *pgxpool.Pool
}

func NewArticleRepository(pool *pgxpool.Pool) *ArticleRepository {
	return &ArticleRepository{pool: pool}
}

func scanArticle(row pgx.Row) (*entity.Article, error) {
	a := &entity.Article{}
	if err := row.Scan(&a.ID, &a.Title, &a.Content, &a.Image, &a.CreatedAt, &a.UpdatedAt,
		&a.AuthorID, &a.Genre, &a.CategoryID); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *ArticleRepository) collect(ctx context.Context, sql string, args ...any) ([]*entity.Article, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*entity.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *ArticleRepository) List(ctx context.Context) ([]*entity.Article, error) {
	return r.collect(ctx, `SELECT `+articleColumns+` FROM article ORDER BY created_at DESC, id DESC`)
}

func (r *ArticleRepository) Latest(ctx context.Context, limit int) ([]*entity.Article, error) {
	return r.collect(ctx, `SELECT `+articleColumns+` FROM article ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
}

func (r *ArticleRepository) GetByID(ctx context.Context, id int64) (*entity.Article, error) {
	a, err := scanArticle(r.pool.QueryRow(ctx, `SELECT `+articleColumns+` FROM article WHERE id = $1`, id))
	return a, mapReadError(err)
}

func (r *ArticleRepository) GetByIDs(ctx context.Context, ids []int64) ([]*entity.Article, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	list, err := r.collect(ctx, `SELECT `+articleColumns+` FROM article WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*entity.Article, len(list))
	for _, a := range list {
		byID[a.ID] = a
	}
	out := make([]*entity.Article, 0, len(list))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *ArticleRepository) ExistsByTitle(ctx context.Context, title string, excludeID int64) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM article WHERE title = $1 AND id <> $2)`, title, excludeID).Scan(&ok)
	return ok, err
}

func (r *ArticleRepository) CountByCategory(ctx context.Context) (map[int64]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT category_id, COUNT(*) FROM article GROUP BY category_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[int64]int{}
	for rows.Next() {
		var id int64
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		out[id] = n
	}
	return out, rows.Err()
}

func (r *ArticleRepository) Create(ctx context.Context, a *entity.Article) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, `
			INSERT INTO article (title, content, image, created_at, updated_at, author_id, genre, category_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id
		`, a.Title, a.Content, a.Image, a.CreatedAt, a.UpdatedAt, a.AuthorID, a.Genre, a.CategoryID).Scan(&a.ID)
	})
	return mapWriteError(err)
}

// Update leaves created_at and author_id untouched.
func (r *ArticleRepository) Update(ctx context.Context, a *entity.Article) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE article
			SET title = $1, content = $2, image = $3, updated_at = $4, genre = $5, category_id = $6
			WHERE id = $7
		`, a.Title, a.Content, a.Image, a.UpdatedAt, a.Genre, a.CategoryID, a.ID)
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

// Delete relies on ON DELETE CASCADE for the comments.
func (r *ArticleRepository) Delete(ctx context.Context, id int64) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM article WHERE id = $1`, id)
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

var _ repository.ArticleRepository = (*ArticleRepository)(nil)
