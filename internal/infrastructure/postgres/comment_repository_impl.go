package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog/internal/domain/repository"
)

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) ListByArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, author_id, content, created_at, article_id
		FROM comment
		WHERE article_id = $1
		ORDER BY created_at, id
	`, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*entity.Comment
	for rows.Next() {
		c := &entity.Comment{}
		if err := rows.Scan(&c.ID, &c.AuthorID, &c.Content, &c.CreatedAt, &c.ArticleID); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CommentRepository) Create(ctx context.Context, c *entity.Comment) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, `
			INSERT INTO comment (author_id, content, created_at, article_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, c.AuthorID, c.Content, c.CreatedAt, c.ArticleID).Scan(&c.ID)
	})
	return mapWriteError(err)
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comment WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
