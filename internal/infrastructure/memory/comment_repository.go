package memory

import (
	"context"
	"sort"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog/internal/domain/repository"
)

type CommentRepository struct {
	s *Store
}

func (r *CommentRepository) ListByArticle(_ context.Context, articleID int64) ([]*entity.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Comment
	for _, c := range r.s.comments {
		if c.ArticleID == articleID {
			out = append(out, cloneComment(c))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *CommentRepository) Create(_ context.Context, c *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.articles[c.ArticleID]; !ok {
		return repository.ErrMissingReference
	}
	if _, ok := r.s.users[c.AuthorID]; !ok {
		return repository.ErrMissingReference
	}
	c.ID = r.s.next("comment")
	r.s.comments[c.ID] = cloneComment(c)
	return nil
}

func (r *CommentRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.comments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.comments, id)
	return nil
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
