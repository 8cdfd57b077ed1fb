package memory

import (
	"context"
	"sort"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog/internal/domain/repository"
)

type ArticleRepository struct {
	s *Store
}

func (r *ArticleRepository) sorted() []*entity.Article {
	out := make([]*entity.Article, 0, len(r.s.articles))
	for _, a := range r.s.articles {
		out = append(out, cloneArticle(a))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (r *ArticleRepository) List(_ context.Context) ([]*entity.Article, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.sorted(), nil
}

func (r *ArticleRepository) Latest(_ context.Context, limit int) ([]*entity.Article, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := r.sorted()
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *ArticleRepository) GetByID(_ context.Context, id int64) (*entity.Article, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.articles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneArticle(a), nil
}

func (r *ArticleRepository) GetByIDs(_ context.Context, ids []int64) ([]*entity.Article, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Article, 0, len(ids))
	for _, id := range ids {
		if a, ok := r.s.articles[id]; ok {
			out = append(out, cloneArticle(a))
		}
	}
	return out, nil
}

func (r *ArticleRepository) ExistsByTitle(_ context.Context, title string, excludeID int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.titleTaken(title, excludeID), nil
}

func (r *ArticleRepository) titleTaken(title string, excludeID int64) bool {
	for id, a := range r.s.articles {
		if id != excludeID && a.Title == title {
			return true
		}
	}
	return false
}

func (r *ArticleRepository) CountByCategory(_ context.Context) (map[int64]int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := map[int64]int{}
	for _, a := range r.s.articles {
		out[a.CategoryID]++
	}
	return out, nil
}

// checkRefs must be called with the write lock held.
func (r *ArticleRepository) checkRefs(a *entity.Article) error {
	if _, ok := r.s.users[a.AuthorID]; !ok {
		return repository.ErrMissingReference
	}
	if _, ok := r.s.categories[a.CategoryID]; !ok {
		return repository.ErrMissingReference
	}
	return nil
}

func (r *ArticleRepository) Create(_ context.Context, a *entity.Article) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.titleTaken(a.Title, 0) {
		return &repository.DuplicateError{Field: "title"}
	}
	if err := r.checkRefs(a); err != nil {
		return err
	}
	a.ID = r.s.next("article")
	r.s.articles[a.ID] = cloneArticle(a)
	return nil
}

// Update keeps the stored creation time and author.
func (r *ArticleRepository) Update(_ context.Context, a *entity.Article) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.articles[a.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if r.titleTaken(a.Title, a.ID) {
		return &repository.DuplicateError{Field: "title"}
	}
	cp := cloneArticle(a)
	cp.CreatedAt = cur.CreatedAt
	cp.AuthorID = cur.AuthorID
	if err := r.checkRefs(cp); err != nil {
		return err
	}
	r.s.articles[a.ID] = cp
	return nil
}

// Delete removes the article together with its comments.
func (r *ArticleRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.articles[id]; !ok {
		return repository.ErrNotFound
	}
	for cid, c := range r.s.comments {
		if c.ArticleID == id {
			delete(r.s.comments, cid)
		}
	}
	delete(r.s.articles, id)
	return nil
}

var _ repository.ArticleRepository = (*ArticleRepository)(nil)
