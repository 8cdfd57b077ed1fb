package memory

import (
	"context"
	"sort"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog/internal/domain/repository"
)

type CategoryRepository struct {
	s *Store
}

func (r *CategoryRepository) List(_ context.Context) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, cloneCategory(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (r *CategoryRepository) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneCategory(c), nil
}

func (r *CategoryRepository) ListByIDs(_ context.Context, ids []int64) (map[int64]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[int64]*entity.Category, len(ids))
	for _, id := range ids {
		if c, ok := r.s.categories[id]; ok {
			out[id] = cloneCategory(c)
		}
	}
	return out, nil
}

func (r *CategoryRepository) ExistsByTitle(_ context.Context, title string, excludeID int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.titleTaken(title, excludeID), nil
}

func (r *CategoryRepository) titleTaken(title string, excludeID int64) bool {
	for id, c := range r.s.categories {
		if id != excludeID && c.Title == title {
			return true
		}
	}
	return false
}

func (r *CategoryRepository) Create(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.titleTaken(c.Title, 0) {
		return &repository.DuplicateError{Field: "title"}
	}
	c.ID = r.s.next("category")
	r.s.categories[c.ID] = cloneCategory(c)
	return nil
}

func (r *CategoryRepository) Update(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[c.ID]; !ok {
		return repository.ErrNotFound
	}
	if r.titleTaken(c.Title, c.ID) {
		return &repository.DuplicateError{Field: "title"}
	}
	r.s.categories[c.ID] = cloneCategory(c)
	return nil
}

func (r *CategoryRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[id]; !ok {
		return repository.ErrNotFound
	}
	for _, a := range r.s.articles {
		if a.CategoryID == id {
			return repository.ErrReferenced
		}
	}
	delete(r.s.categories, id)
	return nil
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)
