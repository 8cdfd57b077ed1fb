package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog/internal/domain/repository"
)

// Store keeps every entity in maps keyed by id. Repositories handed out by
// the store share its lock, so a write touching several maps is atomic.
type Store struct {
	mu sync.RWMutex

	users      map[int64]*entity.User
	categories map[int64]*entity.Category
	articles   map[int64]*entity.Article
	comments   map[int64]*entity.Comment

	seq map[string]int64
}

func NewStore() *Store {
	return &Store{
		users:      map[int64]*entity.User{},
		categories: map[int64]*entity.Category{},
		articles:   map[int64]*entity.Article{},
		comments:   map[int64]*entity.Comment{},
		seq:        map[string]int64{},
	}
}

func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }
func (s *Store) Categories() *CategoryRepository { return &CategoryRepository{s: s} }
func (s *Store) Articles() *ArticleRepository { return &ArticleRepository{s: s} }
func (s *Store) Comments() *CommentRepository { return &CommentRepository{s: s} }

// Repositories bundles every view of the store.
func (s *Store) Repositories() repository.Repositories {
	return repository.Repositories{
		Users:      s.Users(),
		Categories: s.Categories(),
		Articles:   s.Articles(),
		Comments:   s.Comments(),
	}
}

// next must be called with the write lock held.
func (s *Store) next(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

func cloneUser(u *entity.User) *entity.User {
	cp := *u
	cp.SetRoles(u.RawRoles())
	return &cp
}

func cloneCategory(c *entity.Category) *entity.Category {
	cp := *c
	return &cp
}

func cloneArticle(a *entity.Article) *entity.Article {
	cp := *a
	return &cp
}

func cloneComment(c *entity.Comment) *entity.Comment {
	cp := *c
	return &cp
}

func sortedIDs[T any](m map[int64]T) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sameEmail(a, b string) bool { return strings.EqualFold(a, b) }
