// Package fixtures loads the demo data set: an admin, a test user, ten
// readers, three categories with three articles each and their comments.
// Loading twice leaves existing rows alone.
package fixtures

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	repo "github.com/oksasatya/go-ddd-blog/internal/domain/repository"
)

const (
	AdminEmail = "admin@symfony.com"
	TestEmail  = "test@example.com"
	Password   = "password"

	readers = 10
)

type Hasher interface {
	Hash(plain string) (string, error)
}

type Loader struct {
	Repos  repo.Repositories
	Hasher Hasher
	Logger *logrus.Logger
	Now    time.Time
	rnd    *rand.Rand
}

// NewLoader returns a loader whose random choices depend only on seed.
func NewLoader(repos repo.Repositories, hasher Hasher, logger *logrus.Logger, seed uint64) *Loader {
	return &Loader{
		Repos:  repos,
		Hasher: hasher,
		Logger: logger,
		Now:    time.Now(),
		rnd:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Summary counts what Load created.
type Summary struct {
	Users      int
	Categories int
	Articles   int
	Comments   int
}

func (l *Loader) Load(ctx context.Context) (Summary, error) {
	var sum Summary
	digest, err := l.Hasher.Hash(Password)
	if err != nil {
		return sum, fmt.Errorf("hash fixture password: %w", err)
	}

	// The author backfill migration may already have created the admin
	// with an unusable password; it is taken over here.
	if _, err := l.upsertAdmin(ctx, digest, &sum); err != nil {
		return sum, err
	}
	if _, err := l.ensureUser(ctx, TestEmail, "test", picture("men", 22), digest, &sum); err != nil {
		return sum, err
	}
	pool := make([]*entity.User, 0, readers)
	for i := 1; i <= readers; i++ {
		gender := "women"
		if i%2 == 0 {
			gender = "men"
		}
		u, err := l.ensureUser(ctx, fmt.Sprintf("user%d@example.com", i), fmt.Sprintf("user%d", i), picture(gender, i), digest, &sum)
		if err != nil {
			return sum, err
		}
		pool = append(pool, u)
	}

	for _, cs := range categories {
		cat, created, err := l.ensureCategory(ctx, cs)
		if err != nil {
			return sum, err
		}
		if created {
			sum.Categories++
		}
		for _, as := range cs.Articles {
			if err := l.ensureArticle(ctx, cat, cs, as, pool, &sum); err != nil {
				return sum, err
			}
		}
	}

	if l.Logger != nil {
		l.Logger.WithFields(logrus.Fields{
			"users": sum.Users, "categories": sum.Categories,
			"articles": sum.Articles, "comments": sum.Comments,
		}).Info("fixtures loaded")
	}
	return sum, nil
}

func picture(gender string, n int) *string {
	p := fmt.Sprintf("https://randomuser.me/api/portraits/%s/%d.jpg", gender, n)
	return &p
}

func (l *Loader) upsertAdmin(ctx context.Context, digest string, sum *Summary) (*entity.User, error) {
	u, err := l.Repos.Users.GetByEmail(ctx, AdminEmail)
	if errors.Is(err, repo.ErrNotFound) {
		return l.ensureUser(ctx, AdminEmail, "admin", picture("men", 1), digest, sum, entity.RoleAdmin)
	}
	if err != nil {
		return nil, err
	}
	u.Password = digest
	u.AddRole(entity.RoleAdmin)
	u.ProfilePicture = picture("men", 1)
	u.Touch(l.Now)
	if err := l.Repos.Users.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("update admin: %w", err)
	}
	return u, nil
}

func (l *Loader) ensureUser(ctx context.Context, email, username string, pic *string, digest string, sum *Summary, roles ...string) (*entity.User, error) {
	u, err := l.Repos.Users.GetByEmail(ctx, email)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	u = entity.NewUser(email, username, l.Now)
	u.Password = digest
	u.ProfilePicture = pic
	u.SetRoles(append([]string{entity.RoleUser}, roles...))
	if err := l.Repos.Users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user %s: %w", username, err)
	}
	sum.Users++
	return u, nil
}

func (l *Loader) ensureCategory(ctx context.Context, cs categorySeed) (*entity.Category, bool, error) {
	list, err := l.Repos.Categories.List(ctx)
	if err != nil {
		return nil, false, err
	}
	for _, c := range list {
		if c.Title == cs.Title {
			return c, false, nil
		}
	}
	desc := cs.Description
	c := &entity.Category{Title: cs.Title, Description: &desc}
	if err := l.Repos.Categories.Create(ctx, c); err != nil {
		return nil, false, fmt.Errorf("create category %q: %w", cs.Title, err)
	}
	return c, true, nil
}

func (l *Loader) ensureArticle(ctx context.Context, cat *entity.Category, cs categorySeed, as articleSeed, pool []*entity.User, sum *Summary) error {
	taken, err := l.Repos.Articles.ExistsByTitle(ctx, as.Title, 0)
	if err != nil {
		return err
	}
	if taken {
		return nil
	}

	a := entity.NewArticle(pool[l.rnd.IntN(len(pool))].ID)
	a.Title = as.Title
	a.Content = as.Content
	a.Genre = as.Genre
	a.CategoryID = cat.ID
	img := cs.Images[l.rnd.IntN(len(cs.Images))]
	a.Image = &img
	// Published some time in the last eight months.
	a.StampCreated(l.Now.Add(-time.Duration(l.rnd.Int64N(int64(240 * 24 * time.Hour)))))
	if err := l.Repos.Articles.Create(ctx, a); err != nil {
		return fmt.Errorf("create article %q: %w", as.Title, err)
	}
	sum.Articles++

	n := 4 + l.rnd.IntN(5)
	age := l.Now.Sub(a.CreatedAt)
	for k := 0; k < n; k++ {
		author := pool[l.rnd.IntN(len(pool))]
		at := a.CreatedAt.Add(time.Duration(l.rnd.Int64N(int64(age) + 1)))
		c := entity.NewComment(a.ID, author.ID, comments[l.rnd.IntN(len(comments))], at)
		if err := l.Repos.Comments.Create(ctx, c); err != nil {
			return fmt.Errorf("create comment: %w", err)
		}
		sum.Comments++
	}
	return nil
}
