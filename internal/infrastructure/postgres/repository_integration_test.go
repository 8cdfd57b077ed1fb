//go:build integration

package postgres

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog/internal/domain/repository"
)

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("blog"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(ctr) })

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	require.NoError(t, RunMigrations(dsn, "../../../db/migrations", logger))

	pool, err := NewPool(ctx, dsn, 4, 1, time.Hour)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestRepositories(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()
	users := NewUserRepository(pool)
	categories := NewCategoryRepository(pool)
	articles := NewArticleRepository(pool)
	comments := NewCommentRepository(pool)

	admin, err := users.GetByUsername(ctx, "admin")
	require.NoError(t, err, "migration 000002 creates the default author")
	assert.True(t, admin.IsAdmin())

	alice := entity.NewUser("a@b.com", "alice", time.Now())
	alice.Password = "digest"
	require.NoError(t, users.Create(ctx, alice))
	assert.NotZero(t, alice.ID)

	dupe := entity.NewUser("a@b.com", "other", time.Now())
	dupe.Password = "digest"
	err = users.Create(ctx, dupe)
	field, ok := repository.DuplicateField(err)
	require.True(t, ok)
	assert.Equal(t, "email", field)

	found, err := users.GetByEmail(ctx, "A@B.COM")
	require.NoError(t, err)
	assert.Equal(t, []string{entity.RoleUser}, found.Roles())

	now := time.Now().UTC().Truncate(time.Second)
	found.RecordLogin(now)
	require.NoError(t, users.Update(ctx, found))
	reloaded, err := users.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.LastLogin)
	assert.True(t, now.Equal(*reloaded.LastLogin))

	cat := &entity.Category{Title: "Sport"}
	require.NoError(t, categories.Create(ctx, cat))

	art := &entity.Article{Title: "Hello", Content: "long enough content", Genre: "Essay",
		AuthorID: alice.ID, CategoryID: cat.ID, CreatedAt: now}
	require.NoError(t, articles.Create(ctx, art))

	err = articles.Create(ctx, &entity.Article{Title: "Hello", Content: "x", Genre: "x",
		AuthorID: alice.ID, CategoryID: cat.ID, CreatedAt: now})
	field, ok = repository.DuplicateField(err)
	require.True(t, ok)
	assert.Equal(t, "title", field)

	c := entity.NewComment(art.ID, alice.ID, "Great read!", now)
	require.NoError(t, comments.Create(ctx, c))

	counts, err := articles.CountByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[cat.ID])

	assert.ErrorIs(t, categories.Delete(ctx, cat.ID), repository.ErrReferenced)

	require.NoError(t, articles.Delete(ctx, art.ID))
	left, err := comments.ListByArticle(ctx, art.ID)
	require.NoError(t, err)
	assert.Empty(t, left)

	_, err = users.GetByID(ctx, alice.ID)
	assert.NoError(t, err, "deleting an article keeps its author")
	require.NoError(t, categories.Delete(ctx, cat.ID))

	_, err = articles.GetByID(ctx, art.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
