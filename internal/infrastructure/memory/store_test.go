package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog/internal/domain/repository"
)

type fixture struct {
	store    *Store
	author   *entity.User
	category *entity.Category
	article  *entity.Article
}

func seed(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	s := NewStore()

	u := entity.NewUser("anna@example.com", "anna", time.Now())
	require.NoError(t, s.Users().Create(ctx, u))
	c := &entity.Category{Title: "Sport"}
	require.NoError(t, s.Categories().Create(ctx, c))
	a := &entity.Article{Title: "Hello", Content: "long enough content", Genre: "Essay",
		AuthorID: u.ID, CategoryID: c.ID, CreatedAt: time.Now()}
	require.NoError(t, s.Articles().Create(ctx, a))
	return fixture{store: s, author: u, category: c, article: a}
}

func TestUserUniqueness(t *testing.T) {
	f := seed(t)
	ctx := context.Background()

	err := f.store.Users().Create(ctx, entity.NewUser("ANNA@example.com", "someone", time.Now()))
	field, ok := repository.DuplicateField(err)
	require.True(t, ok)
	assert.Equal(t, "email", field)

	err = f.store.Users().Create(ctx, entity.NewUser("new@example.com", "anna", time.Now()))
	field, _ = repository.DuplicateField(err)
	assert.Equal(t, "username", field)
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestReadsReturnCopies(t *testing.T) {
	f := seed(t)
	ctx := context.Background()

	u, err := f.store.Users().GetByID(ctx, f.author.ID)
	require.NoError(t, err)
	u.Username = "changed"
	u.AddRole(entity.RoleAdmin)

	again, err := f.store.Users().GetByID(ctx, f.author.ID)
	require.NoError(t, err)
	assert.Equal(t, "anna", again.Username)
	assert.False(t, again.IsAdmin())
}

func TestArticleUpdateKeepsCreatedAtAndAuthor(t *testing.T) {
	f := seed(t)
	ctx := context.Background()
	orig := f.article.CreatedAt

	edit := *f.article
	edit.Title = "Hello again"
	edit.CreatedAt = orig.Add(time.Hour)
	edit.AuthorID = 999
	require.NoError(t, f.store.Articles().Update(ctx, &edit))

	got, err := f.store.Articles().GetByID(ctx, f.article.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello again", got.Title)
	assert.Equal(t, orig, got.CreatedAt)
	assert.Equal(t, f.author.ID, got.AuthorID)
}

func TestArticleTitleUnique(t *testing.T) {
	f := seed(t)
	err := f.store.Articles().Create(context.Background(), &entity.Article{
		Title: "Hello", AuthorID: f.author.ID, CategoryID: f.category.ID})
	field, ok := repository.DuplicateField(err)
	require.True(t, ok)
	assert.Equal(t, "title", field)
}

func TestArticleDeleteCascadesComments(t *testing.T) {
	f := seed(t)
	ctx := context.Background()
	comments := f.store.Comments()

	for _, text := range []string{"first comment", "second comment"} {
		require.NoError(t, comments.Create(ctx, entity.NewComment(f.article.ID, f.author.ID, text, time.Now())))
	}
	require.NoError(t, f.store.Articles().Delete(ctx, f.article.ID))

	left, err := comments.ListByArticle(ctx, f.article.ID)
	require.NoError(t, err)
	assert.Empty(t, left)

	_, err = f.store.Users().GetByID(ctx, f.author.ID)
	assert.NoError(t, err)
	_, err = f.store.Categories().GetByID(ctx, f.category.ID)
	assert.NoError(t, err)
}

func TestCommentDeleteKeepsArticle(t *testing.T) {
	f := seed(t)
	ctx := context.Background()
	c := entity.NewComment(f.article.ID, f.author.ID, "Great read!", time.Now())
	require.NoError(t, f.store.Comments().Create(ctx, c))

	require.NoError(t, f.store.Comments().Delete(ctx, c.ID))
	_, err := f.store.Articles().GetByID(ctx, f.article.ID)
	assert.NoError(t, err)
	assert.ErrorIs(t, f.store.Comments().Delete(ctx, c.ID), repository.ErrNotFound)
}

func TestCategoryDeleteRestricted(t *testing.T) {
	f := seed(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.store.Categories().Delete(ctx, f.category.ID), repository.ErrReferenced)
	require.NoError(t, f.store.Articles().Delete(ctx, f.article.ID))
	require.NoError(t, f.store.Categories().Delete(ctx, f.category.ID))
}

func TestMissingReferences(t *testing.T) {
	f := seed(t)
	ctx := context.Background()

	err := f.store.Comments().Create(ctx, entity.NewComment(404, f.author.ID, "hello there", time.Now()))
	assert.ErrorIs(t, err, repository.ErrMissingReference)

	err = f.store.Articles().Create(ctx, &entity.Article{Title: "Other", AuthorID: f.author.ID, CategoryID: 404})
	assert.ErrorIs(t, err, repository.ErrMissingReference)
}

func TestListNewestFirstAndCounts(t *testing.T) {
	f := seed(t)
	ctx := context.Background()
	later := &entity.Article{Title: "Later", Content: "long enough content", Genre: "Essay",
		AuthorID: f.author.ID, CategoryID: f.category.ID, CreatedAt: f.article.CreatedAt.Add(time.Minute)}
	require.NoError(t, f.store.Articles().Create(ctx, later))

	list, err := f.store.Articles().List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Later", list[0].Title)

	latest, err := f.store.Articles().Latest(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, latest, 1)

	counts, err := f.store.Articles().CountByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[f.category.ID])

	byIDs, err := f.store.Articles().GetByIDs(ctx, []int64{later.ID, 404, f.article.ID})
	require.NoError(t, err)
	require.Len(t, byIDs, 2)
	assert.Equal(t, later.ID, byIDs[0].ID)
}
