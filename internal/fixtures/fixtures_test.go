package fixtures

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-blog/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog/internal/infrastructure/memory"
	"github.com/oksasatya/go-ddd-blog/pkg/helpers"
)

var hasher = helpers.BcryptHasher{Cost: 4}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	l := NewLoader(store.Repositories(), hasher, nil, 7)

	sum, err := l.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, sum.Users)
	assert.Equal(t, 3, sum.Categories)
	assert.Equal(t, 9, sum.Articles)
	assert.GreaterOrEqual(t, sum.Comments, 9*4)
	assert.LessOrEqual(t, sum.Comments, 9*8)

	admin, err := store.Users().GetByEmail(ctx, AdminEmail)
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())
	assert.True(t, hasher.Verify(Password, admin.Password))

	u, err := store.Users().GetByUsername(ctx, "user3")
	require.NoError(t, err)
	require.NotNil(t, u.ProfilePicture)
	assert.Equal(t, "https://randomuser.me/api/portraits/women/3.jpg", *u.ProfilePicture)
	assert.False(t, u.IsAdmin())

	articles, err := store.Articles().List(ctx)
	require.NoError(t, err)
	for _, a := range articles {
		assert.Empty(t, a.Validate(), a.Title)
		assert.True(t, a.CreatedAt.After(l.Now.Add(-241*24*time.Hour)))
		list, err := store.Comments().ListByArticle(ctx, a.ID)
		require.NoError(t, err)
		require.NotEmpty(t, list)
		for _, c := range list {
			assert.False(t, c.CreatedAt.Before(a.CreatedAt))
		}
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	_, err := NewLoader(store.Repositories(), hasher, nil, 1).Load(ctx)
	require.NoError(t, err)
	sum, err := NewLoader(store.Repositories(), hasher, nil, 2).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{}, sum)

	cats, err := store.Categories().List(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 3)
}

func TestLoadTakesOverPlaceholderAdmin(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	placeholder := entity.NewUser(AdminEmail, "admin", time.Now())
	placeholder.Password = "!"
	require.NoError(t, store.Users().Create(ctx, placeholder))

	sum, err := NewLoader(store.Repositories(), hasher, nil, 3).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 11, sum.Users)

	admin, err := store.Users().GetByID(ctx, placeholder.ID)
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())
	assert.True(t, hasher.Verify(Password, admin.Password))
}

func TestLoadIsDeterministic(t *testing.T) {
	ctx := context.Background()
	authors := func() []int64 {
		store := memory.NewStore()
		_, err := NewLoader(store.Repositories(), hasher, nil, 42).Load(ctx)
		require.NoError(t, err)
		list, err := store.Articles().List(ctx)
		require.NoError(t, err)
		out := make([]int64, 0, len(list))
		for _, a := range list {
			out = append(out, a.AuthorID)
		}
		return out
	}
	assert.Equal(t, authors(), authors())
}
