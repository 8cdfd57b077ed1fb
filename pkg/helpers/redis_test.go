package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `json:"name"`
}

func TestRedisJSONHelpers(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := NewRedisClient(mr.Addr(), "", 0)
	ctx := context.Background()

	var got sample
	found, err := RedisGetJSON(ctx, rdb, "missing", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, RedisSetJSON(ctx, rdb, "k", sample{Name: "alice"}, time.Minute))
	found, err = RedisGetJSON(ctx, rdb, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "alice", got.Name)

	require.NoError(t, RedisDel(ctx, rdb, "k"))
	assert.False(t, mr.Exists("k"))
}

func TestRedisListDrain(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := NewRedisClient(mr.Addr(), "", 0)
	ctx := context.Background()

	require.NoError(t, RedisPushJSON(ctx, rdb, "l", sample{Name: "a"}, time.Minute))
	require.NoError(t, RedisPushJSON(ctx, rdb, "l", sample{Name: "b"}, time.Minute))

	items, err := RedisDrainJSON[sample](ctx, rdb, "l")
	require.NoError(t, err)
	assert.Equal(t, []sample{{Name: "a"}, {Name: "b"}}, items)

	items, err = RedisDrainJSON[sample](ctx, rdb, "l")
	require.NoError(t, err)
	assert.Empty(t, items)
}
