package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisad "hotel_console/internal/adapters/redis"
)

func TestKV_SetGetDel(t *testing.T) {
	mr := miniredis.RunT(t)
	kv := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = kv.Close() })
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "token")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "token", "abc"))
	require.NoError(t, kv.Set(ctx, "user", `{"id":1}`))

	// keys are namespaced
	raw, err := mr.Get("hotel-console:token")
	require.NoError(t, err)
	assert.Equal(t, "abc", raw)

	v, ok, err := kv.Get(ctx, "user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":1}`, v)

	require.NoError(t, kv.Del(ctx, "token", "user"))
	_, ok, _ = kv.Get(ctx, "token")
	assert.False(t, ok)
	assert.False(t, mr.Exists("hotel-console:user"))
}
