package trending

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic_ReturnsCopy(t *testing.T) {
	src := NewStatic([]string{"iPhone", "MacBook"})

	got, err := src.Terms(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"iPhone", "MacBook"}, got)

	got[0] = "mutated"
	again, err := src.Terms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"iPhone", "MacBook"}, again)
}

func newRedisSource(t *testing.T, seed []string) (*miniredis.Miniredis, *RedisSource) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewRedisSource(client, seed)
}

func TestRedisSource_ReadsListInOrder(t *testing.T) {
	mr, src := newRedisSource(t, []string{"seed"})

	_, err := mr.RPush("trending:searches", "iPhone", "MacBook", "headphones")
	require.NoError(t, err)

	got, err := src.Terms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"iPhone", "MacBook", "headphones"}, got)
}

func TestRedisSource_EmptyListFallsBackToSeed(t *testing.T) {
	_, src := newRedisSource(t, []string{"iPhone", "MacBook"})

	got, err := src.Terms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"iPhone", "MacBook"}, got)
}

func TestRedisSource_ErrorPropagates(t *testing.T) {
	mr, src := newRedisSource(t, nil)
	mr.Close()

	_, err := src.Terms(context.Background())
	assert.Error(t, err)
}

func TestRedisSource_Ping(t *testing.T) {
	mr, src := newRedisSource(t, nil)

	require.NoError(t, src.Ping(context.Background()))

	mr.Close()
	assert.Error(t, src.Ping(context.Background()))
}
