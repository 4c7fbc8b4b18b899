package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "notes-service/internal/domain/user"
)

func setupCache(t *testing.T) (UserCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisUserCache(client, 5*time.Minute, zaptest.NewLogger(t)), mr
}

func TestRedisUserCache_SetGet(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	u := &domain.User{ID: 1, Name: "Ann", Email: "ann@x.com", PasswordHash: "hash"}
	require.NoError(t, c.Set(ctx, u))

	got, err := c.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.Name, got.Name)
	assert.Equal(t, u.Email, got.Email)
}

func TestRedisUserCache_MissReturnsNil(t *testing.T) {
	c, _ := setupCache(t)

	got, err := c.Get(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisUserCache_TTLExpiry(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, &domain.User{ID: 1, Name: "Ann"}))

	mr.FastForward(6 * time.Minute)

	got, err := c.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisUserCache_SetNil(t *testing.T) {
	c, _ := setupCache(t)
	assert.Error(t, c.Set(context.Background(), nil))
}
