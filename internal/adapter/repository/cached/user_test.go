package cached

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"notes-service/internal/adapter/cache"
	domain "notes-service/internal/domain/user"
)

// countingRepo is a stub auth.Repository that counts DB hits.
type countingRepo struct {
	mu    sync.Mutex
	hits  int
	users map[int64]*domain.User
}

func (r *countingRepo) Create(ctx context.Context, u *domain.User) (int64, error) {
	return u.ID, nil
}

func (r *countingRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	r.hits++
	r.mu.Unlock()
	return r.users[id], nil
}

func (r *countingRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func setupCached(t *testing.T) (*countingRepo, *CachedUserRepository) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	log := zaptest.NewLogger(t)
	db := &countingRepo{users: map[int64]*domain.User{
		1: {ID: 1, Name: "Ann", Email: "ann@x.com"},
	}}
	repo := NewCachedUserRepository(db, cache.NewRedisUserCache(client, time.Minute, log), log).(*CachedUserRepository)
	return db, repo
}

func TestGetByID_CacheAside(t *testing.T) {
	db, repo := setupCached(t)
	ctx := context.Background()

	u, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, 1, db.hits)

	// Second read is served from cache
	u, err = repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Ann", u.Name)
	assert.Equal(t, 1, db.hits)
}

func TestGetByID_MissingUserNotCached(t *testing.T) {
	db, repo := setupCached(t)
	ctx := context.Background()

	u, err := repo.GetByID(ctx, 404)
	require.NoError(t, err)
	assert.Nil(t, u)

	// Absence is re-checked against the DB every time
	_, err = repo.GetByID(ctx, 404)
	require.NoError(t, err)
	assert.Equal(t, 2, db.hits)
}

func TestGetByID_WithoutCache(t *testing.T) {
	log := zaptest.NewLogger(t)
	db := &countingRepo{users: map[int64]*domain.User{1: {ID: 1, Name: "Ann"}}}
	repo := NewCachedUserRepository(db, nil, log)

	u, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Ann", u.Name)
}
