package cached

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"notes-service/internal/adapter/cache"
	domain "notes-service/internal/domain/user"
	"notes-service/internal/usecase/auth"
)

// CachedUserRepository implements auth.Repository with caching support.
// It wraps the persistent repository and a cache; GetByID is the hot path
// because the access gate resolves the caller on every protected request.
type CachedUserRepository struct {
	dbRepo auth.Repository
	cache  cache.UserCache
	log    *zap.Logger
	group  singleflight.Group
}

// NewCachedUserRepository creates a new instance of CachedUserRepository.
// Passing a nil cache disables caching and makes this a transparent wrapper.
func NewCachedUserRepository(dbRepo auth.Repository, cache cache.UserCache, log *zap.Logger) auth.Repository {
	return &CachedUserRepository{
		dbRepo: dbRepo,
		cache:  cache,
		log:    log,
	}
}

// Create delegates to the DB repository. Users are immutable once created,
// so there is nothing to invalidate.
func (r *CachedUserRepository) Create(ctx context.Context, u *domain.User) (int64, error) {
	return r.dbRepo.Create(ctx, u)
}

// GetByID retrieves a user by ID using the cache-aside pattern, with
// single-flight collapsing concurrent misses for the same id into one
// database read.
func (r *CachedUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if r.cache != nil {
		cachedUser, err := r.cache.Get(ctx, id)
		if err != nil {
			r.log.Warn("cache get error, falling back to database", zap.Int64("id", id), zap.Error(err))
		} else if cachedUser != nil {
			return cachedUser, nil
		}
	}

	key := fmt.Sprintf("user:%d", id)
	result, err, _ := r.group.Do(key, func() (any, error) {
		// Another request may have populated the cache while we waited
		if r.cache != nil {
			cachedUser, err := r.cache.Get(ctx, id)
			if err == nil && cachedUser != nil {
				return cachedUser, nil
			}
		}

		u, err := r.dbRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if u == nil {
			// Missing users are not cached; a stale "absent" entry would
			// lock a fresh signup out until the TTL expired
			return (*domain.User)(nil), nil
		}

		if r.cache != nil {
			if err := r.cache.Set(ctx, u); err != nil {
				r.log.Warn("failed to cache user", zap.Int64("id", id), zap.Error(err))
			}
		}

		return u, nil
	})

	if err != nil {
		return nil, err
	}

	return result.(*domain.User), nil
}

// GetByEmail delegates to the DB repository; it is only used by login and
// signup, which are not hot enough to cache.
func (r *CachedUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.dbRepo.GetByEmail(ctx, email)
}
