package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const accessTTL = 12 * time.Hour

// AccessCache caches positive worker access grants ("user has reported on
// project") backed by Redis. Only positive results are cached: a miss always
// falls back to the persistent store.
// Key format: access:<user_id>:<project_id>
type AccessCache struct {
	client *redis.Client
}

// NewAccessCache creates an AccessCache wrapping the given Redis client.
func NewAccessCache(client *redis.Client) *AccessCache {
	return &AccessCache{client: client}
}

// Has reports whether a grant is cached for this user/project pair.
func (a *AccessCache) Has(ctx context.Context, userID, projectID int64) (bool, error) {
	n, err := a.client.Exists(ctx, a.key(userID, projectID)).Result()
	if err != nil {
		return false, fmt.Errorf("access check: %w", err)
	}
	return n > 0, nil
}

// Grant records that the user has filed a report on the project.
func (a *AccessCache) Grant(ctx context.Context, userID, projectID int64) error {
	return a.client.Set(ctx, a.key(userID, projectID), "1", accessTTL).Err()
}

func (a *AccessCache) key(userID, projectID int64) string {
	return fmt.Sprintf("access:%d:%d", userID, projectID)
}
