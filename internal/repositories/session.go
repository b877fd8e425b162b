package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-user-service/internal/logger"
	"github.com/sbilibin2017/gw-user-service/internal/repoerr"
)

// SessionCacheRepository keeps one refresh token per user in Redis.
type SessionCacheRepository struct {
	client *redis.Client
	exp    time.Duration // lifetime of a stored refresh token
}

// NewSessionCacheRepository creates a new repository instance with the given TTL
func NewSessionCacheRepository(client *redis.Client, expiration time.Duration) *SessionCacheRepository {
	return &SessionCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func sessionKey(userUUID string) string {
	return fmt.Sprintf("refresh_token:%s", userUUID)
}

// SaveRefreshToken stores token for the user, replacing any previous one.
func (r *SessionCacheRepository) SaveRefreshToken(ctx context.Context, userUUID, token string) error {
	key := sessionKey(userUUID)
	err := r.client.Set(ctx, key, token, r.exp).Err()

	logger.FromContext(ctx).Infow("cache set",
		"key", key,
		"ttl", r.exp,
		"error", err,
	)

	return err
}

// GetRefreshToken returns the stored token or repoerr.ErrSessionNotFound.
func (r *SessionCacheRepository) GetRefreshToken(ctx context.Context, userUUID string) (string, error) {
	key := sessionKey(userUUID)
	val, err := r.client.Get(ctx, key).Result()

	logger.FromContext(ctx).Infow("cache get",
		"key", key,
		"found", err == nil,
		"error", err,
	)

	if err == redis.Nil {
		return "", repoerr.ErrSessionNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// DeleteRefreshToken removes the stored token. Deleting a missing key is not an error.
func (r *SessionCacheRepository) DeleteRefreshToken(ctx context.Context, userUUID string) error {
	key := sessionKey(userUUID)
	err := r.client.Del(ctx, key).Err()

	logger.FromContext(ctx).Infow("cache del",
		"key", key,
		"error", err,
	)

	return err
}
