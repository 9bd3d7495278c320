package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRepository holds the ephemeral state: auth sessions and their
// blacklist, the resolved-catalog cache, and anonymous design drafts.
type RedisRepository struct {
	rdb *redis.Client
}

func NewRedisRepository(rdb *redis.Client) *RedisRepository {
	return &RedisRepository{rdb: rdb}
}

// --- auth sessions ---

func (r *RedisRepository) StoreSession(ctx context.Context, jti string, userID string) error {
	key := "session:" + jti
	ttl := 30 * 24 * time.Hour
	return r.rdb.Set(ctx, key, userID, ttl).Err()
}

func (r *RedisRepository) DeleteSession(ctx context.Context, jti string) error {
	key := "session:" + jti
	return r.rdb.Del(ctx, key).Err()
}

func (r *RedisRepository) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	key := "blacklist:" + jti
	exists, err := r.rdb.Exists(ctx, key).Result()
	return exists == 1, err
}

func (r *RedisRepository) Blacklist(ctx context.Context, jti string) error {
	key := "blacklist:" + jti
	ttl := 30 * 24 * time.Hour
	return r.rdb.Set(ctx, key, "true", ttl).Err()
}

// --- resolved catalog cache ---

const catalogTTL = 5 * time.Minute

func (r *RedisRepository) GetCatalog(ctx context.Context, showerTypeID string) (string, error) {
	key := "catalog:" + showerTypeID
	val, err := r.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (r *RedisRepository) SetCatalog(ctx context.Context, showerTypeID string, payload string) error {
	key := "catalog:" + showerTypeID
	return r.rdb.Set(ctx, key, payload, catalogTTL).Err()
}

func (r *RedisRepository) InvalidateCatalog(ctx context.Context, showerTypeID string) error {
	key := "catalog:" + showerTypeID
	return r.rdb.Del(ctx, key).Err()
}

// --- anonymous design drafts ---

const draftTTL = 7 * 24 * time.Hour

func (r *RedisRepository) StoreDraft(ctx context.Context, token string, payload string) error {
	key := "draft:" + token
	return r.rdb.Set(ctx, key, payload, draftTTL).Err()
}

func (r *RedisRepository) GetDraft(ctx context.Context, token string) (string, error) {
	key := "draft:" + token
	val, err := r.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (r *RedisRepository) DeleteDraft(ctx context.Context, token string) error {
	key := "draft:" + token
	return r.rdb.Del(ctx, key).Err()
}
