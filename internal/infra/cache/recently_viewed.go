package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// 「最近見た商品」のproduct_id列をユーザー単位でキャッシュする。
// Redisが未設定（client=nil）の場合は常にミス扱いで素通しする。
type RecentlyViewedCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRecentlyViewedCache(rdb *redis.Client, ttl time.Duration) *RecentlyViewedCache {
	return &RecentlyViewedCache{rdb: rdb, ttl: ttl}
}

func (c *RecentlyViewedCache) key(userID int64) string {
	return fmt.Sprintf("recently-viewed:%d", userID)
}

func (c *RecentlyViewedCache) Get(ctx context.Context, userID int64) ([]int64, bool, error) {
	if c == nil || c.rdb == nil {
		return nil, false, nil
	}

	val, err := c.rdb.Get(ctx, c.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var ids []int64
	if err := json.Unmarshal([]byte(val), &ids); err != nil {
		return nil, false, err
	}
	return ids, true, nil
}

func (c *RecentlyViewedCache) Set(ctx context.Context, userID int64, ids []int64) error {
	if c == nil || c.rdb == nil {
		return nil
	}

	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key(userID), data, c.ttl).Err()
}

// 閲覧を記録したら射影が変わるのでキャッシュを消す
func (c *RecentlyViewedCache) Invalidate(ctx context.Context, userID int64) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, c.key(userID)).Err()
}
