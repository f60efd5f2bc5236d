package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	dom "talentdesk/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	keyList    = "task:list:"
	keyOverdue = "task:overdue:"
	keySearch  = "task:search:"
)

// TaskCache caches per-user task list, search, and overdue results in Redis.
type TaskCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTaskCache returns a new TaskCache.
func NewTaskCache(rdb *redis.Client, ttl time.Duration) *TaskCache {
	return &TaskCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached list for the user or nil if miss.
func (c *TaskCache) GetList(ctx context.Context, userID int64) ([]dom.Task, error) {
	return c.get(ctx, keyList+uid(userID))
}

// SetList stores the user's list in cache.
func (c *TaskCache) SetList(ctx context.Context, userID int64, list []dom.Task) error {
	return c.set(ctx, keyList+uid(userID), list)
}

// GetSearch returns the cached search result for query q, or nil if miss.
func (c *TaskCache) GetSearch(ctx context.Context, userID int64, q string) ([]dom.Task, error) {
	return c.get(ctx, searchKey(userID, q))
}

// SetSearch stores the search result in cache.
func (c *TaskCache) SetSearch(ctx context.Context, userID int64, q string, list []dom.Task) error {
	return c.set(ctx, searchKey(userID, q), list)
}

// GetOverdue returns the cached overdue list or nil if miss.
func (c *TaskCache) GetOverdue(ctx context.Context, userID int64) ([]dom.Task, error) {
	return c.get(ctx, keyOverdue+uid(userID))
}

// SetOverdue stores the overdue list in cache.
func (c *TaskCache) SetOverdue(ctx context.Context, userID int64, list []dom.Task) error {
	return c.set(ctx, keyOverdue+uid(userID), list)
}

// InvalidateUser removes the user's list, overdue, and search keys
// (cache invalidation on every write).
func (c *TaskCache) InvalidateUser(ctx context.Context, userID int64) error {
	if err := c.rdb.Del(ctx, keyList+uid(userID), keyOverdue+uid(userID)).Err(); err != nil {
		return err
	}
	iter := c.rdb.Scan(ctx, 0, keySearch+uid(userID)+":*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *TaskCache) get(ctx context.Context, key string) ([]dom.Task, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Task
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *TaskCache) set(ctx context.Context, key string, list []dom.Task) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}

func searchKey(userID int64, q string) string {
	return keySearch + uid(userID) + ":" + strings.TrimSpace(strings.ToLower(q))
}

func uid(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
