package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// 值等于持有者 token 时才删除, 避免锁过期后误删他人的锁
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// LockStorage 基于 SETNX 的短时互斥锁. 未配置 redis 时总能拿到锁
type LockStorage struct {
	redis *redis.Client
}

func NewLockStorage(rds *redis.Client) *LockStorage {
	return &LockStorage{rds}
}

// Acquire 尝试加锁, 成功时返回持有者 token, 释放时需带上
// @params key  锁名
// @params ttl  过期时间
func (l *LockStorage) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	if l.redis == nil {
		return token, true, nil
	}
	ok, err := l.redis.SetNX(ctx, l.name(key), token, ttl).Result()
	if err != nil || !ok {
		return "", false, err
	}
	return token, true, nil
}

// Release 释放自己持有的锁
func (l *LockStorage) Release(ctx context.Context, key, token string) error {
	if l.redis == nil || token == "" {
		return nil
	}
	return releaseScript.Run(ctx, l.redis, []string{l.name(key)}, token).Err()
}

func (l *LockStorage) name(key string) string {
	return "lock:" + key
}
