package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 同一读者对同一本书 24 小时内只计一次阅读
const viewExpireAt = 24 * time.Hour

type ViewStorage struct {
	redis *redis.Client
}

func NewViewStorage(rds *redis.Client) *ViewStorage {
	return &ViewStorage{rds}
}

// MarkViewed 记录一次阅读, 返回是否为窗口内首次
// @params bookID  书籍ID
// @params viewer  读者标识(用户ID或IP)
func (v *ViewStorage) MarkViewed(ctx context.Context, bookID uint64, viewer string) (bool, error) {
	if v.redis == nil {
		return true, nil
	}
	return v.redis.SetNX(ctx, v.name(bookID, viewer), 1, viewExpireAt).Result()
}

func (v *ViewStorage) name(bookID uint64, viewer string) string {
	return fmt.Sprintf("book:view:%d:%s", bookID, viewer)
}
