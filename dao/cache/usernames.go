package cache

import (
	"strconv"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// UserNames 进程内用户名缓存. 用户名注册后不可修改, 无需失效
type UserNames struct {
	items cmap.ConcurrentMap[string, string]
}

func NewUserNames() *UserNames {
	return &UserNames{items: cmap.New[string]()}
}

func (u *UserNames) Get(userID uint64) (string, bool) {
	return u.items.Get(strconv.FormatUint(userID, 10))
}

func (u *UserNames) Set(userID uint64, username string) {
	u.items.Set(strconv.FormatUint(userID, 10), username)
}

// Missing 返回缓存中没有的用户ID
func (u *UserNames) Missing(userIDs []uint64) []uint64 {
	missing := make([]uint64, 0)
	for _, id := range userIDs {
		if !u.items.Has(strconv.FormatUint(id, 10)) {
			missing = append(missing, id)
		}
	}
	return missing
}
