package utils

import (
	"bytes"
	"fmt"
	"runtime"

	"github.com/speps/go-hashids/v2"
)

func PanicTrace(err interface{}) string {
	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "%v\n", err)
	for i := 2; ; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fmt.Fprintf(buf, "%s:%d (0x%x)\n", file, line, pc)
	}
	return buf.String()
}

func newHashID(salt string) (*hashids.HashID, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 12
	return hashids.NewWithData(hd)
}

// GenHashID 生成分享码
func GenHashID(salt string, id uint64) (string, error) {
	h, err := newHashID(salt)
	if err != nil {
		return "", err
	}
	return h.EncodeInt64([]int64{int64(id)})
}

// ParseHashID 解析分享码，返回 0 表示无效
func ParseHashID(salt string, code string) uint64 {
	h, err := newHashID(salt)
	if err != nil {
		return 0
	}
	ids, err := h.DecodeInt64WithError(code)
	if err != nil || len(ids) != 1 || ids[0] <= 0 {
		return 0
	}
	return uint64(ids[0])
}

// Unique 去重并保持原顺序
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, v := range items {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
