package handler

import (
	"Inkwell/pkg/context"
	"Inkwell/pkg/errs"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID 解析路径中的数字 ID
func pathID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errs.Validation("invalid " + name)
	}
	return id, nil
}

// viewerKey 阅读去重用的读者标识, 匿名按 IP
func viewerKey(c *gin.Context) string {
	if uid := context.OptionalUserID(c); uid != 0 {
		return "u:" + strconv.FormatUint(uid, 10)
	}
	return "ip:" + c.ClientIP()
}
