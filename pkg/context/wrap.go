package context

import (
	"Inkwell/pkg/errs"
	"Inkwell/pkg/log"
	"Inkwell/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID    = "user_id"
	CtxUsername  = "username"
	CtxRequestID = "request_id"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Msg)
				return
			}

			status := errs.HTTPStatus(err)
			if status != http.StatusInternalServerError {
				response.Fail(c, status, err.Error())
				return
			}

			log.L.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
				zap.String("request_id", c.GetString(CtxRequestID)),
				zap.Error(err),
			)
			response.Fail(c, http.StatusInternalServerError, "internal server error")
		}
	}
}

// GetUserID 当前登录用户, 匿名请求返回 401
func GetUserID(c *gin.Context) (uint64, error) {
	uid := OptionalUserID(c)
	if uid == 0 {
		return 0, errs.Unauthorized("not authenticated")
	}
	return uid, nil
}

// OptionalUserID 匿名请求返回 0
func OptionalUserID(c *gin.Context) uint64 {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0
	}
	uid, _ := v.(uint64)
	return uid
}
