package response

import (
	"github.com/gin-gonic/gin"
)

// BizError 带 HTTP 状态码的业务错误, 由 context.Wrap 原样输出
type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{Message: msg})
}
