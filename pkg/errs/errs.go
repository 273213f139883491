// Package errs dao, service, handler 共用的哨兵错误
package errs

import (
	"errors"
	"net/http"
)

var (
	// 参数缺失或格式错误
	ErrValidation = errors.New("validation failed")

	// 未登录
	ErrUnauthorized = errors.New("unauthorized")

	// 操作不属于自己的资源
	ErrForbidden = errors.New("forbidden")

	// 引用的 id 不存在
	ErrNotFound = errors.New("not found")

	// 唯一键冲突或并发重复提交
	ErrConflict = errors.New("conflict")
)

// HTTPStatus 错误链映射为状态码, 无匹配时 500
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error 在哨兵错误上附带返回给用户的提示
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func Validation(msg string) error   { return &Error{Kind: ErrValidation, Msg: msg} }
func Unauthorized(msg string) error { return &Error{Kind: ErrUnauthorized, Msg: msg} }
func Forbidden(msg string) error    { return &Error{Kind: ErrForbidden, Msg: msg} }
func NotFound(msg string) error     { return &Error{Kind: ErrNotFound, Msg: msg} }
func Conflict(msg string) error     { return &Error{Kind: ErrConflict, Msg: msg} }
