// Package validate 配置 gin 的参数校验, 并把校验失败转成可读的提示
package validate

import (
	"Inkwell/pkg/errs"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var once sync.Once

// Setup 校验错误使用 json 字段名, 可重复调用
func Setup() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})
}

// BindError ShouldBindJSON 的错误转为 400
func BindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, e := range verrs {
			msgs = append(msgs, e.Field()+" "+friendlyMessage(e))
		}
		sort.Strings(msgs)
		return errs.Validation(strings.Join(msgs, "; "))
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return errs.Validation(fmt.Sprintf("%s has an invalid type", typeErr.Field))
	}
	return errs.Validation("malformed request body")
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", e.Param())
		}
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", e.Param())
		}
		return fmt.Sprintf("must be at least %s", e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", e.Param())
		}
		return fmt.Sprintf("must be at most %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	default:
		return "is invalid"
	}
}
