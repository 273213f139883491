package middleware

import (
	"Inkwell/pkg/context"
	"Inkwell/pkg/log"
	"Inkwell/pkg/snowflake"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const HeaderRequestID = "X-Request-Id"

// RequestID 透传或生成请求 ID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if rid == "" {
			rid = snowflake.GenString()
		}
		c.Set(context.CtxRequestID, rid)
		c.Header(HeaderRequestID, rid)
		c.Next()
	}
}

// GinZap 请求日志
func GinZap() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		level := zapcore.InfoLevel
		switch {
		case status >= 500:
			level = zapcore.ErrorLevel
		case status >= 400:
			level = zapcore.WarnLevel
		}

		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString(context.CtxRequestID)),
		}
		if uid, ok := c.Get(context.CtxUserID); ok {
			fields = append(fields, zap.Any("user_id", uid))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		if ce := log.L.Check(level, "http request"); ce != nil {
			ce.Write(fields...)
		}
	}
}
