package middleware

import (
	"Inkwell/pkg/context"
	"Inkwell/pkg/jwt"
	"Inkwell/pkg/log"
	"Inkwell/pkg/response"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errMalformedAuth = errors.New("authorization header must be Bearer <token>")

// Auth 要求有效的 access token
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		claims, err := parseBearer(secret, authHeader)
		if err != nil {
			log.L.Debug("reject token", zap.Error(err))
			response.Abort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxUsername, claims.Username)

		c.Next()
	}
}

// OptionalAuth 允许匿名访问, 带了合法 token 时识别用户
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			if claims, err := parseBearer(secret, authHeader); err == nil {
				c.Set(context.CtxUserID, claims.UserID)
				c.Set(context.CtxUsername, claims.Username)
			}
		}
		c.Next()
	}
}

func parseBearer(secret []byte, header string) (*jwt.Claims, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errMalformedAuth
	}
	return jwt.ParseToken(secret, jwt.TypeAccess, parts[1])
}
