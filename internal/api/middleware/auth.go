package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"data-catalog/internal/pkg/config"
	"data-catalog/internal/pkg/jwt"
	"data-catalog/pkg/constants"
	"data-catalog/pkg/responses"
)

// AuthMiddleware JWT认证中间件
// 未启用认证时仍会解析携带的Token, 用于记录操作人
func AuthMiddleware(cfg config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			if cfg.Enabled {
				responses.ErrorWithCode(c, 401, "缺少Authorization Header")
				c.Abort()
				return
			}
			c.Next()
			return
		}

		// 检查Bearer前缀
		if !strings.HasPrefix(authHeader, constants.HeaderBearerPrefix) {
			responses.ErrorWithCode(c, 401, "Authorization格式错误")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, constants.HeaderBearerPrefix)
		claims, err := jwt.ValidateToken(cfg.JWT, token, constants.JWTTypeAccess)
		if err != nil {
			responses.Error(c, err)
			c.Abort()
			return
		}

		c.Set(constants.JWTContextKey, claims)
		c.Set("username", claims.Username)

		c.Next()
	}
}
