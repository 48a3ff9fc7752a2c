package middleware

import (
	"net/http"

	"donation/models"

	"github.com/gin-gonic/gin"
)

// RequireRole 角色等级校验中间件
// 需在 JWTAuth 之后使用；会话角色等级不足 requiredRole 时返回 403
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetCurrentSession(c)
		if sess == nil {
			abortUnauthorized(c, "请先登录")
			return
		}

		if !models.HasCapability(sess.Role, requiredRole) {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "权限不足",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
