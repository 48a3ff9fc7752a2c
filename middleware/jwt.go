package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"donation/config"
	"donation/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// sessionKey gin context 中会话对象的键
const sessionKey = "session"

var jwtSecret []byte

// Claims JWT 载荷：会话身份（用户名、显示名、角色）
type Claims struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

// InitJWT 初始化 JWT 密钥
func InitJWT(cfg *config.Config) {
	jwtSecret = []byte(cfg.JWT.Secret)
}

// GenerateToken 为会话生成带过期时间的 JWT token
func GenerateToken(sess *models.Session, expire time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Username:    sess.Username,
		DisplayName: sess.DisplayName,
		Role:        sess.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken 解析并校验 JWT token
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("签名算法不匹配")
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("无效的 token")
	}
	return claims, nil
}

// JWTAuth JWT 认证中间件
// 校验 Authorization: Bearer <token>，通过后把会话对象写入 context
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "请先登录")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			abortUnauthorized(c, "认证格式错误")
			return
		}

		claims, err := ParseToken(strings.TrimSpace(parts[1]))
		if err != nil {
			abortUnauthorized(c, "登录已过期，请重新登录")
			return
		}

		c.Set(sessionKey, &models.Session{
			Username:    claims.Username,
			DisplayName: claims.DisplayName,
			Role:        claims.Role,
		})
		c.Next()
	}
}

// GetCurrentSession 从 context 获取当前会话，未登录返回 nil
func GetCurrentSession(c *gin.Context) *models.Session {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil
	}
	sess, ok := v.(*models.Session)
	if !ok {
		return nil
	}
	return sess
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"code":    401,
		"message": message,
	})
	c.Abort()
}
