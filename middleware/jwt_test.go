package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"donation/config"
	"donation/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initJWTTestConfig() {
	config.GlobalConfig = &config.Config{
		Server: config.ServerConfig{Mode: "debug"},
		JWT:    config.JWTConfig{Secret: "test-jwt-secret-key"},
	}
}

func testSession() *models.Session {
	return &models.Session{Username: "deacon01", DisplayName: "执事01", Role: models.RoleEditor}
}

func TestGenerateToken(t *testing.T) {
	initJWTTestConfig()
	defer func() { config.GlobalConfig = nil }()

	InitJWT(config.GlobalConfig)

	token, err := GenerateToken(testSession(), 24*time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, len(token), 20)

	// 可解析
	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "deacon01", claims.Username)
	assert.Equal(t, "执事01", claims.DisplayName)
	assert.Equal(t, models.RoleEditor, claims.Role)
}

func TestParseToken(t *testing.T) {
	initJWTTestConfig()
	defer func() { config.GlobalConfig = nil }()

	InitJWT(config.GlobalConfig)

	// 合法 token
	token, _ := GenerateToken(&models.Session{Username: "admin", Role: models.RoleAdmin}, time.Hour)
	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, models.RoleAdmin, claims.Role)

	// 已过期
	expired, _ := GenerateToken(testSession(), -time.Minute)
	_, err = ParseToken(expired)
	assert.Error(t, err)

	// 空字符串
	_, err = ParseToken("")
	assert.Error(t, err)

	// 无效格式
	_, err = ParseToken("not.a.valid.jwt")
	assert.Error(t, err)
	_, err = ParseToken("eyJhbGciOiJmb29iIn0.xxxx.yyyy")
	assert.Error(t, err)
}

func TestJWTAuth(t *testing.T) {
	initJWTTestConfig()
	defer func() { config.GlobalConfig = nil }()

	InitJWT(config.GlobalConfig)
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(JWTAuth())
	router.GET("/protected", func(c *gin.Context) {
		sess := GetCurrentSession(c)
		c.String(200, "user:%s", sess.Username)
	})

	// 无 token
	req := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "401")

	// 格式错误（非 Bearer）
	req2 := httptest.NewRequest("GET", "/protected", nil)
	req2.Header.Set("Authorization", "Basic xyz")
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusUnauthorized, w2.Code)

	// 格式错误（仅 Bearer 无 token）
	req3 := httptest.NewRequest("GET", "/protected", nil)
	req3.Header.Set("Authorization", "Bearer ")
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, req3)
	assert.Equal(t, http.StatusUnauthorized, w3.Code)

	// 有效 token
	token, _ := GenerateToken(testSession(), time.Hour)
	req4 := httptest.NewRequest("GET", "/protected", nil)
	req4.Header.Set("Authorization", "Bearer "+token)
	w4 := httptest.NewRecorder()
	router.ServeHTTP(w4, req4)
	assert.Equal(t, 200, w4.Code)
	assert.Equal(t, "user:deacon01", w4.Body.String())
}

func TestGetCurrentSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, GetCurrentSession(c))

	c.Set(sessionKey, testSession())
	sess := GetCurrentSession(c)
	require.NotNil(t, sess)
	assert.Equal(t, "deacon01", sess.Username)
}

func TestRequireRole(t *testing.T) {
	initJWTTestConfig()
	defer func() { config.GlobalConfig = nil }()

	InitJWT(config.GlobalConfig)
	gin.SetMode(gin.TestMode)

	newRouter := func(role string) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			c.Set(sessionKey, &models.Session{Username: "u", Role: role})
		})
		r.DELETE("/entries/1", RequireRole(models.RoleAdmin), func(c *gin.Context) {
			c.String(200, "ok")
		})
		return r
	}

	// viewer/editor 不满足 admin 要求
	for _, role := range []string{models.RoleViewer, models.RoleEditor, "unknown"} {
		w := httptest.NewRecorder()
		newRouter(role).ServeHTTP(w, httptest.NewRequest("DELETE", "/entries/1", nil))
		assert.Equal(t, http.StatusForbidden, w.Code, "role=%s", role)
	}

	// admin 放行
	w := httptest.NewRecorder()
	newRouter(models.RoleAdmin).ServeHTTP(w, httptest.NewRequest("DELETE", "/entries/1", nil))
	assert.Equal(t, 200, w.Code)

	// 未注入会话直接 401
	r := gin.New()
	r.GET("/x", RequireRole(models.RoleViewer), func(c *gin.Context) { c.String(200, "ok") })
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest("GET", "/x", nil))
	assert.Equal(t, http.StatusUnauthorized, w2.Code)
}
