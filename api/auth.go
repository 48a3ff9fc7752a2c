package api

import (
	"errors"
	"log"

	"donation/config"
	"donation/middleware"
	"donation/models"
	"donation/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	cfg         *config.Config
	authService *service.AuthService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		cfg:         cfg,
		authService: service.NewAuthService(cfg),
	}
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token    string         `json:"token"`
	UserInfo models.Session `json:"user_info"`
}

// Login 用户登录
// @Summary 用户登录
// @Description 用户登录获取 JWT token。账号在服务端配置文件中静态维护，不支持注册
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} Response{data=LoginResponse} "登录成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "用户名或密码错误"
// @Failure 429 {object} Response "尝试过于频繁"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	sess, err := h.authService.Authenticate(req.Username, req.Password)
	if err != nil {
		// 三种失败原因日志里必须可区分，客户端一律同一句话，不泄露账号是否存在
		switch {
		case errors.Is(err, service.ErrUnknownUser):
			log.Printf("登录失败: 用户 %s 不存在 (IP: %s)", req.Username, c.ClientIP())
		case errors.Is(err, service.ErrNotConfigured):
			log.Printf("登录失败: 用户 %s 未配置密码哈希，请检查部署配置 (IP: %s)", req.Username, c.ClientIP())
		default:
			log.Printf("登录失败: 用户 %s 密码错误 (IP: %s)", req.Username, c.ClientIP())
		}
		Unauthorized(c, "用户名或密码错误")
		return
	}

	token, err := middleware.GenerateToken(sess, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "生成 token 失败")
		return
	}

	log.Printf("用户 %s (%s) 登录成功", sess.Username, sess.Role)
	Success(c, LoginResponse{
		Token:    token,
		UserInfo: *sess,
	})
}

// GetProfile 获取当前用户信息
// @Summary 获取当前用户信息
// @Description 获取当前登录用户的用户名、显示名和角色
// @Tags 认证
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.Session} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	sess := middleware.GetCurrentSession(c)
	if sess == nil {
		Unauthorized(c, "未登录")
		return
	}
	Success(c, sess)
}
