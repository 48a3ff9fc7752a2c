package service

import (
	"errors"

	"donation/config"
	"donation/models"

	"golang.org/x/crypto/bcrypt"
)

// 认证失败的三种情形
// 对终端用户一律呈现"用户名或密码错误"，但运维日志里必须能区分：
// 用户不存在、部署漏配哈希、密码确实不对，排查口径完全不同
var (
	ErrUnknownUser        = errors.New("用户不存在")
	ErrNotConfigured      = errors.New("用户未配置密码哈希")
	ErrInvalidCredentials = errors.New("用户名或密码错误")
)

// AuthService 认证服务
// 用户表是静态配置，进程启动后不可变；没有锁定、没有会话续期
type AuthService struct {
	cfg *config.Config
}

// NewAuthService 创建认证服务
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// Authenticate 校验用户名密码
// 成功返回会话描述；失败返回上面三种哨兵错误之一
func (s *AuthService) Authenticate(username, password string) (*models.Session, error) {
	account := s.cfg.FindUser(username)
	if account == nil {
		return nil, ErrUnknownUser
	}

	// 账号存在但哈希为空，属于部署配置缺口而不是密码错误
	if account.PasswordHash == "" {
		return nil, ErrNotConfigured
	}

	// bcrypt 比较本身是常数时间的
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &models.Session{
		Username:    account.Username,
		DisplayName: account.DisplayName,
		Role:        account.Role,
	}, nil
}
