package service

import (
	"testing"

	"donation/config"
	"donation/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func authTestConfig(t *testing.T) *config.Config {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	return &config.Config{
		Users: []config.UserAccount{
			{Username: "admin", PasswordHash: string(hash), Role: models.RoleAdmin, DisplayName: "管理员"},
			{Username: "deacon01", PasswordHash: "", Role: models.RoleEditor, DisplayName: "执事一"},
		},
	}
}

func TestAuthenticate_Success(t *testing.T) {
	svc := NewAuthService(authTestConfig(t))

	sess, err := svc.Authenticate("admin", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "admin", sess.Username)
	assert.Equal(t, "管理员", sess.DisplayName)
	assert.Equal(t, models.RoleAdmin, sess.Role)
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	svc := NewAuthService(authTestConfig(t))

	sess, err := svc.Authenticate("nobody", "whatever")
	assert.Nil(t, sess)
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestAuthenticate_NotConfigured(t *testing.T) {
	svc := NewAuthService(authTestConfig(t))

	// 账号存在但没有配置哈希：与密码错误是不同的错误
	sess, err := svc.Authenticate("deacon01", "anything")
	assert.Nil(t, sess)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	svc := NewAuthService(authTestConfig(t))

	sess, err := svc.Authenticate("admin", "wrong")
	assert.Nil(t, sess)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
