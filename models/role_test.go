package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCapability(t *testing.T) {
	// 等级满足
	assert.True(t, HasCapability(RoleViewer, RoleViewer))
	assert.True(t, HasCapability(RoleEditor, RoleViewer))
	assert.True(t, HasCapability(RoleAdmin, RoleEditor))
	assert.True(t, HasCapability(RoleAdmin, RoleAdmin))

	// 等级不足
	assert.False(t, HasCapability(RoleViewer, RoleEditor))
	assert.False(t, HasCapability(RoleEditor, RoleAdmin))

	// 未知角色一律拒绝
	assert.False(t, HasCapability("", RoleViewer))
	assert.False(t, HasCapability("superuser", RoleViewer))

	// 未知的所需角色永不满足（fail closed）
	assert.False(t, HasCapability(RoleAdmin, "root"))
	assert.False(t, HasCapability(RoleAdmin, ""))
}

func TestCanEdit(t *testing.T) {
	assert.False(t, CanEdit(RoleViewer))
	assert.True(t, CanEdit(RoleEditor))
	assert.True(t, CanEdit(RoleAdmin))
	assert.False(t, CanEdit("unknown"))
}

func TestCanAdminister(t *testing.T) {
	assert.False(t, CanAdminister(RoleViewer))
	assert.False(t, CanAdminister(RoleEditor))
	assert.True(t, CanAdminister(RoleAdmin))
	assert.False(t, CanAdminister("unknown"))
}
