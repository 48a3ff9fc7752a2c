package models

// 角色常量
// 角色统一为一套英文代码，等级数值越大权限越高
const (
	RoleViewer = "viewer" // 只读
	RoleEditor = "editor" // 可录入
	RoleAdmin  = "admin"  // 全量管理（跨用户编辑/删除）
)

// roleRanks 角色等级，数值越大权限越高
var roleRanks = map[string]int{
	RoleViewer: 1,
	RoleEditor: 2,
	RoleAdmin:  3,
}

// HasCapability 判断角色是否达到所需等级
// 未知角色按 0 处理（拒绝）；未知的所需角色视为永不满足（fail closed）
func HasCapability(role, requiredRole string) bool {
	required, ok := roleRanks[requiredRole]
	if !ok {
		return false
	}
	return roleRanks[role] >= required
}

// CanEdit 是否可录入奉献记录
func CanEdit(role string) bool {
	return HasCapability(role, RoleEditor)
}

// CanAdminister 是否可管理全部记录（编辑/删除任意用户录入的记录）
func CanAdminister(role string) bool {
	return HasCapability(role, RoleAdmin)
}
