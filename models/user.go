package models

// Session 登录会话描述
// 认证成功后生成，随 JWT 在请求间传递；不存任何服务端会话状态
type Session struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}
