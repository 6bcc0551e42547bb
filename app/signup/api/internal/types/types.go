// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

// ==================== 活动目录 ====================

// ActivityInfo 活动目录条目
// 字段名与前端页面约定为 snake_case
type ActivityInfo struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// ==================== 报名 ====================

// SignupRequest 报名请求
// 活动名走路径参数，邮箱走 query 参数（与历史版接口保持兼容）
type SignupRequest struct {
	ActivityName string `path:"name"`
	Email        string `form:"email"`
}

// SignupResponse 报名响应
type SignupResponse struct {
	Message string `json:"message"`
}

// ==================== 取消报名 ====================

// UnregisterRequest 取消报名请求
type UnregisterRequest struct {
	ActivityName string `path:"name"`
	Email        string `form:"email"`
}

// UnregisterResponse 取消报名响应
type UnregisterResponse struct {
	Message string `json:"message"`
}
