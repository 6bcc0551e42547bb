package model

// ==================== Activity 课外活动 ====================

// Activity 一项课外活动及其报名名单
// 名称是全局唯一主键，由注册表的 map key 承载，不在结构体内重复存储。
// Participants 按报名先后排列，同一邮箱在一个活动内最多出现一次。
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// IsRegistered 判断邮箱是否已在报名名单中
func (a *Activity) IsRegistered(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// IsFull 判断报名人数是否已达上限
// 注意：当前业务不把名额作为硬性限制，仅用于日志提示（见 Registry.Signup）
func (a *Activity) IsFull() bool {
	return a.MaxParticipants > 0 && len(a.Participants) >= a.MaxParticipants
}

// clone 深拷贝，避免调用方拿到内部名单的别名
func (a *Activity) clone() Activity {
	cp := *a
	cp.Participants = make([]string, len(a.Participants))
	copy(cp.Participants, a.Participants)
	return cp
}
