/**
 * @projectName: MergingtonHub
 * @package: events
 * @className: events
 * @description: 活动报名事件定义
 * @version: 1.0
 */

package events

import "time"

// ==================== Topic 定义 ====================

const (
	TopicActivityMemberJoined = "activity.member.joined"
	TopicActivityMemberLeft   = "activity.member.left"
)

// ==================== 事件结构体 ====================

// ActivityMemberJoinedEvent 学生报名事件
// 消费者：审计日志订阅者（记录名单变更流水）
type ActivityMemberJoinedEvent struct {
	Activity string    `json:"activity"`
	Email    string    `json:"email"`
	JoinedAt time.Time `json:"joined_at"`
}

// ActivityMemberLeftEvent 学生取消报名事件
// 消费者：审计日志订阅者
type ActivityMemberLeftEvent struct {
	Activity string    `json:"activity"`
	Email    string    `json:"email"`
	LeftAt   time.Time `json:"left_at"`
}
