package model

import (
	"context"
	"errors"
	"sync"
)

// ==================== 错误定义 ====================

var (
	ErrActivityNotFound  = errors.New("activity not found")
	ErrAlreadyRegistered = errors.New("student is already signed up")
	ErrNotRegistered     = errors.New("student is not registered for this activity")
)

// ==================== ActivityRegistry 活动注册表 ====================

// ActivityRegistry 内存态活动注册表
// 进程启动时用固定目录初始化，生命周期与进程相同。
// 活动集合本身不可变，唯一可变状态是各活动的报名名单，
// 所有变更都经过注册表级别的互斥锁串行化。
type ActivityRegistry struct {
	mu         sync.RWMutex
	activities map[string]*Activity
}

// NewActivityRegistry 创建注册表并载入初始活动目录
// 传入的目录会被深拷贝，调用方之后对 seed 的修改不影响注册表
func NewActivityRegistry(seed map[string]Activity) *ActivityRegistry {
	activities := make(map[string]*Activity, len(seed))
	for name, act := range seed {
		cp := act.clone()
		if cp.Participants == nil {
			cp.Participants = []string{}
		}
		activities[name] = &cp
	}
	return &ActivityRegistry{activities: activities}
}

// List 返回全部活动目录的快照（含当前报名名单）
// 无副作用，永远成功；返回的是深拷贝，可被调用方随意修改
func (r *ActivityRegistry) List(ctx context.Context) map[string]Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]Activity, len(r.activities))
	for name, act := range r.activities {
		snapshot[name] = act.clone()
	}
	return snapshot
}

// Get 查询单个活动的快照
func (r *ActivityRegistry) Get(ctx context.Context, name string) (Activity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	act, ok := r.activities[name]
	if !ok {
		return Activity{}, false
	}
	return act.clone(), true
}

// Signup 学生报名活动
// 返回：
//   - ErrActivityNotFound  活动不存在
//   - ErrAlreadyRegistered 该邮箱已在名单中
//
// 成功时邮箱追加到名单末尾（报名顺序即名单顺序）。
// 名额上限不做硬性校验，只保证名单内邮箱唯一。
func (r *ActivityRegistry) Signup(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	if act.IsRegistered(email) {
		return ErrAlreadyRegistered
	}

	act.Participants = append(act.Participants, email)
	return nil
}

// Unregister 学生取消报名
// 返回：
//   - ErrActivityNotFound 活动不存在
//   - ErrNotRegistered    该邮箱不在名单中
func (r *ActivityRegistry) Unregister(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}

	for i, p := range act.Participants {
		if p == email {
			act.Participants = append(act.Participants[:i], act.Participants[i+1:]...)
			return nil
		}
	}
	return ErrNotRegistered
}
