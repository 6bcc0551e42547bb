// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package activity

import (
	"context"
	"errors"
	"fmt"

	"mergington-hub/app/signup/api/internal/svc"
	"mergington-hub/app/signup/api/internal/types"
	"mergington-hub/app/signup/model"
	"mergington-hub/common/errorx"
	"mergington-hub/common/metrics"

	"github.com/zeromicro/go-zero/core/logx"
)

type UnregisterActivityLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 取消报名
func NewUnregisterActivityLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UnregisterActivityLogic {
	return &UnregisterActivityLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// UnregisterActivity 学生取消报名
func (l *UnregisterActivityLogic) UnregisterActivity(req *types.UnregisterRequest) (*types.UnregisterResponse, error) {
	// 1. 参数校验
	if req.ActivityName == "" {
		return nil, errorx.ErrInvalidParams("activity name is required")
	}
	if req.Email == "" {
		return nil, errorx.ErrInvalidParams("email is required")
	}

	// 2. 从注册表移除
	if err := l.svcCtx.Registry.Unregister(l.ctx, req.ActivityName, req.Email); err != nil {
		switch {
		case errors.Is(err, model.ErrActivityNotFound):
			metrics.RecordUnregister(req.ActivityName, metrics.ResultActivityNotFound)
			return nil, errorx.ErrActivityNotFound()
		case errors.Is(err, model.ErrNotRegistered):
			metrics.RecordUnregister(req.ActivityName, metrics.ResultNotRegistered)
			l.Infof("未报名即取消: activity=%q, email=%s", req.ActivityName, req.Email)
			return nil, errorx.ErrNotRegistered()
		default:
			return nil, errorx.ErrInternalError()
		}
	}

	metrics.RecordUnregister(req.ActivityName, metrics.ResultSuccess)
	if act, ok := l.svcCtx.Registry.Get(l.ctx, req.ActivityName); ok {
		metrics.SetParticipants(req.ActivityName, len(act.Participants))
	}

	// 3. 发布取消报名事件（失败不影响结果）
	if err := l.svcCtx.EventBus.PublishMemberLeft(l.ctx, req.ActivityName, req.Email); err != nil {
		l.Errorf("发布取消报名事件失败: activity=%q, email=%s, err=%v", req.ActivityName, req.Email, err)
	}

	return &types.UnregisterResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", req.Email, req.ActivityName),
	}, nil
}
