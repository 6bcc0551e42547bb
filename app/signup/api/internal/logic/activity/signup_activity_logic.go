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

type SignupActivityLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 报名活动
func NewSignupActivityLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SignupActivityLogic {
	return &SignupActivityLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SignupActivity 学生报名活动
func (l *SignupActivityLogic) SignupActivity(req *types.SignupRequest) (*types.SignupResponse, error) {
	// 1. 参数校验
	// 邮箱格式/域名不校验，历史版接口就不校验，前端页面有输入框约束
	if req.ActivityName == "" {
		return nil, errorx.ErrInvalidParams("activity name is required")
	}
	if req.Email == "" {
		return nil, errorx.ErrInvalidParams("email is required")
	}

	// 2. 写入注册表
	if err := l.svcCtx.Registry.Signup(l.ctx, req.ActivityName, req.Email); err != nil {
		switch {
		case errors.Is(err, model.ErrActivityNotFound):
			metrics.RecordSignup(req.ActivityName, metrics.ResultActivityNotFound)
			return nil, errorx.ErrActivityNotFound()
		case errors.Is(err, model.ErrAlreadyRegistered):
			metrics.RecordSignup(req.ActivityName, metrics.ResultAlreadyRegistered)
			l.Infof("重复报名: activity=%q, email=%s", req.ActivityName, req.Email)
			return nil, errorx.ErrAlreadyRegistered()
		default:
			return nil, errorx.ErrInternalError()
		}
	}

	metrics.RecordSignup(req.ActivityName, metrics.ResultSuccess)

	// 3. 报名后检查名额
	// 名额上限目前只作展示，不拒绝报名；超员时落一条日志便于校方跟进
	if act, ok := l.svcCtx.Registry.Get(l.ctx, req.ActivityName); ok {
		metrics.SetParticipants(req.ActivityName, len(act.Participants))
		if act.MaxParticipants > 0 && len(act.Participants) > act.MaxParticipants {
			l.Infof("活动超员: activity=%q, participants=%d, max=%d",
				req.ActivityName, len(act.Participants), act.MaxParticipants)
		}
	}

	// 4. 发布报名事件（失败不影响报名结果）
	if err := l.svcCtx.EventBus.PublishMemberJoined(l.ctx, req.ActivityName, req.Email); err != nil {
		l.Errorf("发布报名事件失败: activity=%q, email=%s, err=%v", req.ActivityName, req.Email, err)
	}

	return &types.SignupResponse{
		Message: fmt.Sprintf("Signed up %s for %s", req.Email, req.ActivityName),
	}, nil
}
