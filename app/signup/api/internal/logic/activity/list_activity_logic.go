// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package activity

import (
	"context"

	"mergington-hub/app/signup/api/internal/svc"
	"mergington-hub/app/signup/api/internal/types"
	"mergington-hub/app/signup/model"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListActivityLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 查询活动目录
func NewListActivityLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListActivityLogic {
	return &ListActivityLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// ListActivity 返回全部活动及当前报名名单
// 响应体直接是 name -> activity 的 JSON 对象，前端按这个格式渲染
func (l *ListActivityLogic) ListActivity() (map[string]types.ActivityInfo, error) {
	catalog := l.svcCtx.Registry.List(l.ctx)

	resp := make(map[string]types.ActivityInfo, len(catalog))
	for name, act := range catalog {
		resp[name] = toActivityInfo(act)
	}
	return resp, nil
}

// toActivityInfo model -> api 类型转换
func toActivityInfo(act model.Activity) types.ActivityInfo {
	return types.ActivityInfo{
		Description:     act.Description,
		Schedule:        act.Schedule,
		MaxParticipants: act.MaxParticipants,
		Participants:    act.Participants,
	}
}
