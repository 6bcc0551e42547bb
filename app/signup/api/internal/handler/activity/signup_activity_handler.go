// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package activity

import (
	"net/http"

	"mergington-hub/app/signup/api/internal/logic/activity"
	"mergington-hub/app/signup/api/internal/svc"
	"mergington-hub/app/signup/api/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// 报名活动
func SignupActivityHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SignupRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := activity.NewSignupActivityLogic(r.Context(), svcCtx)
		resp, err := l.SignupActivity(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
