// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package activity

import (
	"net/http"

	"mergington-hub/app/signup/api/internal/logic/activity"
	"mergington-hub/app/signup/api/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// 查询活动目录
func ListActivityHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := activity.NewListActivityLogic(r.Context(), svcCtx)
		resp, err := l.ListActivity()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
