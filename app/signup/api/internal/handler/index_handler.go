package handler

import (
	"net/http"

	"mergington-hub/app/signup/api/internal/svc"
)

// IndexHandler 根路径跳转到报名页面
// 307 保持与历史版接口一致（测试依赖该状态码）
func IndexHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
	}
}
