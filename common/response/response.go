package response

import (
	"context"
	"net/http"

	"mergington-hub/common/errorx"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应
func Success(w http.ResponseWriter, data interface{}) {
	resp := &Response{
		Code:    errorx.CodeSuccess,
		Message: "success",
		Data:    data,
	}
	httpx.OkJson(w, resp)
}

// SuccessWithMessage 成功响应（自定义消息）
func SuccessWithMessage(w http.ResponseWriter, message string, data interface{}) {
	resp := &Response{
		Code:    errorx.CodeSuccess,
		Message: message,
		Data:    data,
	}
	httpx.OkJson(w, resp)
}

// Fail 失败响应（使用 BizError）
func Fail(w http.ResponseWriter, err error) {
	bizErr := errorx.FromError(err)
	resp := &Response{
		Code:    bizErr.Code,
		Message: bizErr.Message,
	}
	// 根据错误类型返回不同的 HTTP 状态码
	httpx.WriteJson(w, GetHttpStatus(bizErr.Code), resp)
}

// FailWithCode 失败响应（指定错误码）
func FailWithCode(w http.ResponseWriter, code int) {
	resp := &Response{
		Code:    code,
		Message: errorx.GetMessage(code),
	}
	httpx.WriteJson(w, GetHttpStatus(code), resp)
}

// GetHttpStatus 根据业务错误码映射 HTTP 状态码
//
// 对外契约（前端和测试依赖）：
//   - 活动不存在        -> 404
//   - 重复报名/未报名   -> 400
func GetHttpStatus(code int) int {
	switch code {
	case errorx.CodeSuccess:
		return http.StatusOK
	case errorx.CodeInvalidParams, errorx.CodeAlreadyRegistered, errorx.CodeNotRegistered:
		return http.StatusBadRequest
	case errorx.CodeNotFound, errorx.CodeActivityNotFound:
		return http.StatusNotFound
	case errorx.CodeTooManyRequests:
		return http.StatusTooManyRequests
	case errorx.CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// SetupGlobalErrorHandler 设置 go-zero 全局错误处理器
// 必须在 server.Start() 之前调用，handler 层通过 httpx.ErrorCtx 走到这里
//
// logic 层只会返回 *BizError，其余到达这里的错误都来自
// httpx.Parse 的请求解析失败，按参数错误（400）处理
func SetupGlobalErrorHandler() {
	httpx.SetErrorHandlerCtx(func(ctx context.Context, err error) (int, any) {
		if _, ok := err.(*errorx.BizError); !ok {
			err = errorx.ErrInvalidParams(err.Error())
		}
		bizErr := errorx.FromError(err)
		return GetHttpStatus(bizErr.Code), &Response{
			Code:    bizErr.Code,
			Message: bizErr.Message,
		}
	})
}

// Error 错误响应（简化版，用于中间件）
func Error(w http.ResponseWriter, code int, message string) {
	resp := &Response{
		Code:    code,
		Message: message,
	}
	httpx.WriteJson(w, code, resp)
}
