package activity

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"mergington-hub/app/signup/api/internal/config"
	"mergington-hub/app/signup/api/internal/svc"
	"mergington-hub/common/errorx"
	"mergington-hub/common/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/pathvar"
)

func TestMain(m *testing.M) {
	logx.Disable()
	// handler 层依赖全局错误处理器做 BizError -> HTTP 状态码转换
	response.SetupGlobalErrorHandler()
	m.Run()
}

// ==========================
// Test Helper Functions
// ==========================

func newTestSvcCtx() *svc.ServiceContext {
	return svc.NewServiceContext(config.Config{})
}

// newSignupRequest 构造带路径参数的报名请求
// 单测不经过路由，路径参数用 pathvar 手工注入
func newSignupRequest(method, activity, email string) *http.Request {
	target := "/activities/" + url.PathEscape(activity) + "/signup?email=" + url.QueryEscape(email)
	r := httptest.NewRequest(method, target, nil)
	return pathvar.WithVars(r, map[string]string{"name": activity})
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSignupHandler_Success(t *testing.T) {
	handler := SignupActivityHandler(newTestSvcCtx())

	w := httptest.NewRecorder()
	handler(w, newSignupRequest(http.MethodPost, "Chess Club", "test.student@mergington.edu"))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body["message"], "test.student@mergington.edu")
	assert.Contains(t, body["message"], "Chess Club")
}

func TestSignupHandler_NotFound(t *testing.T) {
	handler := SignupActivityHandler(newTestSvcCtx())

	w := httptest.NewRecorder()
	handler(w, newSignupRequest(http.MethodPost, "Non-existent Activity", "test.student@mergington.edu"))

	require.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body["message"], "Activity not found")
	assert.EqualValues(t, errorx.CodeActivityNotFound, body["code"])
}

func TestSignupHandler_Duplicate(t *testing.T) {
	handler := SignupActivityHandler(newTestSvcCtx())

	w := httptest.NewRecorder()
	handler(w, newSignupRequest(http.MethodPost, "Chess Club", "michael@mergington.edu"))

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body["message"], "already signed up")
}

func TestListHandler_CatalogFields(t *testing.T) {
	svcCtx := newTestSvcCtx()
	handler := ListActivityHandler(svcCtx)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/activities", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var activities map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &activities))
	require.NotEmpty(t, activities)
	require.Contains(t, activities, "Chess Club")

	for name, act := range activities {
		assert.Contains(t, act, "description", "activity %s", name)
		assert.Contains(t, act, "schedule", "activity %s", name)
		assert.Contains(t, act, "max_participants", "activity %s", name)
		require.Contains(t, act, "participants", "activity %s", name)
		assert.IsType(t, []interface{}{}, act["participants"], "activity %s", name)
	}
}

func TestUnregisterHandler_FullWorkflow(t *testing.T) {
	svcCtx := newTestSvcCtx()
	email := "workflow.test@mergington.edu"

	// 报名
	w := httptest.NewRecorder()
	SignupActivityHandler(svcCtx)(w, newSignupRequest(http.MethodPost, "Robotics Club", email))
	require.Equal(t, http.StatusOK, w.Code)

	// 取消报名
	target := "/activities/Robotics%20Club/unregister?email=" + url.QueryEscape(email)
	r := httptest.NewRequest(http.MethodDelete, target, nil)
	r = pathvar.WithVars(r, map[string]string{"name": "Robotics Club"})

	w = httptest.NewRecorder()
	UnregisterActivityHandler(svcCtx)(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body["message"], "Unregistered")
	assert.Contains(t, body["message"], email)

	// 名单中不再有该邮箱
	act, _ := svcCtx.Registry.Get(r.Context(), "Robotics Club")
	assert.NotContains(t, act.Participants, email)
}

func TestUnregisterHandler_NotRegistered(t *testing.T) {
	svcCtx := newTestSvcCtx()

	r := httptest.NewRequest(http.MethodDelete,
		"/activities/Tennis%20Club/unregister?email=not.registered%40mergington.edu", nil)
	r = pathvar.WithVars(r, map[string]string{"name": "Tennis Club"})

	w := httptest.NewRecorder()
	UnregisterActivityHandler(svcCtx)(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body["message"], "not registered")
}

func TestUnregisterHandler_NotFound(t *testing.T) {
	svcCtx := newTestSvcCtx()

	r := httptest.NewRequest(http.MethodDelete,
		"/activities/Nope/unregister?email=a%40mergington.edu", nil)
	r = pathvar.WithVars(r, map[string]string{"name": "Nope"})

	w := httptest.NewRecorder()
	UnregisterActivityHandler(svcCtx)(w, r)

	require.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body["message"], "Activity not found")
}
