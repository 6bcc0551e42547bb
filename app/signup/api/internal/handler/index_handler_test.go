package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mergington-hub/app/signup/api/internal/config"
	"mergington-hub/app/signup/api/internal/svc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"
)

func TestMain(m *testing.M) {
	logx.Disable()
	m.Run()
}

func TestIndexHandler_RedirectsToStatic(t *testing.T) {
	svcCtx := svc.NewServiceContext(config.Config{})

	w := httptest.NewRecorder()
	IndexHandler(svcCtx)(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/static/index.html", w.Header().Get("Location"))
}
