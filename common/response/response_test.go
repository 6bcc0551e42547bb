package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mergington-hub/common/errorx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHttpStatus(t *testing.T) {
	tests := []struct {
		name string
		code int
		want int
	}{
		{"success", errorx.CodeSuccess, http.StatusOK},
		{"activity not found", errorx.CodeActivityNotFound, http.StatusNotFound},
		{"already registered", errorx.CodeAlreadyRegistered, http.StatusBadRequest},
		{"not registered", errorx.CodeNotRegistered, http.StatusBadRequest},
		{"invalid params", errorx.CodeInvalidParams, http.StatusBadRequest},
		{"not found", errorx.CodeNotFound, http.StatusNotFound},
		{"too many requests", errorx.CodeTooManyRequests, http.StatusTooManyRequests},
		{"internal", errorx.CodeInternalError, http.StatusInternalServerError},
		{"unknown code", 87654, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHttpStatus(tt.code))
		})
	}
}

func TestFail_WritesStatusAndBody(t *testing.T) {
	w := httptest.NewRecorder()
	Fail(w, errorx.ErrActivityNotFound())

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, errorx.CodeActivityNotFound, resp.Code)
	assert.Equal(t, "Activity not found", resp.Message)
}

func TestSuccess_WrapsData(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, errorx.CodeSuccess, resp.Code)
	assert.Equal(t, "success", resp.Message)
}
