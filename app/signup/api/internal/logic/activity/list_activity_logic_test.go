package activity

import (
	"context"
	"testing"

	"mergington-hub/app/signup/api/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListActivity_ReturnsCatalog(t *testing.T) {
	l := NewListActivityLogic(context.Background(), newTestSvcCtx())

	resp, err := l.ListActivity()
	require.NoError(t, err)

	require.NotEmpty(t, resp)
	require.Contains(t, resp, "Chess Club")
	require.Contains(t, resp, "Programming Class")
	require.Contains(t, resp, "Gym Class")

	for name, act := range resp {
		assert.NotEmpty(t, act.Description, "activity %s", name)
		assert.NotEmpty(t, act.Schedule, "activity %s", name)
		assert.NotNil(t, act.Participants, "activity %s participants must marshal as a list", name)
	}
}

func TestListActivity_ReflectsSignup(t *testing.T) {
	svcCtx := newTestSvcCtx()
	ctx := context.Background()
	email := "workflow.test@mergington.edu"

	_, err := NewSignupActivityLogic(ctx, svcCtx).SignupActivity(&types.SignupRequest{
		ActivityName: "Robotics Club", Email: email,
	})
	require.NoError(t, err)

	resp, err := NewListActivityLogic(ctx, svcCtx).ListActivity()
	require.NoError(t, err)
	assert.Contains(t, resp["Robotics Club"].Participants, email)

	_, err = NewUnregisterActivityLogic(ctx, svcCtx).UnregisterActivity(&types.UnregisterRequest{
		ActivityName: "Robotics Club", Email: email,
	})
	require.NoError(t, err)

	resp, err = NewListActivityLogic(ctx, svcCtx).ListActivity()
	require.NoError(t, err)
	assert.NotContains(t, resp["Robotics Club"].Participants, email)
}
