package auth_test

import (
	"context"
	"testing"

	"github.com/aiu-lab/facility-service/pkg/auth"
	"github.com/stretchr/testify/require"
)

func TestAuthContext(t *testing.T) {
	t.Parallel()
	_, err := auth.GetUserName(context.Background())
	require.ErrorIs(t, err, auth.ErrNoUserName)

	ctx := auth.SetAuthContext(context.Background(), "aigerim", auth.RoleStudent)
	name, err := auth.GetUserName(ctx)
	require.NoError(t, err)
	require.Equal(t, "aigerim", name)
	require.False(t, auth.IsAdmin(ctx))

	require.True(t, auth.IsAdmin(auth.SetAuthContext(context.Background(), "root", auth.RoleAdmin)))
	require.True(t, auth.IsAdmin(auth.SetAuthContext(context.Background(), "lab", auth.RoleStaff)))
}
