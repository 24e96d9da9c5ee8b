package inits

import (
	"class-website/app/server/constants"
	"class-website/app/server/store/filestore"
	"context"
	"testing"

	"github.com/alexedwards/argon2id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st, err := filestore.New(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, Seed(ctx, st, "admin", "first-password", zap.NewNop()))

	user, err := st.UserGetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, constants.RoleAdmin, user.Role)
	match, err := argon2id.ComparePasswordAndHash("first-password", user.PasswordHash)
	require.NoError(t, err)
	assert.True(t, match)

	members, err := st.StructureList(ctx)
	require.NoError(t, err)
	assert.Len(t, members, len(defaultStructure))

	settings, err := st.SettingsGet(ctx)
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultSiteName, settings.SiteName)

	// 第二次运行不改变已有数据，也不会重新设置密码
	require.NoError(t, Seed(ctx, st, "admin", "second-password", zap.NewNop()))

	again, err := st.UserGetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, user.PasswordHash, again.PasswordHash)

	members, err = st.StructureList(ctx)
	require.NoError(t, err)
	assert.Len(t, members, len(defaultStructure))

	settingsAgain, err := st.SettingsGet(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.ID, settingsAgain.ID)
}
